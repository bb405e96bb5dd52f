// Package notify implements the notifier port against the notification
// service's HTTP dispatch endpoint. Delivery mechanics (push tokens, email
// templates) live behind that service; this adapter only hands messages over.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"purelife/internal/core/ports"
	"purelife/internal/pkg/errs"
)

// HTTPDispatcher posts notifications to the notification service.
type HTTPDispatcher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the dispatcher.
type Option func(*HTTPDispatcher)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(d *HTTPDispatcher) {
		d.httpClient = httpClient
	}
}

// NewHTTPDispatcher creates a dispatcher posting to the given endpoint.
func NewHTTPDispatcher(endpoint string, logger *slog.Logger, opts ...Option) (*HTTPDispatcher, error) {
	if endpoint == "" {
		return nil, errs.NewValueIsRequiredError("notification endpoint")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	dispatcher := &HTTPDispatcher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With("component", "notify"),
	}
	for _, opt := range opts {
		opt(dispatcher)
	}

	return dispatcher, nil
}

type dispatchRequest struct {
	RecipientID string            `json:"recipientId"`
	Channels    []string          `json:"channels"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
}

// Send posts one notification. Callers treat failures as best effort; this
// method just reports them honestly.
func (d *HTTPDispatcher) Send(ctx context.Context, notification ports.Notification) error {
	channels := make([]string, 0, len(notification.Channels))
	for _, channel := range notification.Channels {
		channels = append(channels, string(channel))
	}

	body, err := json.Marshal(dispatchRequest{
		RecipientID: notification.RecipientID.String(),
		Channels:    channels,
		Title:       notification.Title,
		Body:        notification.Body,
		Data:        notification.Data,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notification dispatch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification dispatch: unexpected status %d", resp.StatusCode)
	}

	d.logger.DebugContext(ctx, "notification dispatched",
		"recipientId", notification.RecipientID.String(),
		"title", notification.Title)
	return nil
}
