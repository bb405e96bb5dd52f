package ports

import (
	"context"

	"purelife/internal/core/domain/model/kernel"
)

// NotificationChannel is a delivery channel for a notification.
type NotificationChannel string

const (
	// ChannelPush delivers to the recipient's mobile device.
	ChannelPush NotificationChannel = "PUSH"

	// ChannelEmail delivers to the recipient's email address.
	ChannelEmail NotificationChannel = "EMAIL"
)

// Notification is a message to one recipient across one or more channels.
type Notification struct {
	RecipientID kernel.UUID
	Channels    []NotificationChannel
	Title       string
	Body        string
	Data        map[string]string
}

// Notifier defines the contract for sending notifications. All sends in the
// order lifecycle are best effort: handlers log failures and never let them
// fail the business operation.
type Notifier interface {
	// Send delivers one notification. Blocking; callers decide whether to
	// fire-and-forget.
	Send(ctx context.Context, notification Notification) error
}
