package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"purelife/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"object not found", errs.NewObjectNotFoundError("orderId", "42"), http.StatusNotFound},
		{"operation forbidden", errs.NewOperationForbiddenError("customers cannot assign agents"), http.StatusForbidden},
		{"conflict", errs.NewConflictError("payment already completed"), http.StatusConflict},
		{"transition not allowed", errs.NewTransitionNotAllowedError("CREATED", "INSTALLED"), http.StatusConflict},
		{"invalid state", errs.NewInvalidStateError("assign agent before payment"), http.StatusUnprocessableEntity},
		{"value invalid", errs.NewValueIsInvalidError("orderType"), http.StatusBadRequest},
		{"value required", errs.NewValueIsRequiredError("productId"), http.StatusBadRequest},
		{"value out of range", errs.NewValueIsOutOfRangeError("windowDays", 0, 1, 30), http.StatusBadRequest},
		{"unclassified", errors.New("driver: bad connection"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_RendersUniformBody(t *testing.T) {
	req := httptest.NewRequest(echo.GET, "/api/v1/orders/42", nil)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	err := writeError(ctx, errs.NewObjectNotFoundError("orderId", "42"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Contains(t, body.Message, "object not found")
}
