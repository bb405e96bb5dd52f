package http

import (
	"errors"
	"net/http"

	"purelife/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps application errors to HTTP status codes and renders the
// uniform error body.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFromError(err), ErrorResponse{
		Code:    statusFromError(err),
		Message: err.Error(),
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrOperationForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrTransitionNotAllowed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
