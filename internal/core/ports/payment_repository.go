package ports

import (
	"context"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	// Returns *errs.ObjectNotFoundError when no such payment exists.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrderAndGatewayOrder retrieves the payment belonging to the order
	// that carries the given gateway order id. Used during signature
	// verification to locate the exact attempt the callback refers to.
	GetByOrderAndGatewayOrder(ctx context.Context, orderID kernel.UUID, gatewayOrderID string) (*payment.Payment, error)

	// GetOpenByOrder retrieves the order's payment that has not completed yet
	// (PENDING or FAILED, so a failed attempt can be retried).
	// Returns *errs.ObjectNotFoundError when the order has none.
	GetOpenByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
