package ports

import (
	"context"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/rental"
)

// RentalRepository defines the persistence contract for rental aggregates.
type RentalRepository interface {
	// Add persists a new rental aggregate to storage. The storage enforces at
	// most one rental per order; adding a second returns *errs.ConflictError.
	Add(ctx context.Context, aggregate *rental.Rental) error

	// Update persists changes to an existing rental aggregate.
	Update(ctx context.Context, aggregate *rental.Rental) error

	// Get retrieves a rental aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rental.Rental, error)

	// ExistsForOrder reports whether a rental was already derived from the order.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// GetActiveExpiringBy retrieves active rentals whose current period ends
	// on or before the deadline. Used by the renewal reminder job.
	GetActiveExpiringBy(ctx context.Context, deadline time.Time) ([]*rental.Rental, error)
}
