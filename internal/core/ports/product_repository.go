package ports

import (
	"context"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for the product catalog.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	// Returns *errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
