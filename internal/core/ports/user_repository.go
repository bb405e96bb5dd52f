package ports

import (
	"context"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"
)

// UserRepository defines the read contract for user accounts. Users are
// managed by a separate identity flow; the order lifecycle only reads them.
type UserRepository interface {
	// Get retrieves a user by their unique identifier.
	// Returns *errs.ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetAgentsForArea retrieves the active service agents eligible for a
	// franchise area: agents assigned to that area plus global agents.
	GetAgentsForArea(ctx context.Context, areaID kernel.UUID) ([]*user.User, error)
}
