package user

import (
	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/pkg/errs"
)

// Actor is the caller identity every operation is authorized against. It is a
// plain value extracted from the authenticated request, deliberately smaller
// than User: authorization needs only who is acting, in what role, and for
// which franchise area.
type Actor struct {
	ID              kernel.UUID
	Role            Role
	FranchiseAreaID *kernel.UUID
}

// NewActor creates a validated actor.
func NewActor(id kernel.UUID, role Role, franchiseAreaID *kernel.UUID) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, errs.NewValueIsRequiredErrorWithCause("actorId", err)
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if franchiseAreaID != nil {
		if err := franchiseAreaID.Validate(); err != nil {
			return Actor{}, errs.NewValueIsRequiredErrorWithCause("franchiseAreaId", err)
		}
	}

	return Actor{ID: id, Role: role, FranchiseAreaID: franchiseAreaID}, nil
}

// IsAdmin reports whether the actor has unrestricted access.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Validate checks the actor's constituent values.
func (a Actor) Validate() error {
	if err := a.ID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorId", err)
	}
	return a.Role.Validate()
}
