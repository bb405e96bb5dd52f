package user

import (
	"errors"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/pkg/errs"
	"purelife/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("user must be created via NewUser or RestoreUser")

// User is an account in the system: a customer, a service agent, a franchise
// owner or an admin. Customers and agents normally belong to a franchise area;
// an agent without one is a global agent and may serve any area.
type User struct {
	id              kernel.UUID
	name            string
	email           string
	phone           string
	role            Role
	franchiseAreaID *kernel.UUID
	isActive        bool
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewUser creates an active user with the given role.
func NewUser(name string, email string, phone string, role Role, franchiseAreaID *kernel.UUID) (*User, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if franchiseAreaID != nil {
		if err := franchiseAreaID.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("franchiseAreaId", err)
		}
	}

	return &User{
		id:              kernel.NewUUID(),
		name:            name,
		email:           email,
		phone:           phone,
		role:            role,
		franchiseAreaID: franchiseAreaID,
		isActive:        true,
		createdAt:       time.Now().UTC(),

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, name string, email string, phone string, role Role,
	franchiseAreaID *kernel.UUID, isActive bool, createdAt time.Time) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if franchiseAreaID != nil {
		if err := franchiseAreaID.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("franchiseAreaId", err)
		}
	}

	return &User{
		id:              id,
		name:            name,
		email:           email,
		phone:           phone,
		role:            role,
		franchiseAreaID: franchiseAreaID,
		isActive:        isActive,
		createdAt:       createdAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Phone returns the user's phone number, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// FranchiseAreaID returns the user's franchise area, or nil for admins and
// global agents.
func (u *User) FranchiseAreaID() *kernel.UUID {
	return u.franchiseAreaID
}

// IsActive reports whether the account is active.
func (u *User) IsActive() bool {
	return u.isActive
}

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// IsGlobalAgent reports whether the user is a service agent without a
// franchise area, eligible to serve any area.
func (u *User) IsGlobalAgent() bool {
	return u.role == RoleServiceAgent && u.franchiseAreaID == nil
}

// CanServeArea reports whether the user is an active service agent eligible to
// serve the given franchise area: either a global agent or an agent assigned
// to that exact area.
func (u *User) CanServeArea(areaID kernel.UUID) bool {
	if u.role != RoleServiceAgent || !u.isActive {
		return false
	}
	if u.franchiseAreaID == nil {
		return true
	}
	return u.franchiseAreaID.IsEqual(areaID)
}

// Deactivate disables the account. Inactive agents stop receiving assignments.
func (u *User) Deactivate() {
	u.isActive = false
}

// Actor returns the authorization view of this user.
func (u *User) Actor() Actor {
	return Actor{
		ID:              u.id,
		Role:            u.role,
		FranchiseAreaID: u.franchiseAreaID,
	}
}

// Validate checks that the user was created through a constructor.
func (u *User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}
