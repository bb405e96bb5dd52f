package user

import (
	"fmt"

	"purelife/internal/pkg/errs"
)

// Role determines what a user may see and do.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin has unrestricted access across all franchise areas.
	RoleAdmin

	// RoleFranchiseOwner manages orders and agents within one franchise area.
	RoleFranchiseOwner

	// RoleServiceAgent installs and services purifiers.
	RoleServiceAgent

	// RoleCustomer places and tracks their own orders.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:        "UNKNOWN",
		RoleAdmin:          "ADMIN",
		RoleFranchiseOwner: "FRANCHISE_OWNER",
		RoleServiceAgent:   "SERVICE_AGENT",
		RoleCustomer:       "CUSTOMER",
	}
}

// RoleFromString parses a role from its wire representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleCustomer {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
