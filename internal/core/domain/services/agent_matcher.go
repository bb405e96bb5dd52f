package services

import (
	"errors"
	"fmt"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/errs"
)

// ErrNoEligibleAgents is returned when no service agent can serve an area.
var ErrNoEligibleAgents = errors.New("no eligible service agents")

// AgentMatcher is a domain service that applies the agent eligibility rules
// when a service agent is assigned to an order.
//
// An agent is eligible for a customer's area when all of the following hold:
//   - the user's role is SERVICE_AGENT
//   - the account is active
//   - the agent belongs to the customer's franchise area, or is a global
//     agent (no franchise area at all)
type AgentMatcher struct{}

// NewAgentMatcher creates a new AgentMatcher instance.
func NewAgentMatcher() AgentMatcher {
	return AgentMatcher{}
}

// EnsureEligible verifies the candidate may serve the customer's franchise
// area. Returns *errs.InvalidStateError naming the failed rule otherwise.
func (m AgentMatcher) EnsureEligible(candidate *user.User, customerAreaID kernel.UUID) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	if err := customerAreaID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("franchiseAreaId", err)
	}

	if candidate.Role() != user.RoleServiceAgent {
		return errs.NewInvalidStateError(
			fmt.Sprintf("user %s is not a service agent", candidate.ID()))
	}
	if !candidate.IsActive() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("service agent %s is not active", candidate.ID()))
	}
	if !candidate.CanServeArea(customerAreaID) {
		return errs.NewInvalidStateError(
			fmt.Sprintf("service agent %s does not serve the customer's franchise area", candidate.ID()))
	}
	return nil
}

// FilterEligible keeps the agents that may serve the customer's franchise
// area. Returns ErrNoEligibleAgents when none qualify.
func (m AgentMatcher) FilterEligible(candidates []*user.User, customerAreaID kernel.UUID) ([]*user.User, error) {
	if err := customerAreaID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("franchiseAreaId", err)
	}

	var eligible []*user.User
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.CanServeArea(customerAreaID) {
			eligible = append(eligible, c)
		}
	}

	if len(eligible) == 0 {
		return nil, ErrNoEligibleAgents
	}
	return eligible, nil
}
