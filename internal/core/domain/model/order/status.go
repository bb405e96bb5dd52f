package order

import (
	"fmt"

	"purelife/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders follow
// the correct business workflow.
//
// State transitions:
//
//	CREATED ──> PAYMENT_PENDING ──> PAYMENT_COMPLETED ──> ASSIGNED <──> INSTALLATION_PENDING
//	   │              │                      │                │                  │
//	   v              v                      └──> INSTALLATION_PENDING           v
//	CANCELLED     CANCELLED                                   └────────────> INSTALLED ──> COMPLETED
//
// CANCELLED and COMPLETED are terminal: no transition leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status when an order is first created.
	StatusCreated

	// StatusPaymentPending indicates a payment intent has been opened with the gateway.
	StatusPaymentPending

	// StatusPaymentCompleted indicates the payment was verified and captured.
	StatusPaymentCompleted

	// StatusAssigned indicates a service agent has been assigned for installation.
	StatusAssigned

	// StatusInstallationPending indicates an installation date has been scheduled.
	StatusInstallationPending

	// StatusInstalled indicates the purifier has been installed at the customer's site.
	StatusInstalled

	// StatusCompleted indicates the order is fully serviced. Terminal.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled before fulfilment. Terminal.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:             "UNKNOWN",
		StatusCreated:             "CREATED",
		StatusPaymentPending:      "PAYMENT_PENDING",
		StatusPaymentCompleted:    "PAYMENT_COMPLETED",
		StatusAssigned:            "ASSIGNED",
		StatusInstallationPending: "INSTALLATION_PENDING",
		StatusInstalled:           "INSTALLED",
		StatusCompleted:           "COMPLETED",
		StatusCancelled:           "CANCELLED",
	}
}

// statusTransitions is the single source of truth for which status changes an
// order may request. Privileged transitions (agent assignment, installation
// scheduling) are expressed as named Order methods with their own preconditions
// and do not consult this table.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusCreated:             {StatusPaymentPending, StatusCancelled},
		StatusPaymentPending:      {StatusPaymentCompleted, StatusCancelled},
		StatusPaymentCompleted:    {StatusAssigned, StatusInstallationPending},
		StatusAssigned:            {StatusInstallationPending, StatusInstalled},
		StatusInstallationPending: {StatusInstalled, StatusAssigned},
		StatusInstalled:           {StatusCompleted},
		StatusCancelled:           {},
		StatusCompleted:           {},
	}
}

// StatusFromString parses a status from its wire representation ("CREATED",
// "PAYMENT_PENDING", ...). Returns an error for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	next, ok := statusTransitions()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the (s, target) pair appears in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the requested status change against the transition table.
//
// Returns:
//   - (target, nil) when the pair is declared in the table
//   - (0, *errs.TransitionNotAllowedError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewTransitionNotAllowedError(s.String(), target.String())
	}

	return target, nil
}
