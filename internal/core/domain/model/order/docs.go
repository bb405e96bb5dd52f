// Package order provides domain entities and business logic for order lifecycle
// management in the water-purifier sales and rental business. It implements the
// Order aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root that manages order identity, payment state, and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//   - PaymentState: the order-level view of payment progress
//   - Type: purchase vs. rental
//
// Key business rules:
//   - Order status only advances along the declared transition table
//   - CANCELLED and COMPLETED are terminal statuses with no outgoing transitions
//   - A service agent can only be set once payment has completed
//   - Agent assignment and installation scheduling are privileged transitions with
//     their own preconditions, performed through named methods rather than raw
//     status writes
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
