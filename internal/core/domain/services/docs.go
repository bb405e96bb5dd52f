// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the order lifecycle system. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - AccessPolicy: role- and franchise-scoped authorization for order operations
//   - AgentMatcher: eligibility rules for assigning a service agent to an order
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
