// Package user provides the User entity and the Actor value used for
// authorization decisions. Users carry one of four roles (admin, franchise
// owner, service agent, customer) and, except for admins, belong to a
// franchise area. Service agents without a franchise area are global agents
// and may serve any area.
package user
