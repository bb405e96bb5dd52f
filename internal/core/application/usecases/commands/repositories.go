// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: authorization, validation,
// transaction management, persistence, and best-effort notification.
package commands

import (
	"context"

	"purelife/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// RentalRepoFactory provides access to the rental repository within a transaction.
	RentalRepoFactory interface {
		RentalRepository() ports.RentalRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderPaymentUoW manages the two-row transactions between an order and
	// its payment: creating both together and completing both together.
	OrderPaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// OrderPaymentUoWFactory creates new order/payment unit of work instances.
	OrderPaymentUoWFactory interface {
		Create() OrderPaymentUoW
	}

	// RentalUoW manages transactions for rental-only operations.
	RentalUoW interface {
		TxManager
		RentalRepoFactory
	}

	// RentalUoWFactory creates new rental unit of work instances.
	RentalUoWFactory interface {
		Create() RentalUoW
	}

	// UoW manages transactions across order, payment and rental aggregates.
	// Used when a rental order reaching INSTALLED must atomically create its
	// rental record alongside the order update.
	UoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		RentalRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
