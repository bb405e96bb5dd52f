// Package queries contains the read side of the order lifecycle: role-scoped
// listings served straight from the database, bypassing the aggregates.
package queries

import (
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderView is the denormalized read model for order listings. Customer,
// product and agent names are joined in so clients render rows without extra
// lookups.
type OrderView struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	CustomerName     string
	ProductID        kernel.UUID
	ProductName      string
	ServiceAgentID   *kernel.UUID
	ServiceAgentName *string
	OrderType        order.Type
	Status           order.Status
	PaymentState     order.PaymentState
	TotalAmount      kernel.Money
	InstallationDate *time.Time
	CreatedAt        time.Time
}

// orderViewSelect is the shared projection both order listings scan from.
const orderViewSelect = `
	SELECT
		o.id,
		o.customer_id,
		c.name,
		o.product_id,
		p.name,
		o.service_agent_id,
		a.name,
		o.order_type,
		o.status,
		o.payment_state,
		o.total_amount,
		o.currency,
		o.installation_date,
		o.created_at
	FROM orders o
	JOIN users c ON c.id = o.customer_id
	JOIN products p ON p.id = o.product_id
	LEFT JOIN users a ON a.id = o.service_agent_id
`

// scanOrderView reads one row of the shared projection into an OrderView.
func scanOrderView(rows interface {
	Scan(dest ...any) error
}) (OrderView, error) {
	var (
		view             OrderView
		id               uuid.UUID
		customerID       uuid.UUID
		productID        uuid.UUID
		agentID          *uuid.UUID
		orderType        int
		status           int
		paymentState     int
		amount           int64
		currency         string
		installationDate *time.Time
		createdAt        time.Time
	)

	err := rows.Scan(
		&id,
		&customerID,
		&view.CustomerName,
		&productID,
		&view.ProductName,
		&agentID,
		&view.ServiceAgentName,
		&orderType,
		&status,
		&paymentState,
		&amount,
		&currency,
		&installationDate,
		&createdAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	view.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}

	view.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderView{}, err
	}

	view.ProductID, err = kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return OrderView{}, err
	}

	if agentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*agentID)[:])
		if agentErr != nil {
			return OrderView{}, agentErr
		}
		view.ServiceAgentID = &aID
	}

	view.TotalAmount, err = kernel.NewMoney(amount, currency)
	if err != nil {
		return OrderView{}, err
	}

	view.OrderType = order.Type(orderType)
	view.Status = order.Status(status)
	view.PaymentState = order.PaymentState(paymentState)
	view.InstallationDate = installationDate
	view.CreatedAt = createdAt

	return view, nil
}
