package queries

import (
	"context"

	"purelife/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler serves a customer's order history from the
// database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order listings.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// defaultCustomerStatuses are the statuses shown when no filter is given:
// everything from successful payment onward.
func defaultCustomerStatuses() []int {
	return []int{
		int(order.StatusPaymentCompleted),
		int(order.StatusAssigned),
		int(order.StatusInstallationPending),
		int(order.StatusInstalled),
		int(order.StatusCompleted),
	}
}

// Handle executes the customer listing, newest orders first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := orderViewSelect + " WHERE o.customer_id = ?"
	args := []any{query.CustomerID().Bytes()}

	if status := query.Status(); status != nil {
		sql += " AND o.status = ?"
		args = append(args, int(*status))
	} else {
		sql += " AND o.status IN ?"
		args = append(args, defaultCustomerStatuses())
	}

	if orderType := query.OrderType(); orderType != nil {
		sql += " AND o.order_type = ?"
		args = append(args, int(*orderType))
	}

	sql += " ORDER BY o.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
