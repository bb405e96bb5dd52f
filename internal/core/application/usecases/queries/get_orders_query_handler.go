package queries

import (
	"context"
	"strings"

	"purelife/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler serves the role-scoped order listing straight from the
// database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for role-scoped order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing for the acting user's role. A franchise owner
// without an area sees an empty list rather than an error.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	actor := query.Actor()
	switch actor.Role {
	case user.RoleAdmin:
	case user.RoleFranchiseOwner:
		if actor.FranchiseAreaID == nil {
			return []OrderView{}, nil
		}
		conditions = append(conditions, "c.franchise_area_id = ?")
		args = append(args, actor.FranchiseAreaID.Bytes())
	case user.RoleServiceAgent:
		conditions = append(conditions, "o.service_agent_id = ?")
		args = append(args, actor.ID.Bytes())
	default:
		conditions = append(conditions, "o.customer_id = ?")
		args = append(args, actor.ID.Bytes())
	}

	if status := query.Status(); status != nil {
		conditions = append(conditions, "o.status = ?")
		args = append(args, int(*status))
	}
	if orderType := query.OrderType(); orderType != nil {
		conditions = append(conditions, "o.order_type = ?")
		args = append(args, int(*orderType))
	}

	sql := orderViewSelect
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
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
