package queries

import (
	"context"
	"database/sql"
	"errors"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// globalAgentLabel is shown in place of an area name for agents with no
// franchise area binding.
const globalAgentLabel = "Global Agent"

// GetAvailableAgentsQueryHandler resolves the customer's franchise area for an
// order and lists the agents eligible to serve it.
type GetAvailableAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableAgentsQueryHandler creates a handler for eligible agent listings.
func NewGetAvailableAgentsQueryHandler(db *gorm.DB) GetAvailableAgentsQueryHandler {
	return GetAvailableAgentsQueryHandler{db: db}
}

// Handle executes the listing. Area agents come first, then global agents,
// each group sorted by name.
func (h GetAvailableAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableAgentsQuery,
) ([]AgentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	areaID, err := h.customerAreaForOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			u.id,
			u.name,
			u.email,
			u.phone,
			u.franchise_area_id,
			COALESCE(fa.name, ?)
		FROM users u
		LEFT JOIN franchise_areas fa ON fa.id = u.franchise_area_id
		WHERE u.role = ? AND u.is_active
	`
	args := []any{globalAgentLabel, int(user.RoleServiceAgent)}

	if areaID != nil {
		sqlQuery += " AND (u.franchise_area_id = ? OR u.franchise_area_id IS NULL)"
		args = append(args, areaID.Bytes())
	} else {
		sqlQuery += " AND u.franchise_area_id IS NULL"
	}

	sqlQuery += " ORDER BY u.franchise_area_id NULLS LAST, u.name"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := make([]AgentView, 0)
	for rows.Next() {
		var (
			view   AgentView
			id     uuid.UUID
			rawAID *uuid.UUID
		)

		err = rows.Scan(&id, &view.Name, &view.Email, &view.Phone, &rawAID, &view.FranchiseAreaName)
		if err != nil {
			return nil, err
		}

		view.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		if rawAID != nil {
			aID, areaErr := kernel.UUIDFromBytes((*rawAID)[:])
			if areaErr != nil {
				return nil, areaErr
			}
			view.FranchiseAreaID = &aID
		}
		view.IsGlobalAgent = view.FranchiseAreaID == nil

		agents = append(agents, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}

// customerAreaForOrder resolves the franchise area of the order's customer.
// Returns nil for customers without an area.
func (h GetAvailableAgentsQueryHandler) customerAreaForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*kernel.UUID, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT c.franchise_area_id
		FROM orders o
		JOIN users c ON c.id = o.customer_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	var rawAreaID *uuid.UUID
	if err := row.Scan(&rawAreaID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	if rawAreaID == nil {
		return nil, nil
	}

	areaID, err := kernel.UUIDFromBytes((*rawAreaID)[:])
	if err != nil {
		return nil, err
	}

	return &areaID, nil
}
