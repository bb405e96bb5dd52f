// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and payment state are stored as their integer enum values; the
// service agent is a nullable foreign key indexed for agent workload queries.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index"`
	ProductID        uuid.UUID  `gorm:"type:uuid"`
	ServiceAgentID   *uuid.UUID `gorm:"type:uuid;index"`
	OrderType        int
	Status           int `gorm:"index"`
	PaymentState     int
	TotalAmount      int64
	Currency         string
	InstallationDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.ServiceAgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		ProductID:        aggregate.ProductID().Bytes(),
		ServiceAgentID:   agentID,
		OrderType:        int(aggregate.Type()),
		Status:           int(aggregate.Status()),
		PaymentState:     int(aggregate.PaymentState()),
		TotalAmount:      aggregate.TotalAmount().Amount(),
		Currency:         aggregate.TotalAmount().Currency(),
		InstallationDate: aggregate.InstallationDate(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.ServiceAgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.ServiceAgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		productID,
		order.Type(dto.OrderType),
		order.Status(dto.Status),
		order.PaymentState(dto.PaymentState),
		totalAmount,
		agentID,
		dto.InstallationDate,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
