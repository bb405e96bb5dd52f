// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
package paymentrepo

import (
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment aggregates.
// The gateway order id is indexed because the verification callback looks the
// payment up by it.
type PaymentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	Amount           int64
	Currency         string
	PaymentType      int
	Status           int
	GatewayOrderID   *string `gorm:"index"`
	GatewayPaymentID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		Amount:           aggregate.Amount().Amount(),
		Currency:         aggregate.Amount().Currency(),
		PaymentType:      int(aggregate.Type()),
		Status:           int(aggregate.Status()),
		GatewayOrderID:   aggregate.GatewayOrderID(),
		GatewayPaymentID: aggregate.GatewayPaymentID(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount, dto.Currency)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		amount,
		payment.Type(dto.PaymentType),
		payment.Status(dto.Status),
		dto.GatewayOrderID,
		dto.GatewayPaymentID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
