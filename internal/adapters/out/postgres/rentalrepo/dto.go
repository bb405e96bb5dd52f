// Package rentalrepo provides data transfer objects and mapping functions for rental persistence.
package rentalrepo

import (
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/rental"

	"github.com/google/uuid"
)

// RentalDTO represents the database structure for persisting rental aggregates.
// The unique index on order id backs the invariant that installing a rental
// order creates at most one rental, even across concurrent status changes.
type RentalDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID         uuid.UUID `gorm:"type:uuid;index"`
	ProductID          uuid.UUID `gorm:"type:uuid"`
	Status             int       `gorm:"index"`
	StartDate          time.Time
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time `gorm:"index"`
	MonthlyAmount      int64
	DepositAmount      int64
	Currency           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for rental entities.
func (RentalDTO) TableName() string {
	return "rentals"
}

// fromDomain converts a rental domain aggregate to its database representation.
func fromDomain(aggregate *rental.Rental) RentalDTO {
	return RentalDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderID:            aggregate.OrderID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		ProductID:          aggregate.ProductID().Bytes(),
		Status:             int(aggregate.Status()),
		StartDate:          aggregate.StartDate(),
		CurrentPeriodStart: aggregate.CurrentPeriodStart(),
		CurrentPeriodEnd:   aggregate.CurrentPeriodEnd(),
		MonthlyAmount:      aggregate.MonthlyAmount().Amount(),
		DepositAmount:      aggregate.DepositAmount().Amount(),
		Currency:           aggregate.MonthlyAmount().Currency(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a rental domain aggregate using RestoreRental.
func toDomain(dto RentalDTO) (*rental.Rental, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
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

	monthlyAmount, err := kernel.NewMoney(dto.MonthlyAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	depositAmount, err := kernel.NewMoney(dto.DepositAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	return rental.RestoreRental(
		id,
		orderID,
		customerID,
		productID,
		rental.Status(dto.Status),
		dto.StartDate,
		dto.CurrentPeriodStart,
		dto.CurrentPeriodEnd,
		monthlyAmount,
		depositAmount,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
