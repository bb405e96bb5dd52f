// Package productrepo provides data transfer objects and mapping functions for the product catalog.
package productrepo

import (
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog products.
// Prices are nullable: a purchase-only product has no rent price or deposit,
// and a rental-only product has no buy price.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	BuyPrice      *int64
	RentPrice     *int64
	Deposit       *int64
	Currency      string
	IsPurchasable bool
	IsRentable    bool
	CreatedAt     time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	dto := ProductDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Currency:      kernel.CurrencyINR,
		IsPurchasable: aggregate.IsPurchasable(),
		IsRentable:    aggregate.IsRentable(),
		CreatedAt:     aggregate.CreatedAt(),
	}

	if aggregate.IsPurchasable() {
		if buy, err := aggregate.PurchaseAmount(); err == nil {
			amount := buy.Amount()
			dto.BuyPrice = &amount
			dto.Currency = buy.Currency()
		}
	}
	if aggregate.IsRentable() {
		if rent, err := aggregate.RentPrice(); err == nil {
			amount := rent.Amount()
			dto.RentPrice = &amount
			dto.Currency = rent.Currency()
		}
		if deposit, err := aggregate.RentalDeposit(); err == nil {
			amount := deposit.Amount()
			dto.Deposit = &amount
		}
	}

	return dto
}

// toDomain converts a database DTO to a product domain aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	toMoney := func(amount *int64) (*kernel.Money, error) {
		if amount == nil {
			return nil, nil
		}
		m, moneyErr := kernel.NewMoney(*amount, dto.Currency)
		if moneyErr != nil {
			return nil, moneyErr
		}
		return &m, nil
	}

	buyPrice, err := toMoney(dto.BuyPrice)
	if err != nil {
		return nil, err
	}

	rentPrice, err := toMoney(dto.RentPrice)
	if err != nil {
		return nil, err
	}

	deposit, err := toMoney(dto.Deposit)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		buyPrice,
		rentPrice,
		deposit,
		dto.IsPurchasable,
		dto.IsRentable,
		dto.CreatedAt,
	)
}
