package product

import (
	"errors"
	"fmt"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/pkg/errs"
	"purelife/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created through
// NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("product must be created via NewProduct or RestoreProduct")

// Product is a purifier model from the catalog. Purchasable products carry a
// buy price; rentable products carry a monthly rent and a refundable deposit.
type Product struct {
	id            kernel.UUID
	name          string
	buyPrice      *kernel.Money
	rentPrice     *kernel.Money
	deposit       *kernel.Money
	isPurchasable bool
	isRentable    bool
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates a catalog product. A purchasable product must carry a buy
// price; a rentable one must carry both a rent price and a deposit.
func NewProduct(name string, buyPrice *kernel.Money, rentPrice *kernel.Money,
	deposit *kernel.Money, isPurchasable bool, isRentable bool) (*Product, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := validateOffering(buyPrice, rentPrice, deposit, isPurchasable, isRentable); err != nil {
		return nil, err
	}

	return &Product{
		id:            kernel.NewUUID(),
		name:          name,
		buyPrice:      buyPrice,
		rentPrice:     rentPrice,
		deposit:       deposit,
		isPurchasable: isPurchasable,
		isRentable:    isRentable,
		createdAt:     time.Now().UTC(),

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, name string, buyPrice *kernel.Money, rentPrice *kernel.Money,
	deposit *kernel.Money, isPurchasable bool, isRentable bool, createdAt time.Time) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := validateOffering(buyPrice, rentPrice, deposit, isPurchasable, isRentable); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		name:          name,
		buyPrice:      buyPrice,
		rentPrice:     rentPrice,
		deposit:       deposit,
		isPurchasable: isPurchasable,
		isRentable:    isRentable,
		createdAt:     createdAt,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func validateOffering(buyPrice *kernel.Money, rentPrice *kernel.Money, deposit *kernel.Money,
	isPurchasable bool, isRentable bool) error {
	if !isPurchasable && !isRentable {
		return errs.NewValueIsInvalidErrorWithCause("product offering is invalid",
			fmt.Errorf("product must be purchasable, rentable or both"))
	}
	if isPurchasable {
		if buyPrice == nil {
			return errs.NewValueIsRequiredError("buyPrice")
		}
		if err := buyPrice.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("buyPrice", err)
		}
	}
	if isRentable {
		if rentPrice == nil {
			return errs.NewValueIsRequiredError("rentPrice")
		}
		if err := rentPrice.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("rentPrice", err)
		}
		if deposit == nil {
			return errs.NewValueIsRequiredError("deposit")
		}
		if err := deposit.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("deposit", err)
		}
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog name.
func (p *Product) Name() string {
	return p.name
}

// IsPurchasable reports whether the product is offered for outright purchase.
func (p *Product) IsPurchasable() bool {
	return p.isPurchasable
}

// IsRentable reports whether the product is offered for rental.
func (p *Product) IsRentable() bool {
	return p.isRentable
}

// CreatedAt returns when the product was added to the catalog.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// PurchaseAmount returns the amount a purchase order must pay: the buy price.
// Fails when the product is not purchasable.
func (p *Product) PurchaseAmount() (kernel.Money, error) {
	if !p.isPurchasable {
		return kernel.Money{}, errs.NewInvalidStateError(
			fmt.Sprintf("product %s is not available for purchase", p.name))
	}
	return *p.buyPrice, nil
}

// RentalDeposit returns the amount a rental order must pay up front: the
// refundable deposit. Fails when the product is not rentable.
func (p *Product) RentalDeposit() (kernel.Money, error) {
	if !p.isRentable {
		return kernel.Money{}, errs.NewInvalidStateError(
			fmt.Sprintf("product %s is not available for rental", p.name))
	}
	return *p.deposit, nil
}

// RentPrice returns the monthly rent for rentable products.
// Fails when the product is not rentable.
func (p *Product) RentPrice() (kernel.Money, error) {
	if !p.isRentable {
		return kernel.Money{}, errs.NewInvalidStateError(
			fmt.Sprintf("product %s is not available for rental", p.name))
	}
	return *p.rentPrice, nil
}

// Validate checks that the product was created through a constructor.
func (p *Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}
