package product_test

import (
	"errors"
	"testing"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/product"
	"purelife/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) *kernel.Money {
	t.Helper()

	m, err := kernel.NewMoney(amount, kernel.CurrencyINR)
	require.NoError(t, err)
	return &m
}

func TestNewProduct(t *testing.T) {
	t.Run("should create product offered both ways", func(t *testing.T) {
		p, err := product.NewProduct("AquaPure RO-500",
			money(t, 1599900), money(t, 59900), money(t, 150000), true, true)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.IsPurchasable())
		assert.True(t, p.IsRentable())
	})

	t.Run("should reject purchasable product without buy price", func(t *testing.T) {
		_, err := product.NewProduct("AquaPure RO-500", nil, money(t, 59900), money(t, 150000), true, true)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should reject rentable product without deposit", func(t *testing.T) {
		_, err := product.NewProduct("AquaPure RO-500", money(t, 1599900), money(t, 59900), nil, true, true)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should reject product offered neither way", func(t *testing.T) {
		_, err := product.NewProduct("Shelfware", nil, nil, nil, false, false)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})
}

func TestProduct_PurchaseAmount(t *testing.T) {
	t.Run("should return the buy price", func(t *testing.T) {
		p, err := product.NewProduct("AquaPure RO-500", money(t, 1599900), nil, nil, true, false)
		require.NoError(t, err)

		amount, err := p.PurchaseAmount()

		require.NoError(t, err)
		assert.Equal(t, int64(1599900), amount.Amount())
	})

	t.Run("should fail for rental-only products", func(t *testing.T) {
		p, err := product.NewProduct("RentalOnly", nil, money(t, 59900), money(t, 150000), false, true)
		require.NoError(t, err)

		_, err = p.PurchaseAmount()

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidState))
	})
}

func TestProduct_RentalDeposit(t *testing.T) {
	t.Run("should return the deposit", func(t *testing.T) {
		p, err := product.NewProduct("RentalOnly", nil, money(t, 59900), money(t, 150000), false, true)
		require.NoError(t, err)

		deposit, err := p.RentalDeposit()

		require.NoError(t, err)
		assert.Equal(t, int64(150000), deposit.Amount())
	})

	t.Run("should fail for purchase-only products", func(t *testing.T) {
		p, err := product.NewProduct("BuyOnly", money(t, 1599900), nil, nil, true, false)
		require.NoError(t, err)

		_, err = p.RentalDeposit()

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidState))
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}
