package kernel_test

import (
	"testing"

	"purelife/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create valid money", func(t *testing.T) {
		m, err := kernel.NewMoney(150000, kernel.CurrencyINR)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(150000), m.Amount())
		assert.Equal(t, "INR", m.Currency())
		assert.Equal(t, "150000 INR", m.String())
	})

	t.Run("should fail with zero amount", func(t *testing.T) {
		_, err := kernel.NewMoney(0, kernel.CurrencyINR)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-500, kernel.CurrencyINR)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-500 is not greater than 0")
	})

	t.Run("should fail with malformed currency", func(t *testing.T) {
		_, err := kernel.NewMoney(100, "RUPEES")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency is invalid")
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoney(100, kernel.CurrencyINR)
	b, _ := kernel.NewMoney(100, kernel.CurrencyINR)
	c, _ := kernel.NewMoney(200, kernel.CurrencyINR)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Money must be created")
	})
}
