package payment_test

import (
	"errors"
	"testing"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/payment"
	"purelife/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T) *payment.Payment {
	t.Helper()

	amount, err := kernel.NewMoney(150000, kernel.CurrencyINR)
	require.NoError(t, err)

	p, err := payment.NewPayment(kernel.NewUUID(), amount, payment.TypeDeposit)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("should create pending payment without gateway identifiers", func(t *testing.T) {
		orderID := kernel.NewUUID()
		amount, _ := kernel.NewMoney(999900, kernel.CurrencyINR)

		p, err := payment.NewPayment(orderID, amount, payment.TypePurchase)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, payment.TypePurchase, p.Type())
		assert.Nil(t, p.GatewayOrderID())
		assert.Nil(t, p.GatewayPaymentID())
	})

	t.Run("should fail with empty order id", func(t *testing.T) {
		amount, _ := kernel.NewMoney(100, kernel.CurrencyINR)

		_, err := payment.NewPayment(kernel.UUID{}, amount, payment.TypeDeposit)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should fail with unknown payment type", func(t *testing.T) {
		amount, _ := kernel.NewMoney(100, kernel.CurrencyINR)

		_, err := payment.NewPayment(kernel.NewUUID(), amount, payment.TypeUnknown)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})
}

func TestPayment_AttachGatewayOrder(t *testing.T) {
	t.Run("should record the gateway order id", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.AttachGatewayOrder("order_N5liQEHsN1"))

		require.NotNil(t, p.GatewayOrderID())
		assert.Equal(t, "order_N5liQEHsN1", *p.GatewayOrderID())
		assert.Equal(t, payment.StatusPending, p.Status())
	})

	t.Run("should allow re-attaching while pending", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.AttachGatewayOrder("order_first"))

		require.NoError(t, p.AttachGatewayOrder("order_second"))

		assert.Equal(t, "order_second", *p.GatewayOrderID())
	})

	t.Run("should reject empty gateway order id", func(t *testing.T) {
		p := newTestPayment(t)

		err := p.AttachGatewayOrder("")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should conflict after completion", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.AttachGatewayOrder("order_done"))
		require.NoError(t, p.Complete("pay_done"))

		err := p.AttachGatewayOrder("order_again")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrConflict))
	})
}

func TestPayment_Complete(t *testing.T) {
	t.Run("should capture the payment", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.AttachGatewayOrder("order_N5liQEHsN1"))

		require.NoError(t, p.Complete("pay_N5lzTmvyXQ"))

		assert.Equal(t, payment.StatusCompleted, p.Status())
		require.NotNil(t, p.GatewayPaymentID())
		assert.Equal(t, "pay_N5lzTmvyXQ", *p.GatewayPaymentID())
	})

	t.Run("should reject completion before checkout", func(t *testing.T) {
		p := newTestPayment(t)

		err := p.Complete("pay_early")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidState))
	})

	t.Run("should conflict on double completion", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.AttachGatewayOrder("order_x"))
		require.NoError(t, p.Complete("pay_x"))

		err := p.Complete("pay_y")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrConflict))
	})
}

func TestPayment_Fail(t *testing.T) {
	t.Run("should mark payment failed and keep the gateway order id", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.AttachGatewayOrder("order_bad_sig"))

		p.Fail()

		assert.Equal(t, payment.StatusFailed, p.Status())
		require.NotNil(t, p.GatewayOrderID())
		assert.Nil(t, p.GatewayPaymentID())
	})
}

func TestPayment_RestorePayment(t *testing.T) {
	t.Run("should restore a completed payment", func(t *testing.T) {
		id := kernel.NewUUID()
		amount, _ := kernel.NewMoney(150000, kernel.CurrencyINR)
		gatewayOrderID := "order_restored"
		gatewayPaymentID := "pay_restored"
		created := time.Now().Add(-time.Hour)

		p, err := payment.RestorePayment(id, kernel.NewUUID(), amount,
			payment.TypeDeposit, payment.StatusCompleted,
			&gatewayOrderID, &gatewayPaymentID, created, created)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, payment.StatusCompleted, p.Status())
	})

	t.Run("should fail on invalid stored status", func(t *testing.T) {
		amount, _ := kernel.NewMoney(150000, kernel.CurrencyINR)

		_, err := payment.RestorePayment(kernel.NewUUID(), kernel.NewUUID(), amount,
			payment.TypeDeposit, payment.StatusUnknown, nil, nil, time.Now(), time.Now())

		require.Error(t, err)
	})
}

func TestPayment_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p payment.Payment

		err := p.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, payment.ErrPaymentIsNotConstructed)
	})
}
