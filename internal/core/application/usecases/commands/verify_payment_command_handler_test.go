package commands_test

import (
	"errors"
	"testing"

	"purelife/internal/core/application/usecases/commands"
	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/order"
	"purelife/internal/core/domain/model/payment"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testGatewayOrderID   = "order_N5liQEHsN1"
	testGatewayPaymentID = "pay_N5lzTmvyXQ"
	testSignature        = "2fb08b6d9c7f5a0c2c8e7c2a9d4a1b3c"
)

func TestVerifyPaymentCommandHandler_Handle_SignatureMatches(t *testing.T) {
	ctx := t.Context()
	areaID := kernel.NewUUID()
	customer := testCustomer(t, areaID)
	agents := []*user.User{testAgent(t, &areaID), testAgent(t, nil)}
	ord := restoredOrder(t, customer.ID(), kernel.NewUUID(), order.TypeRental,
		order.StatusPaymentPending, order.PaymentStatePending, nil)
	gatewayOrderID := testGatewayOrderID
	pmt := openPayment(t, ord.ID(), &gatewayOrderID)
	cmd, err := commands.NewVerifyPaymentCommand(customer.Actor(), ord.ID(),
		testGatewayOrderID, testGatewayPaymentID, testSignature)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	userRepo := new(MockUserRepository)
	gateway := new(MockPaymentGateway)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	factory := new(MockOrderPaymentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		paymentRepo.On("GetByOrderAndGatewayOrder", ctx, ord.ID(), testGatewayOrderID).Return(pmt, nil).Once(),
		gateway.On("VerifySignature", testGatewayOrderID, testGatewayPaymentID, testSignature).Return(true).Once(),
		paymentRepo.On("Update", ctx, pmt).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Send", ctx, mock.Anything).Return(nil).Once(),
		userRepo.On("Get", ctx, customer.ID()).Return(customer, nil).Once(),
		userRepo.On("GetAgentsForArea", ctx, areaID).Return(agents, nil).Once(),
		notifier.On("Send", ctx, mock.Anything).Return(nil).Twice(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewVerifyPaymentCommandHandler(factory, userRepo, gateway, notifier, discardLogger())
	verified, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, verified)
	require.Equal(t, payment.StatusCompleted, pmt.Status())
	require.NotNil(t, pmt.GatewayPaymentID())
	require.Equal(t, testGatewayPaymentID, *pmt.GatewayPaymentID())
	require.Equal(t, order.StatusPaymentCompleted, ord.Status())
	require.Equal(t, order.PaymentStateCompleted, ord.PaymentState())
	orderRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestVerifyPaymentCommandHandler_Handle_SignatureMismatch(t *testing.T) {
	ctx := t.Context()
	areaID := kernel.NewUUID()
	customer := testCustomer(t, areaID)
	ord := restoredOrder(t, customer.ID(), kernel.NewUUID(), order.TypeRental,
		order.StatusPaymentPending, order.PaymentStatePending, nil)
	gatewayOrderID := testGatewayOrderID
	pmt := openPayment(t, ord.ID(), &gatewayOrderID)
	cmd, err := commands.NewVerifyPaymentCommand(customer.Actor(), ord.ID(),
		testGatewayOrderID, testGatewayPaymentID, "tampered")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	gateway := new(MockPaymentGateway)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	factory := new(MockOrderPaymentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		paymentRepo.On("GetByOrderAndGatewayOrder", ctx, ord.ID(), testGatewayOrderID).Return(pmt, nil).Once(),
		gateway.On("VerifySignature", testGatewayOrderID, testGatewayPaymentID, "tampered").Return(false).Once(),
		paymentRepo.On("Update", ctx, pmt).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Send", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewVerifyPaymentCommandHandler(factory, new(MockUserRepository), gateway, notifier, discardLogger())
	verified, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, verified)
	require.Equal(t, payment.StatusFailed, pmt.Status())
	require.Nil(t, pmt.GatewayPaymentID())
	require.Equal(t, order.StatusPaymentPending, ord.Status())
	require.Equal(t, order.PaymentStatePending, ord.PaymentState())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	gateway.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestVerifyPaymentCommandHandler_Handle_PaymentNotFound(t *testing.T) {
	ctx := t.Context()
	areaID := kernel.NewUUID()
	customer := testCustomer(t, areaID)
	ord := restoredOrder(t, customer.ID(), kernel.NewUUID(), order.TypeRental,
		order.StatusPaymentPending, order.PaymentStatePending, nil)
	cmd, err := commands.NewVerifyPaymentCommand(customer.Actor(), ord.ID(),
		testGatewayOrderID, testGatewayPaymentID, testSignature)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	factory := new(MockOrderPaymentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		paymentRepo.On("GetByOrderAndGatewayOrder", ctx, ord.ID(), testGatewayOrderID).
			Return(nil, errs.NewObjectNotFoundError("gatewayOrderId", testGatewayOrderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewVerifyPaymentCommandHandler(factory, new(MockUserRepository),
		new(MockPaymentGateway), new(MockNotifier), discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestVerifyPaymentCommandHandler_Handle_AgentNotificationFailuresAreIsolated(t *testing.T) {
	ctx := t.Context()
	areaID := kernel.NewUUID()
	customer := testCustomer(t, areaID)
	agents := []*user.User{testAgent(t, &areaID), testAgent(t, &areaID)}
	ord := restoredOrder(t, customer.ID(), kernel.NewUUID(), order.TypePurchase,
		order.StatusPaymentPending, order.PaymentStatePending, nil)
	gatewayOrderID := testGatewayOrderID
	pmt := openPayment(t, ord.ID(), &gatewayOrderID)
	cmd, err := commands.NewVerifyPaymentCommand(customer.Actor(), ord.ID(),
		testGatewayOrderID, testGatewayPaymentID, testSignature)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	userRepo := new(MockUserRepository)
	gateway := new(MockPaymentGateway)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	factory := new(MockOrderPaymentUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		paymentRepo.On("GetByOrderAndGatewayOrder", ctx, ord.ID(), testGatewayOrderID).Return(pmt, nil).Once(),
		gateway.On("VerifySignature", testGatewayOrderID, testGatewayPaymentID, testSignature).Return(true).Once(),
		paymentRepo.On("Update", ctx, pmt).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Customer notification succeeds; the first agent send fails, the second
	// must still be attempted.
	notifier.On("Send", ctx, mock.Anything).Return(nil).Once()
	notifier.On("Send", ctx, mock.Anything).Return(errors.New("device unreachable")).Once()
	notifier.On("Send", ctx, mock.Anything).Return(nil).Once()
	userRepo.On("Get", ctx, customer.ID()).Return(customer, nil).Once()
	userRepo.On("GetAgentsForArea", ctx, areaID).Return(agents, nil).Once()

	h := commands.NewVerifyPaymentCommandHandler(factory, userRepo, gateway, notifier, discardLogger())
	verified, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, verified)
	notifier.AssertNumberOfCalls(t, "Send", 3)
}
