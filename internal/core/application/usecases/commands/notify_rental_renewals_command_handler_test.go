package commands_test

import (
	"errors"
	"testing"
	"time"

	"purelife/internal/core/application/usecases/commands"
	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/rental"
	"purelife/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expiringRental(t *testing.T) *rental.Rental {
	t.Helper()

	r, err := rental.NewRental(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testMoney(t, 59900), testMoney(t, 150000), time.Now().UTC().AddDate(0, -3, 2))
	require.NoError(t, err)
	return r
}

func TestNotifyRentalRenewalsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	rentals := []*rental.Rental{expiringRental(t), expiringRental(t)}
	cmd, err := commands.NewNotifyRentalRenewalsCommand(7)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	factory := new(MockRentalUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("GetActiveExpiringBy", ctx, mock.AnythingOfType("time.Time")).Return(rentals, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Send", ctx, mock.Anything).Return(nil).Twice(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewNotifyRentalRenewalsCommandHandler(factory, notifier, discardLogger())
	sent, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, sent)
	rentalRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNotifyRentalRenewalsCommandHandler_Handle_FailedSendDoesNotStopSweep(t *testing.T) {
	ctx := t.Context()
	rentals := []*rental.Rental{expiringRental(t), expiringRental(t)}
	cmd, err := commands.NewNotifyRentalRenewalsCommand(7)
	require.NoError(t, err)

	rentalRepo := new(MockRentalRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	factory := new(MockRentalUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RentalRepository").Return(rentalRepo).Once(),
		rentalRepo.On("GetActiveExpiringBy", ctx, mock.AnythingOfType("time.Time")).Return(rentals, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Send", ctx, mock.Anything).Return(errors.New("smtp down")).Once()
	notifier.On("Send", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewNotifyRentalRenewalsCommandHandler(factory, notifier, discardLogger())
	sent, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, sent)
	notifier.AssertNumberOfCalls(t, "Send", 2)
}

func TestNewNotifyRentalRenewalsCommand_WindowOutOfRange(t *testing.T) {
	_, err := commands.NewNotifyRentalRenewalsCommand(0)

	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrValueIsOutOfRange))
}
