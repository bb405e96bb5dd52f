package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"purelife/internal/core/application/usecases/commands"
	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/order"
	"purelife/internal/core/domain/model/payment"
	"purelife/internal/core/domain/model/product"
	"purelife/internal/core/domain/model/rental"
	"purelife/internal/core/domain/model/user"
	"purelife/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetByOrderAndGatewayOrder(ctx context.Context, orderID kernel.UUID, gatewayOrderID string) (*payment.Payment, error) {
	args := m.Called(ctx, orderID, gatewayOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetOpenByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockRentalRepository struct{ mock.Mock }

func (m *MockRentalRepository) Add(ctx context.Context, r *rental.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepository) Update(ctx context.Context, r *rental.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepository) Get(ctx context.Context, id kernel.UUID) (*rental.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Rental), args.Error(1)
}
func (m *MockRentalRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepository) GetActiveExpiringBy(ctx context.Context, deadline time.Time) ([]*rental.Rental, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rental.Rental), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) GetAgentsForArea(ctx context.Context, areaID kernel.UUID) ([]*user.User, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, amount kernel.Money, receipt string, notes map[string]string) (ports.PaymentIntent, error) {
	args := m.Called(ctx, amount, receipt, notes)
	return args.Get(0).(ports.PaymentIntent), args.Error(1)
}
func (m *MockPaymentGateway) VerifySignature(gatewayOrderID string, gatewayPaymentID string, signature string) bool {
	args := m.Called(gatewayOrderID, gatewayPaymentID, signature)
	return args.Bool(0)
}
func (m *MockPaymentGateway) KeyID() string {
	args := m.Called()
	return args.String(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) RentalRepository() ports.RentalRepository {
	args := m.Called()
	return args.Get(0).(ports.RentalRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderPaymentUoWFactory struct{ mock.Mock }

func (m *MockOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderPaymentUoW)
}

type MockRentalUoWFactory struct{ mock.Mock }

func (m *MockRentalUoWFactory) Create() commands.RentalUoW {
	args := m.Called()
	return args.Get(0).(commands.RentalUoW)
}

// Fixture helpers shared across handler tests.

func testMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()

	m, err := kernel.NewMoney(amount, kernel.CurrencyINR)
	require.NoError(t, err)
	return m
}

func testCustomer(t *testing.T, areaID kernel.UUID) *user.User {
	t.Helper()

	u, err := user.NewUser("Asha Rao", "asha@example.com", "+919800000001", user.RoleCustomer, &areaID)
	require.NoError(t, err)
	return u
}

func testAgent(t *testing.T, areaID *kernel.UUID) *user.User {
	t.Helper()

	u, err := user.NewUser("Vikram Singh", "vikram@example.com", "", user.RoleServiceAgent, areaID)
	require.NoError(t, err)
	return u
}

func testProduct(t *testing.T) *product.Product {
	t.Helper()

	buy := testMoney(t, 1599900)
	rent := testMoney(t, 59900)
	deposit := testMoney(t, 150000)
	p, err := product.NewProduct("AquaPure RO-500", &buy, &rent, &deposit, true, true)
	require.NoError(t, err)
	return p
}

func restoredOrder(t *testing.T, customerID kernel.UUID, productID kernel.UUID,
	orderType order.Type, status order.Status, paymentState order.PaymentState,
	serviceAgentID *kernel.UUID) *order.Order {
	t.Helper()

	now := time.Now().UTC()
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, productID, orderType,
		status, paymentState, testMoney(t, 150000), serviceAgentID, nil, now, now)
	require.NoError(t, err)
	return o
}

func openPayment(t *testing.T, orderID kernel.UUID, gatewayOrderID *string) *payment.Payment {
	t.Helper()

	now := time.Now().UTC()
	p, err := payment.RestorePayment(kernel.NewUUID(), orderID, testMoney(t, 150000),
		payment.TypeDeposit, payment.StatusPending, gatewayOrderID, nil, now, now)
	require.NoError(t, err)
	return p
}
