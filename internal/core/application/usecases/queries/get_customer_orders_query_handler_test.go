package queries_test

import (
	"context"
	"testing"
	"time"

	"purelife/internal/adapters/out/postgres/orderrepo"
	"purelife/internal/adapters/out/postgres/productrepo"
	"purelife/internal/adapters/out/postgres/userrepo"
	"purelife/internal/core/application/usecases/queries"
	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/order"
	"purelife/internal/core/domain/model/product"
	"purelife/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandlerTestSuite verifies the customer listing and its
// default status window against a real PostgreSQL database.
type GetCustomerOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetCustomerOrdersQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
	userRepo    *userrepo.GormUserRepository
	productRepo *productrepo.GormProductRepository

	customer *user.User
	testProd *product.Product
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &userrepo.UserDTO{},
		&userrepo.FranchiseAreaDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCustomerOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.userRepo = userrepo.NewGormUserRepository(db)
	suite.productRepo = productrepo.NewGormProductRepository(db)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, users, franchise_areas, products").Error
	suite.Require().NoError(err)

	areaID := kernel.NewUUID()
	customer, err := user.NewUser("asha.rao", "asha.rao@purelife.example", "+919800000000",
		user.RoleCustomer, &areaID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.userRepo.Add(context.Background(), customer))
	suite.customer = customer

	buy, err := kernel.NewMoney(1599900, kernel.CurrencyINR)
	suite.Require().NoError(err)
	rent, err := kernel.NewMoney(59900, kernel.CurrencyINR)
	suite.Require().NoError(err)
	deposit, err := kernel.NewMoney(150000, kernel.CurrencyINR)
	suite.Require().NoError(err)
	prod, err := product.NewProduct("AquaPure RO-500", &buy, &rent, &deposit, true, true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(context.Background(), prod))
	suite.testProd = prod
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) seedOrder(
	status order.Status,
	paymentState order.PaymentState,
	createdAt time.Time,
) *order.Order {
	amount, err := kernel.NewMoney(150000, kernel.CurrencyINR)
	suite.Require().NoError(err)

	ord, err := order.RestoreOrder(kernel.NewUUID(), suite.customer.ID(), suite.testProd.ID(),
		order.TypeRental, status, paymentState, amount, nil, nil, createdAt, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), ord))
	return ord
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_DefaultWindowSkipsCheckoutAndCancelled() {
	now := time.Now().UTC()
	suite.seedOrder(order.StatusCreated, order.PaymentStatePending, now.Add(-4*time.Hour))
	suite.seedOrder(order.StatusPaymentPending, order.PaymentStatePending, now.Add(-3*time.Hour))
	suite.seedOrder(order.StatusCancelled, order.PaymentStatePending, now.Add(-2*time.Hour))
	installed := suite.seedOrder(order.StatusInstalled, order.PaymentStateCompleted, now.Add(-time.Hour))
	completed := suite.seedOrder(order.StatusCompleted, order.PaymentStateCompleted, now)

	query, err := queries.NewGetCustomerOrdersQuery(suite.customer.ID(), nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(completed.ID()))
	suite.True(result[1].ID.IsEqual(installed.ID()))
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_ExplicitStatusFilterOverridesDefault() {
	now := time.Now().UTC()
	cancelled := suite.seedOrder(order.StatusCancelled, order.PaymentStatePending, now)
	suite.seedOrder(order.StatusCompleted, order.PaymentStateCompleted, now.Add(-time.Hour))

	status := order.StatusCancelled
	query, err := queries.NewGetCustomerOrdersQuery(suite.customer.ID(), &status, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(cancelled.ID()))
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_OtherCustomersOrdersAreInvisible() {
	suite.seedOrder(order.StatusCompleted, order.PaymentStateCompleted, time.Now().UTC())

	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID(), nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetCustomerOrdersQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetCustomerOrdersQueryIsNotConstructed)
}

func TestGetCustomerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomerOrdersQueryHandlerTestSuite))
}
