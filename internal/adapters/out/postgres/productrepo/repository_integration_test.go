package productrepo_test

import (
	"context"
	"testing"
	"time"

	"purelife/internal/adapters/out/postgres/productrepo"
	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/domain/model/product"
	"purelife/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductRepositoryIntegrationTestSuite provides integration tests for ProductRepository.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))

	suite.repository = productrepo.NewGormProductRepository(db)
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) money(amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount, kernel.CurrencyINR)
	suite.Require().NoError(err)
	return m
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_FullOffering() {
	ctx := context.Background()
	buy := suite.money(1599900)
	rent := suite.money(59900)
	deposit := suite.money(150000)

	prod, err := product.NewProduct("AquaPure RO-500", &buy, &rent, &deposit, true, true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, prod))

	loaded, err := suite.repository.Get(ctx, prod.ID())
	suite.Require().NoError(err)
	suite.Equal("AquaPure RO-500", loaded.Name())
	suite.True(loaded.IsPurchasable())
	suite.True(loaded.IsRentable())

	loadedBuy, err := loaded.PurchaseAmount()
	suite.Require().NoError(err)
	suite.True(loadedBuy.IsEqual(buy))

	loadedRent, err := loaded.RentPrice()
	suite.Require().NoError(err)
	suite.True(loadedRent.IsEqual(rent))

	loadedDeposit, err := loaded.RentalDeposit()
	suite.Require().NoError(err)
	suite.True(loadedDeposit.IsEqual(deposit))
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_PurchaseOnlyProduct() {
	ctx := context.Background()
	buy := suite.money(899900)

	prod, err := product.NewProduct("AquaPure UV-200", &buy, nil, nil, true, false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, prod))

	loaded, err := suite.repository.Get(ctx, prod.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsPurchasable())
	suite.False(loaded.IsRentable())

	_, err = loaded.RentPrice()
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrInvalidState)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
