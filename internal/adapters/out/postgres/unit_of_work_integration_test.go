package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "watertanker/internal/adapters/out/postgres"
	"watertanker/internal/adapters/out/postgres/customerrepo"
	"watertanker/internal/adapters/out/postgres/orderrepo"
	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/core/ports"
	"watertanker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection
// and runs migrations for the tables the tests touch.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &customerrepo.CustomerDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, customers").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.CustomerRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Commit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	customer := suite.createTestCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, customer))

	testOrder, err := order.NewOrder(kernel.NewUUID(), customer.ID(), "4 Quarry Lane", 250)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertRowCount(&orderrepo.OrderDTO{}, 1)
	suite.assertRowCount(&customerrepo.CustomerDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Rollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	customer := suite.createTestCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, customer))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertRowCount(&customerrepo.CustomerDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateEmail_SurfacesAsAlreadyExists() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.CustomerRepository().Add(ctx, suite.createTestCustomer()))

	// Same email, different id: the unique index fires and the driver error
	// must translate into the domain's already-exists error.
	err := uow.CustomerRepository().Add(ctx, suite.createTestCustomer())
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoriesWithoutTransaction_WriteDirectly() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// No Begin: the repository operates on the main connection.
	customer := suite.createTestCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, customer))

	suite.assertRowCount(&customerrepo.CustomerDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCustomer() *account.Customer {
	customer, err := account.NewCustomer(
		kernel.NewUUID(),
		"Amina", "Okafor",
		"amina@example.com",
		"$2a$10$notarealhashnotarealhashnotarealhash",
		"4 Quarry Lane",
		"+234800000001",
	)
	suite.Require().NoError(err)
	return customer
}

func (suite *UnitOfWorkIntegrationTestSuite) assertRowCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
