package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"watertanker/internal/adapters/out/postgres/orderrepo"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	staffID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	suite.Require().NoError(testOrder.SetCharge(120.50, staffID))
	suite.Require().NoError(testOrder.AssignDriver(driverID, staffID))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.CustomerID(), retrieved.CustomerID())
	suite.Equal("12 Harbour Road", retrieved.Destination())
	suite.InDelta(500.0, retrieved.WaterAmount(), 0.001)
	suite.Equal(order.Pairing, retrieved.Status())
	suite.Equal(order.PaymentPending, retrieved.PaymentStatus())
	suite.Nil(retrieved.PaymentDate())
	suite.Require().NotNil(retrieved.DriverCharge())
	suite.InDelta(120.50, *retrieved.DriverCharge(), 0.001)
	suite.Require().NotNil(retrieved.Driver())
	suite.Equal(driverID, *retrieved.Driver())
	suite.Require().NotNil(retrieved.Staff())
	suite.Equal(staffID, *retrieved.Staff())
	suite.False(retrieved.CancellationRequested())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsFieldsBackToZeroValues() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.RequestCancellation("moving away"))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Clear the flag again; the update must persist the false value.
	cleared, err := order.RestoreOrder(
		testOrder.ID(), testOrder.CustomerID(), testOrder.Destination(), testOrder.WaterAmount(),
		testOrder.Status(), testOrder.PaymentStatus(), nil, nil, nil, nil, false, "")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", cleared.ID(), cleared).Once()
	suite.Require().NoError(suite.repository.Update(ctx, cleared))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.CancellationRequested())
	suite.Empty(retrieved.CancellationReason())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateInStatus_StatusMatches_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	staffID := kernel.NewUUID()
	suite.Require().NoError(testOrder.SetCharge(80, staffID))
	suite.Require().NoError(testOrder.AcceptCharge(time.Now().UTC()))

	err := suite.repository.UpdateInStatus(ctx, testOrder, order.Pairing)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PendingPayment, retrieved.Status())
	suite.Equal(order.PaymentPaid, retrieved.PaymentStatus())
	suite.NotNil(retrieved.PaymentDate())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateInStatus_StatusMoved_ReturnsInvalidStateError() {
	ctx := context.Background()

	// Persist an order that has already been cancelled.
	cancelled := suite.createTestOrder()
	suite.Require().NoError(cancelled.Cancel("customer unreachable"))
	suite.tracker.On("TrackAggregate", cancelled.ID(), cancelled).Once()
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	// A stale copy still believes the order is pairing.
	stale, err := order.RestoreOrder(
		cancelled.ID(), cancelled.CustomerID(), cancelled.Destination(), cancelled.WaterAmount(),
		order.Pairing, order.PaymentPending, nil, nil, nil, nil, false, "")
	suite.Require().NoError(err)
	staffID := kernel.NewUUID()
	suite.Require().NoError(stale.SetCharge(60, staffID))

	err = suite.repository.UpdateInStatus(ctx, stale, order.Pairing)
	suite.Require().Error(err)

	var invalidStateErr *errs.InvalidStateError
	suite.Require().ErrorAs(err, &invalidStateErr)

	// The stored row is untouched.
	retrieved, err := suite.repository.Get(ctx, cancelled.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.Nil(retrieved.DriverCharge())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateInStatus_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder()

	err := suite.repository.UpdateInStatus(ctx, nonExistentOrder, order.Pairing)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_ReturnsOnlyCustomerOrdersNewestFirst() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	otherCustomerID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	first := suite.createTestOrderForCustomer(customerID)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestOrderForCustomer(customerID)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	other := suite.createTestOrderForCustomer(otherCustomerID)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)

	suite.Len(orders, 2)
	for _, o := range orders {
		suite.Equal(customerID, o.CustomerID())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_NoOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	orders, err := suite.repository.GetAllByCustomer(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(orders)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderForCustomer(kernel.NewUUID())
}

// createTestOrderForCustomer creates a test order for the given customer.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderForCustomer(customerID kernel.UUID) *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), customerID, "12 Harbour Road", 500)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
