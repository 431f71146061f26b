package queries_test

import (
	"context"
	"testing"
	"time"

	"watertanker/internal/adapters/out/postgres/feedbackrepo"
	"watertanker/internal/adapters/out/postgres/orderrepo"
	"watertanker/internal/adapters/out/postgres/paymentrepo"
	"watertanker/internal/adapters/out/postgres/recyclingrepo"
	"watertanker/internal/core/application/usecases/queries"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ReportsQueryIntegrationTestSuite runs the reports aggregation against a
// real PostgreSQL database so the raw SQL is exercised as written.
type ReportsQueryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *ReportsQueryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&feedbackrepo.FeedbackDTO{},
		&recyclingrepo.SubmissionDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *ReportsQueryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, payments, feedback, recycling_submissions").Error
	suite.Require().NoError(err)
}

func (suite *ReportsQueryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ReportsQueryIntegrationTestSuite) TestHandle_EmptyDatabaseReportsZeroes() {
	handler := queries.NewGetReportsQueryHandler(suite.db)

	resp, err := handler.Handle(context.Background(), queries.NewGetReportsQuery())
	suite.Require().NoError(err)

	suite.Zero(resp.TotalOrders)
	suite.Zero(resp.TotalRevenue)
	suite.Zero(resp.FeedbackCount)
	suite.Zero(resp.AverageRating)
	suite.Zero(resp.TotalSubmitted)
	suite.Zero(resp.TotalCredited)
}

func (suite *ReportsQueryIntegrationTestSuite) TestHandle_RevenueCountsOnlyPaidPayments() {
	suite.seedPayment(200, payment.StatusPaid)
	suite.seedPayment(300, payment.StatusPaid)
	suite.seedPayment(999, payment.StatusPending)
	suite.seedPayment(555, payment.StatusFailed)

	handler := queries.NewGetReportsQueryHandler(suite.db)

	resp, err := handler.Handle(context.Background(), queries.NewGetReportsQuery())
	suite.Require().NoError(err)

	suite.InDelta(500.0, resp.TotalRevenue, 0.001)
}

func (suite *ReportsQueryIntegrationTestSuite) TestHandle_OrdersGroupedByStatus() {
	suite.seedOrder(order.Pairing)
	suite.seedOrder(order.Pairing)
	suite.seedOrder(order.Delivered)

	handler := queries.NewGetReportsQueryHandler(suite.db)

	resp, err := handler.Handle(context.Background(), queries.NewGetReportsQuery())
	suite.Require().NoError(err)

	suite.Equal(int64(3), resp.TotalOrders)
	suite.Equal(int64(2), resp.OrdersByStatus["Pairing"])
	suite.Equal(int64(1), resp.OrdersByStatus["Delivered"])
}

func (suite *ReportsQueryIntegrationTestSuite) seedPayment(amount float64, status payment.Status) {
	dto := paymentrepo.PaymentDTO{
		ID:      uuid.New(),
		OrderID: uuid.New(),
		Amount:  amount,
		Status:  int(status),
		PaidAt:  time.Now(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *ReportsQueryIntegrationTestSuite) seedOrder(status order.Status) {
	dto := orderrepo.OrderDTO{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		Destination: "4 Quarry Lane",
		WaterAmount: 250,
		Status:      int(status),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestReportsQueryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReportsQueryIntegrationTestSuite))
}
