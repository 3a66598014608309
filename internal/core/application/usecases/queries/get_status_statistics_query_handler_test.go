package queries_test

import (
	"context"
	"testing"
	"time"

	"ordersvc/internal/adapters/out/postgres/orderrepo"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetStatusStatisticsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetStatusStatisticsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetStatusStatisticsQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &orderrepo.StatusHistoryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetStatusStatisticsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetStatusStatisticsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetStatusStatisticsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetStatusStatisticsQueryHandlerTestSuite) createOrder(status order.Status) {
	o, err := order.NewOrder(kernel.NewOrderID(), "CUST-1", "Test Customer")
	suite.Require().NoError(err)

	price, err := kernel.NewMoneyFromString("10")
	suite.Require().NoError(err)
	item, err := order.NewItem("PROD-1", "Widget", price, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(item))

	for _, next := range statusPaths[status] {
		if next == order.StatusShipped {
			suite.Require().NoError(o.SetTrackingNumber("TRACK-" + o.ID()))
		}
		suite.Require().NoError(o.UpdateStatus(next))
	}

	err = suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
}

func (suite *GetStatusStatisticsQueryHandlerTestSuite) TestHandle_EmptyDatabase_AllStatusesZero() {
	query := queries.NewGetStatusStatisticsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Counts, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		suite.Zero(result.Counts[status], "status %s should have zero orders", status)
	}
}

func (suite *GetStatusStatisticsQueryHandlerTestSuite) TestHandle_CountsPerStatus() {
	suite.createOrder(order.StatusPending)
	suite.createOrder(order.StatusPending)
	suite.createOrder(order.StatusConfirmed)
	suite.createOrder(order.StatusShipped)
	suite.createOrder(order.StatusDelivered)
	suite.createOrder(order.StatusDelivered)
	suite.createOrder(order.StatusCancelled)

	query := queries.NewGetStatusStatisticsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.Counts[order.StatusPending])
	suite.Equal(int64(1), result.Counts[order.StatusConfirmed])
	suite.Equal(int64(0), result.Counts[order.StatusProcessing])
	suite.Equal(int64(1), result.Counts[order.StatusShipped])
	suite.Equal(int64(2), result.Counts[order.StatusDelivered])
	suite.Equal(int64(1), result.Counts[order.StatusCancelled])
	suite.Equal(int64(0), result.Counts[order.StatusRefunded])
}

func (suite *GetStatusStatisticsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetStatusStatisticsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetStatusStatisticsQuery constructor")
}

func TestGetStatusStatisticsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStatusStatisticsQueryHandlerTestSuite))
}
