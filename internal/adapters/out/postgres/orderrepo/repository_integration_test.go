package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"ordersvc/internal/adapters/out/postgres/orderrepo"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
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

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusHistoryDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_status_history").Error)

	// Create fresh repository and tracker for each test
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
	suite.assertRowCount(&orderrepo.OrderItemDTO{}, 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder()
	originalOrder.SetCustomerContact("jane@example.com", "+82-10-1234-5678")
	originalOrder.SetAddresses("1 Ship St", "2 Bill Ave")
	originalOrder.SetShippingAmount(suite.money("2500"))

	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal("CUST-1", retrievedOrder.CustomerID())
	suite.Equal("jane@example.com", retrievedOrder.CustomerEmail())
	suite.Equal(order.StatusPending, retrievedOrder.Status())
	suite.Equal("1 Ship St", retrievedOrder.ShippingAddress())
	suite.True(originalOrder.TotalAmount().IsEqual(retrievedOrder.TotalAmount()))
	suite.True(originalOrder.FinalAmount().IsEqual(retrievedOrder.FinalAmount()))
	suite.Require().Len(retrievedOrder.Items(), 1)
	suite.Equal("PROD-1", retrievedOrder.Items()[0].ProductID())
	suite.NotZero(retrievedOrder.Items()[0].ID(), "store assigns item ids")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, "ORD-NOPE")

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_PersistsHistory() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Reload, transition, save
	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.UpdateStatus(order.StatusConfirmed))
	loaded.LatestHistory().SetAudit("payment received", "ops")
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, reloaded.Status())
	suite.Require().Len(reloaded.StatusHistory(), 1)
	entry := reloaded.StatusHistory()[0]
	suite.Require().NotNil(entry.FromStatus())
	suite.Equal(order.StatusPending, *entry.FromStatus())
	suite.Equal(order.StatusConfirmed, entry.ToStatus())
	suite.Equal("payment received", entry.Reason())
	suite.Equal("ops", entry.ChangedBy())
	suite.NotZero(entry.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FullLifecycle_HistoryIsChronological() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Times(5)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	path := []order.Status{
		order.StatusConfirmed,
		order.StatusProcessing,
		order.StatusShipped,
		order.StatusDelivered,
	}
	for _, next := range path {
		loaded, err := suite.repository.Get(ctx, testOrder.ID())
		suite.Require().NoError(err)
		if next == order.StatusShipped {
			suite.Require().NoError(loaded.SetTrackingNumber("TRACK-42"))
		}
		suite.Require().NoError(loaded.UpdateStatus(next))
		suite.Require().NoError(suite.repository.Update(ctx, loaded))
	}

	final, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusDelivered, final.Status())
	suite.NotNil(final.DeliveredAt())
	suite.Equal("TRACK-42", final.TrackingNumber())
	suite.Require().Len(final.StatusHistory(), len(path))
	for i, entry := range final.StatusHistory() {
		suite.Equal(path[i], entry.ToStatus())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackingNumber() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(testOrder.SetTrackingNumber("TRACK-77"))
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	found, err := suite.repository.GetByTrackingNumber(ctx, "TRACK-77")
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), found.ID())

	_, err = suite.repository.GetByTrackingNumber(ctx, "TRACK-MISSING")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	_, err = suite.repository.GetByTrackingNumber(ctx, "")
	suite.Require().Error(err)
	suite.Contains(strings.ToLower(err.Error()), "required")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	txRepo := orderrepo.NewGormOrderRepository(tx, suite.tracker)

	locked, err := txRepo.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.UpdateStatus(order.StatusConfirmed))
	suite.Require().NoError(txRepo.Update(ctx, locked))
	suite.Require().NoError(tx.Commit().Error)

	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, reloaded.Status())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic order with a single line item.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(kernel.NewOrderID(), "CUST-1", "Jane Doe")
	suite.Require().NoError(err)

	item, err := order.NewItem("PROD-1", "Widget", suite.money("15000"), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItem(item))

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) money(s string) kernel.Money {
	m, err := kernel.NewMoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	suite.assertRowCount(&orderrepo.OrderDTO{}, expected)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertRowCount(model any, expected int) {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
