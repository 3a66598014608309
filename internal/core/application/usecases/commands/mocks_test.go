package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(_ context.Context, _ string) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingNumber(_ context.Context, _ string) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockEventLog struct{ mock.Mock }

func (m *MockEventLog) Append(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventLog) History(_ context.Context, _ string) ([]order.Event, error) {
	return nil, errors.New("not implemented in mock")
}

type MockStatsSink struct{ mock.Mock }

func (m *MockStatsSink) RecordOrderPlaced(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockStatsSink) RecordStatusChange(ctx context.Context, status order.Status) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockStatsSink) RecordRevenue(ctx context.Context, amount kernel.Money) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

func (m *MockStatsSink) RefreshStatusCounts(_ context.Context, _ map[order.Status]int64) error {
	return errors.New("not implemented in mock")
}

// sideEffects bundles the post-commit mocks with a dispatcher wired to a
// discarded logger.
type sideEffects struct {
	publisher  *MockEventPublisher
	eventLog   *MockEventLog
	stats      *MockStatsSink
	dispatcher *commands.OrderEventDispatcher
}

func newSideEffects() *sideEffects {
	publisher := new(MockEventPublisher)
	eventLog := new(MockEventLog)
	stats := new(MockStatsSink)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &sideEffects{
		publisher:  publisher,
		eventLog:   eventLog,
		stats:      stats,
		dispatcher: commands.NewOrderEventDispatcher(publisher, eventLog, stats, logger),
	}
}

// eventOfType matches published events by their type.
func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e order.Event) bool {
		return e.EventType == eventType
	})
}
