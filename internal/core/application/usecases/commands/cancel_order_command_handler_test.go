package commands_test

import (
	"testing"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.StatusPending)
	cmd, _ := commands.NewCancelOrderCommand(stored.ID(), "customer request", "CUST-1")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	// Status-changed event first, then the dedicated cancelled event
	effects := newSideEffects()
	effects.publisher.On("Publish", mock.Anything, eventOfType(order.EventOrderStatusChanged)).Return(nil).Once()
	effects.publisher.On("Publish", mock.Anything, eventOfType(order.EventOrderCancelled)).Return(nil).Once()
	effects.eventLog.On("Append", mock.Anything, eventOfType(order.EventOrderStatusChanged)).Return(nil).Once()
	effects.eventLog.On("Append", mock.Anything, eventOfType(order.EventOrderCancelled)).Return(nil).Once()
	effects.stats.On("RecordStatusChange", mock.Anything, order.StatusCancelled).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, effects.dispatcher)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.StatusCancelled, stored.Status())
	require.Equal(t, "customer request", stored.LatestHistory().Reason())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	effects.publisher.AssertExpectations(t)
	effects.eventLog.AssertExpectations(t)
	effects.stats.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ProcessingOrderCanBeCancelled(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.StatusProcessing)
	cmd, _ := commands.NewCancelOrderCommand(stored.ID(), "out of stock", "ops")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", mock.Anything, stored.ID()).Return(stored, nil).Once()
	repo.On("Update", mock.Anything, stored).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	effects := newSideEffects()
	effects.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Times(2)
	effects.eventLog.On("Append", mock.Anything, mock.Anything).Return(nil).Times(2)
	effects.stats.On("RecordStatusChange", mock.Anything, order.StatusCancelled).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, effects.dispatcher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusCancelled, stored.Status())
}

func TestCancelOrderCommandHandler_Handle_ShippedOrderCannotBeCancelled(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, order.StatusShipped)
	cmd, _ := commands.NewCancelOrderCommand(stored.ID(), "too late", "CUST-1")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	effects := newSideEffects()
	h := commands.NewCancelOrderCommandHandler(factory, effects.dispatcher)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderCannotBeCancelled)
	require.Equal(t, order.StatusShipped, stored.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	effects.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
