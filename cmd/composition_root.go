package cmd

import (
	"log/slog"

	"ordersvc/internal/adapters/out/postgres"
	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/ports"
	"ordersvc/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	dispatcher *commands.OrderEventDispatcher
	eventLog   ports.EventLog
	stats      ports.StatsSink
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	eventLog ports.EventLog,
	stats ports.StatsSink,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: commands.NewOrderEventDispatcher(publisher, eventLog, stats, logger),
		eventLog:   eventLog,
		stats:      stats,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByTrackingNumberQueryHandler() queries.GetOrderByTrackingNumberQueryHandler {
	return queries.NewGetOrderByTrackingNumberQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetStatusStatisticsQueryHandler() queries.GetStatusStatisticsQueryHandler {
	return queries.NewGetStatusStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueQueryHandler() queries.GetRevenueQueryHandler {
	return queries.NewGetRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderEventsQueryHandler() queries.GetOrderEventsQueryHandler {
	return queries.NewGetOrderEventsQueryHandler(c.eventLog)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStatusStatisticsQueryHandler(), c.stats, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
