// Package http exposes the order service over a REST API.
package http

import (
	"net/http"
	"strconv"
	"time"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the order API.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	getByTrackingHandler    queries.GetOrderByTrackingNumberQueryHandler
	statusStatisticsHandler queries.GetStatusStatisticsQueryHandler
	revenueHandler          queries.GetRevenueQueryHandler
	orderEventsHandler      queries.GetOrderEventsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getByTrackingHandler queries.GetOrderByTrackingNumberQueryHandler,
	statusStatisticsHandler queries.GetStatusStatisticsQueryHandler,
	revenueHandler queries.GetRevenueQueryHandler,
	orderEventsHandler queries.GetOrderEventsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getByTrackingHandler:     getByTrackingHandler,
		statusStatisticsHandler:  statusStatisticsHandler,
		revenueHandler:           revenueHandler,
		orderEventsHandler:       orderEventsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/statistics/status", s.GetStatusStatistics)
	api.GET("/orders/statistics/revenue", s.GetRevenue)
	api.GET("/orders/tracking/:trackingNumber", s.GetOrderByTrackingNumber)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/events", s.GetOrderEvents)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := request.toCommand()
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return domainError(ctx, err)
	}
	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		// The order is committed; fall back to the id when the read back fails.
		return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/v1/orders - retrieves a page of order
// summaries, optionally filtered by customer and status.
func (s *Server) ListOrders(ctx echo.Context) error {
	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid page parameter")
		}
		page = parsed
	}

	pageSize := 0
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid pageSize parameter")
		}
		pageSize = parsed
	}

	query, err := queries.NewListOrdersQuery(page, pageSize)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if customerID := ctx.QueryParam("customerId"); customerID != "" {
		query.SetCustomerID(customerID)
	}
	if status := ctx.QueryParam("status"); status != "" {
		if err = query.SetStatus(order.Status(status)); err != nil {
			return badRequest(ctx, "Invalid status parameter")
		}
	}
	if sortBy := ctx.QueryParam("sortBy"); sortBy != "" {
		desc := ctx.QueryParam("sortOrder") != "asc"
		if err = query.SetSort(sortBy, desc); err != nil {
			return badRequest(ctx, "Invalid sortBy parameter")
		}
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - transitions an
// order to a new status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		ctx.Param("id"),
		order.Status(request.Status),
		request.Reason,
		request.ChangedBy,
	)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}
	if request.TrackingNumber != "" {
		cmd.SetTrackingNumber(request.TrackingNumber)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return s.GetOrder(ctx)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(ctx.Param("id"), request.Reason, request.CancelledBy)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return s.GetOrder(ctx)
}

// GetOrderByTrackingNumber handles GET /api/v1/orders/tracking/:trackingNumber.
func (s *Server) GetOrderByTrackingNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByTrackingNumberQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getByTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatusStatistics handles GET /api/v1/orders/statistics/status.
func (s *Server) GetStatusStatistics(ctx echo.Context) error {
	query := queries.NewGetStatusStatisticsQuery()

	response, err := s.statusStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRevenue handles GET /api/v1/orders/statistics/revenue - sums delivered
// order revenue over a period. Defaults to the last 30 days.
func (s *Server) GetRevenue(ctx echo.Context) error {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	var err error
	if raw := ctx.QueryParam("from"); raw != "" {
		if from, err = parseTimeParam(raw); err != nil {
			return badRequest(ctx, "Invalid from parameter")
		}
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		if to, err = parseTimeParam(raw); err != nil {
			return badRequest(ctx, "Invalid to parameter")
		}
	}

	query, err := queries.NewGetRevenueQuery(from, to)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.revenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderEvents handles GET /api/v1/orders/:id/events - retrieves the
// recorded event trail of one order.
func (s *Server) GetOrderEvents(ctx echo.Context) error {
	query, err := queries.NewGetOrderEventsQuery(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	events, err := s.orderEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, events)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseTimeParam accepts either a date (2006-01-02) or an RFC 3339 timestamp.
func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
