// Package http provides the inbound HTTP adapter. Requests are decoded into
// explicit, validated DTOs before any store access; domain errors are mapped
// onto HTTP statuses through the sentinel taxonomy.
package http

import (
	"errors"
	"net/http"

	"rapidxcel/internal/core/application/usecases/commands"
	"rapidxcel/internal/core/application/usecases/queries"
	"rapidxcel/internal/core/domain/model/kernel"
	"rapidxcel/internal/core/domain/model/order"
	"rapidxcel/internal/core/domain/model/stock"
	"rapidxcel/internal/core/domain/services"
	"rapidxcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler

	// Query handlers
	getStocksHandler queries.GetStocksQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
	getOrderHandler  queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getStocksHandler queries.GetStocksQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:   placeOrderHandler,
		confirmOrderHandler: confirmOrderHandler,
		updateOrderHandler:  updateOrderHandler,
		deleteOrderHandler:  deleteOrderHandler,
		getStocksHandler:    getStocksHandler,
		getOrdersHandler:    getOrdersHandler,
		getOrderHandler:     getOrderHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/stocks", s.GetStocks)
	v1.POST("/orders/preview", s.PlaceOrder)
	v1.POST("/orders", s.ConfirmOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id", s.UpdateOrder)
	v1.DELETE("/orders/:id", s.DeleteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetStocks handles GET /api/v1/stocks - lists the catalog with availability.
func (s *Server) GetStocks(ctx echo.Context) error {
	stocks, err := s.getStocksHandler.Handle(ctx.Request().Context(), queries.NewGetStocksQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]stockResponse, 0, len(stocks))
	for _, item := range stocks {
		response = append(response, stockResponse{
			ID:       item.ID.String(),
			Name:     item.Name,
			Price:    item.Price.String(),
			Quantity: item.Quantity,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders/preview - runs an order attempt and
// returns the priced reservation awaiting confirmation.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	quantities := make(map[kernel.UUID]int, len(req.Items))
	for _, item := range req.Items {
		stockID, err := kernel.UUIDFromString(item.StockID)
		if err != nil {
			return badRequest(ctx, "invalid stock id: "+item.StockID)
		}
		quantities[stockID] = item.Quantity
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		req.DeliveryAddress,
		req.PinCode,
		req.PhoneNumber,
		quantities,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	reservation, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReservationResponse(reservation))
}

// ConfirmOrder handles POST /api/v1/orders - turns a reservation into a durable order.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	var req confirmOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	reservationID, err := kernel.UUIDFromString(req.ReservationID)
	if err != nil {
		return badRequest(ctx, "invalid reservation id")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	cmd, err := commands.NewConfirmOrderCommand(reservationID, kernel.NewUUID(), customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrders handles GET /api/v1/orders - lists all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponseFromQuery(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponseFromQuery(result))
}

// UpdateOrder handles PATCH /api/v1/orders/:id - partial update with
// server-side shipping recompute on weight changes.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return badRequest(ctx, "invalid status: "+*req.Status)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.ShippingAddress, req.ConsignmentWeight, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "order deleted"})
}

// respondError maps domain errors onto HTTP statuses:
//   - unserviceable destination -> 422 (the request was well-formed, the
//     area just is not deliverable)
//   - insufficient stock or a reservation finalized by a concurrent
//     operation -> 409
//   - not found -> 404
//   - validation failures -> 400
//   - anything else -> 500
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrUnserviceableArea):
		return respond(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, stock.ErrInsufficientStock),
		errors.Is(err, order.ErrReservationStatusConflict):
		return respond(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNoItemsRequested),
		errors.Is(err, order.ErrReservationHasNoItems):
		return respond(ctx, http.StatusBadRequest, err.Error())
	default:
		return respond(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, errorResponse{Code: code, Message: message})
}
