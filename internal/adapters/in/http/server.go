// Package http contains the inbound REST adapter. The Server translates
// echo requests into commands and queries and maps domain errors onto
// HTTP statuses.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// UserIDHeader carries the caller's identity. Authentication is out of
// scope; the header value is trusted as-is.
const UserIDHeader = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler
	processPaymentHandler     commands.ProcessPaymentCommandHandler
	assignDeliveryHandler     commands.AssignDeliveryCommandHandler
	createNotificationHandler commands.CreateNotificationCommandHandler

	// Query handlers
	getUserOrdersHandler        queries.GetUserOrdersQueryHandler
	getDeliveryStatusHandler    queries.GetDeliveryStatusQueryHandler
	getUserNotificationsHandler queries.GetUserNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	createNotificationHandler commands.CreateNotificationCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getDeliveryStatusHandler queries.GetDeliveryStatusQueryHandler,
	getUserNotificationsHandler queries.GetUserNotificationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		processPaymentHandler:       processPaymentHandler,
		assignDeliveryHandler:       assignDeliveryHandler,
		createNotificationHandler:   createNotificationHandler,
		getUserOrdersHandler:        getUserOrdersHandler,
		getDeliveryStatusHandler:    getDeliveryStatusHandler,
		getUserNotificationsHandler: getUserNotificationsHandler,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders", s.GetOrders)
	e.PUT("/api/orders/:id/status", s.UpdateOrderStatus)
	e.POST("/api/payments", s.ProcessPayment)
	e.POST("/api/deliveries", s.AssignDelivery)
	e.GET("/api/deliveries/:orderId", s.GetDeliveryStatus)
	e.POST("/api/notifications", s.CreateNotification)
	e.GET("/api/notifications", s.GetNotifications)
}

// CreateOrder handles POST /api/orders - runs the order placement saga.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := userIDFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := toDomainItems(req.Items)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, req.RestaurantID, items, req.TotalAmount)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCreateOrderResult(result))
}

// GetOrders handles GET /api/orders - retrieves the caller's order history.
func (s *Server) GetOrders(ctx echo.Context) error {
	customerID, err := userIDFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetUserOrdersQuery(customerID)
	if err != nil {
		return domainError(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		items := make([]OrderItem, len(o.Items))
		for j, item := range o.Items {
			items[j] = OrderItem{
				MenuItemID: item.MenuItemID,
				Name:       item.Name,
				Quantity:   item.Quantity,
				Price:      item.Price,
			}
		}

		response[i] = Order{
			ID:           o.ID.String(),
			CustomerID:   customerID.String(),
			RestaurantID: o.RestaurantID,
			Items:        items,
			TotalAmount:  o.TotalAmount,
			Status:       o.Status,
			CreatedAt:    o.CreatedAt,
			UpdatedAt:    o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status - overwrites the
// order's status. The write commits before the notification goes out, so a
// 500 from this endpoint may still mean a durable status change.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return domainError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// ProcessPayment handles POST /api/payments - settles a charge.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	var req ProcessPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewProcessPaymentCommand(orderID, req.Amount)
	if err != nil {
		return domainError(ctx, err)
	}

	settled, err := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPaymentResponse(settled))
}

// AssignDelivery handles POST /api/deliveries - creates a delivery and
// schedules its timed progression.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	var req AssignDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAssignDeliveryCommand(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	assigned, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDeliveryResponse(assigned))
}

// GetDeliveryStatus handles GET /api/deliveries/:orderId - reads the
// delivery for an order.
func (s *Server) GetDeliveryStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetDeliveryStatusQuery(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	found, err := s.getDeliveryStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := Delivery{
		ID:            found.ID.String(),
		OrderID:       found.OrderID.String(),
		PartnerID:     found.PartnerID,
		Status:        found.Status,
		EstimatedTime: found.EstimatedTime,
		CreatedAt:     found.CreatedAt,
	}
	if found.CurrentLocation != nil {
		response.CurrentLocation = &Location{
			Lat: found.CurrentLocation.Lat,
			Lng: found.CurrentLocation.Lng,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateNotification handles POST /api/notifications - stores a notification.
func (s *Server) CreateNotification(ctx echo.Context) error {
	var req CreateNotificationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	cmd, err := commands.NewCreateNotificationCommand(userID, req.Type, req.Message)
	if err != nil {
		return domainError(ctx, err)
	}

	created, err := s.createNotificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toNotificationResponse(created))
}

// GetNotifications handles GET /api/notifications - retrieves the caller's
// notifications, newest first.
func (s *Server) GetNotifications(ctx echo.Context) error {
	userID, err := userIDFromHeader(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetUserNotificationsQuery(userID)
	if err != nil {
		return domainError(ctx, err)
	}

	notifications, err := s.getUserNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve notifications")
	}

	response := make([]Notification, len(notifications))
	for i, n := range notifications {
		response[i] = Notification{
			ID:        n.ID.String(),
			UserID:    userID.String(),
			Type:      n.Type,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func userIDFromHeader(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(UserIDHeader)
	if raw == "" {
		return kernel.UUID{}, errors.New("Missing " + UserIDHeader + " header")
	}

	userID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New("Invalid " + UserIDHeader + " header")
	}

	return userID, nil
}

// domainError maps application errors onto HTTP statuses: validation
// failures become 400, missing aggregates 404, everything else 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, err.Error())
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
