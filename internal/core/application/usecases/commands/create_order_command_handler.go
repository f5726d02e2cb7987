package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// ConfirmationMessage is sent to the customer once payment settles.
const ConfirmationMessage = "Order confirmed and payment processed"

// CreateOrderResult carries the placed order together with its invoice.
// The invoice embeds whatever payment and delivery detail the collaborators
// returned before the response was composed; either snapshot may be nil.
type CreateOrderResult struct {
	Order   *order.Order
	Invoice services.Invoice
}

// CreateOrderCommandHandler runs the order placement saga.
//
// The order is persisted in PLACED status first, so a record exists no matter
// what the collaborators do. The payment gateway is then charged; only a
// SUCCESS outcome confirms the order. Delivery assignment and the customer
// notification follow confirmation in that fixed order, and both are
// best-effort: their failures are logged and the order stays CONFIRMED.
// A payment failure or timeout is also swallowed, leaving the order PLACED,
// and the caller still receives the order with its invoice.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(
//	    uowFactory, gateway, coordinator, sink, clock, logger,
//	)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // validation or persistence failed, nothing was placed
//	}
//	// result.Order.Status() is Confirmed or Placed depending on payment
type CreateOrderCommandHandler struct {
	uowFactory          OrderUoWFactory
	paymentGateway      ports.PaymentGateway
	deliveryCoordinator ports.DeliveryCoordinator
	notificationSink    ports.NotificationSink
	clock               ports.Clock
	logger              *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for the order placement saga.
// Requires an OrderUoWFactory for transactional persistence, the three
// collaborator ports, and a clock for timestamps.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	paymentGateway ports.PaymentGateway,
	deliveryCoordinator ports.DeliveryCoordinator,
	notificationSink ports.NotificationSink,
	clock ports.Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:          uowFactory,
		paymentGateway:      paymentGateway,
		deliveryCoordinator: deliveryCoordinator,
		notificationSink:    notificationSink,
		clock:               clock,
		logger:              logger,
	}
}

// Handle processes the order placement command.
// Persists the order in PLACED status, charges the payment gateway, confirms
// and persists the order on settlement, then assigns delivery and notifies
// the customer best-effort. Returns the order and its composed invoice.
// Only validation and persistence errors fail the call.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.Items(),
		cmd.TotalAmount(),
		h.clock.Now(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.persist(ctx, newOrder, ports.OrderRepository.Add); err != nil {
		return CreateOrderResult{}, err
	}

	paymentDetails := h.chargePayment(ctx, newOrder)

	var deliveryDetails *services.DeliverySnapshot
	if paymentDetails != nil && paymentDetails.Status == payment.Success.String() {
		if err = newOrder.Confirm(h.clock.Now()); err != nil {
			return CreateOrderResult{}, err
		}

		if err = h.persist(ctx, newOrder, ports.OrderRepository.Update); err != nil {
			return CreateOrderResult{}, err
		}

		deliveryDetails = h.assignDelivery(ctx, newOrder)
		h.notifyConfirmation(ctx, newOrder)
	}

	invoice, err := services.NewInvoiceComposer().Compose(newOrder, paymentDetails, deliveryDetails)
	if err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{Order: newOrder, Invoice: invoice}, nil
}

// persist writes the order within its own transaction. The write function is
// either Add (initial PLACED record) or Update (confirmation).
func (h *CreateOrderCommandHandler) persist(
	ctx context.Context,
	o *order.Order,
	write func(ports.OrderRepository, context.Context, *order.Order) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := write(uow.OrderRepository(), ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// chargePayment calls the gateway and returns its snapshot, or nil when the
// gateway was unreachable or timed out. Failures never abort the saga.
func (h *CreateOrderCommandHandler) chargePayment(
	ctx context.Context,
	o *order.Order,
) *services.PaymentSnapshot {
	snapshot, err := h.paymentGateway.Charge(ctx, o.ID(), o.TotalAmount())
	if err != nil {
		h.logger.Warn("payment charge failed, order stays placed",
			"orderId", o.ID().String(), "error", err)
		return nil
	}

	return snapshot
}

// assignDelivery asks the coordinator for a delivery assignment, returning
// nil when the coordinator fails. The order stays confirmed either way.
func (h *CreateOrderCommandHandler) assignDelivery(
	ctx context.Context,
	o *order.Order,
) *services.DeliverySnapshot {
	snapshot, err := h.deliveryCoordinator.Assign(ctx, o.ID())
	if err != nil {
		h.logger.Warn("delivery assignment failed",
			"orderId", o.ID().String(), "error", err)
		return nil
	}

	return snapshot
}

// notifyConfirmation sends the confirmation notice, swallowing any failure.
func (h *CreateOrderCommandHandler) notifyConfirmation(ctx context.Context, o *order.Order) {
	err := h.notificationSink.Send(ctx, o.CustomerID(), notification.TypeOrderStatus, ConfirmationMessage)
	if err != nil {
		h.logger.Warn("confirmation notification failed",
			"orderId", o.ID().String(), "error", err)
	}
}
