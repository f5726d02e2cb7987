package commands

import (
	"context"

	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// UpdateOrderStatusCommandHandler overwrites an order's status and notifies
// the customer.
//
// The status write commits before the notification is sent, and unlike the
// placement saga the sink call here has no timeout bound and its error
// propagates to the caller. A slow or failing sink therefore fails the
// request even though the new status is already durable; the caller sees an
// error for a write that happened.
type UpdateOrderStatusCommandHandler struct {
	uowFactory       OrderUoWFactory
	notificationSink ports.NotificationSink
	clock            ports.Clock
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// The sink passed here should be the unbounded client; the placement saga
// uses a separate bounded one.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notificationSink ports.NotificationSink,
	clock ports.Clock,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:       uowFactory,
		notificationSink: notificationSink,
		clock:            clock,
	}
}

// Handle processes the status update command.
// Loads the order, overwrites its status with no transition check, commits,
// then sends the notification synchronously. Returns the updated order, or
// an error when the order does not exist or the sink call fails.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	updated, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = updated.OverrideStatus(cmd.Status(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	message := "Order status updated to " + cmd.Status().String()
	err = h.notificationSink.Send(ctx, updated.CustomerID(), notification.TypeOrderStatus, message)
	if err != nil {
		return nil, err
	}

	return updated, nil
}
