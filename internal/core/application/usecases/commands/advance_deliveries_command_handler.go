package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// AdvanceDeliveriesCommandHandler drives the timed delivery progression.
// A delivery picks up 10 seconds after creation and completes 10 seconds
// later; each transition is persisted first and the matching order status
// (OUT_FOR_DELIVERY, then DELIVERED) is pushed through the order service's
// regular update entry point after the commit.
//
// Transitions are strictly monotonic: when ticks were missed and both
// thresholds have passed, a single pass applies the pickup before the
// completion so no state is skipped. Push failures are logged and ignored,
// which can leave the order status behind the delivery status until a later
// external update catches it up. A failed task stays scheduled and is
// retried on the next pass; completed tasks are dropped from the schedule.
type AdvanceDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	schedule   ProgressionSchedule
	pusher     ports.OrderStatusPusher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewAdvanceDeliveriesCommandHandler creates a handler for progression passes.
func NewAdvanceDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory,
	schedule ProgressionSchedule,
	pusher ports.OrderStatusPusher,
	clock ports.Clock,
	logger *slog.Logger,
) AdvanceDeliveriesCommandHandler {
	return AdvanceDeliveriesCommandHandler{
		uowFactory: uowFactory,
		schedule:   schedule,
		pusher:     pusher,
		clock:      clock,
		logger:     logger,
	}
}

// Handle processes one progression pass.
// Reads the current time once, walks every scheduled task, and advances the
// deliveries whose thresholds have passed. Per-task failures are logged and
// do not stop the pass; the task is retried on the next tick.
func (h *AdvanceDeliveriesCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()
	for _, task := range h.schedule.Tasks() {
		if now.Sub(task.CreatedAt) < PickUpAfter {
			continue
		}

		if err := h.advanceTask(ctx, task, now); err != nil {
			h.logger.Error("delivery progression failed",
				"deliveryId", task.DeliveryID.String(),
				"orderId", task.OrderID.String(),
				"error", err)
		}
	}

	return nil
}

// advanceTask applies the due transitions for one delivery in its own
// transaction, then pushes the matching order statuses.
func (h *AdvanceDeliveriesCommandHandler) advanceTask(
	ctx context.Context,
	task ProgressionTask,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	current, err := deliveryRepo.Get(ctx, task.DeliveryID)
	if err != nil {
		return err
	}

	elapsed := now.Sub(task.CreatedAt)

	var pushes []order.Status
	if current.Status() == delivery.Assigned && elapsed >= PickUpAfter {
		if err = current.PickUp(); err != nil {
			return err
		}
		pushes = append(pushes, order.OutForDelivery)
	}

	if current.Status() == delivery.PickedUp && elapsed >= DeliverAfter {
		if err = current.Complete(); err != nil {
			return err
		}
		pushes = append(pushes, order.Delivered)
	}

	if len(pushes) == 0 {
		return nil
	}

	if err = deliveryRepo.Update(ctx, current); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, status := range pushes {
		if err = h.pusher.Push(ctx, task.OrderID, status); err != nil {
			h.logger.Warn("order status push failed",
				"orderId", task.OrderID.String(),
				"status", status.String(),
				"error", err)
		}
	}

	if current.Status() == delivery.Delivered {
		h.schedule.Remove(task.DeliveryID)
	}

	return nil
}
