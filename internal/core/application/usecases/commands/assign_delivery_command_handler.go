package commands

import (
	"context"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

// AssignDeliveryCommandHandler creates deliveries inside the delivery
// coordinator service. Every delivery starts ASSIGNED with the default
// partner and estimate; once the record commits, the handler registers it
// with the progression schedule so the timed transitions start counting from
// the creation timestamp. The schedule entry lives in memory only.
type AssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	scheduler  ProgressionScheduler
	clock      ports.Clock
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	scheduler ProgressionScheduler,
	clock ports.Clock,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		clock:      clock,
	}
}

// Handle processes the assignment command.
// Persists a new ASSIGNED delivery and schedules its progression task after
// the commit. Returns the persisted delivery.
func (h *AssignDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	assigned, err := delivery.NewDelivery(kernel.NewUUID(), cmd.OrderID(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, assigned); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.scheduler.Schedule(ProgressionTask{
		DeliveryID: assigned.ID(),
		OrderID:    assigned.OrderID(),
		CreatedAt:  assigned.CreatedAt(),
	})

	return assigned, nil
}
