package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/core/ports"
)

// ProcessPaymentCommandHandler settles charges inside the payment gateway
// service. The gateway is simulated: every charge is created PENDING and
// immediately settled to SUCCESS before it is persisted, so a payment that
// exists has settled. Declines only occur when the gateway is unreachable.
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	clock      ports.Clock
}

// NewProcessPaymentCommandHandler creates a handler for charge processing.
func NewProcessPaymentCommandHandler(uowFactory PaymentUoWFactory, clock ports.Clock) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the charge command.
// Creates the payment, settles it, and persists the settled record in one
// transaction. Returns the persisted payment.
func (h *ProcessPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessPaymentCommand,
) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	charge, err := payment.NewPayment(kernel.NewUUID(), cmd.OrderID(), cmd.Amount(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = charge.Settle(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PaymentRepository().Add(ctx, charge); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return charge, nil
}
