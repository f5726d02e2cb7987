package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrAdvanceDeliveriesCommandIsNotConstructed = errors.New(
	"AdvanceDeliveriesCommand must be created via NewAdvanceDeliveriesCommand constructor",
)

// AdvanceDeliveriesCommand triggers one pass over the progression schedule,
// applying every timed transition that has come due.
//
// Example:
//
//	cmd := NewAdvanceDeliveriesCommand()
//	handler := NewAdvanceDeliveriesCommandHandler(uowFactory, schedule, pusher, clock, logger)
//
//	// Run every second from the job scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("progression pass failed: %v", err)
//	}
type AdvanceDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceDeliveriesCommand creates a command to advance due deliveries.
// This is a parameterless command that processes the whole schedule.
func NewAdvanceDeliveriesCommand() AdvanceDeliveriesCommand {
	return AdvanceDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceDeliveriesCommandIsNotConstructed if validation fails.
func (c *AdvanceDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveriesCommandIsNotConstructed)
}
