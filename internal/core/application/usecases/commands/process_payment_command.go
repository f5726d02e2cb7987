package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrProcessPaymentCommandIsNotConstructed = errors.New(
	"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
)

// ProcessPaymentCommand represents a charge request received by the payment
// gateway service for an order.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  float64

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to charge an order.
// Validates that the order id is valid and the amount is positive.
func NewProcessPaymentCommand(orderID kernel.UUID, amount float64) (ProcessPaymentCommand, error) {
	command := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAmount(amount),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessPaymentCommandIsNotConstructed if validation fails.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being charged.
func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the amount to charge.
func (c ProcessPaymentCommand) Amount() float64 {
	return c.amount
}

func (c *ProcessPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%g is not greater than 0", amount),
		)
	}

	c.amount = amount
	return nil
}
