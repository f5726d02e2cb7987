package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents a request to the delivery coordinator to
// create a delivery for a confirmed order.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign a delivery.
// Validates that the order id is valid.
func NewAssignDeliveryCommand(orderID kernel.UUID) (AssignDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return AssignDeliveryCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDeliveryCommandIsNotConstructed if validation fails.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}
