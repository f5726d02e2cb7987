package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new food order.
// Carries the ordering customer, the fulfilling restaurant, the ordered
// lines, and the client-computed total. The total is stored as supplied and
// never recomputed from the lines.
//
// Example:
//
//	items := []order.Item{burger, fries}
//	cmd, err := NewCreateOrderCommand(customerID, "resto-42", items, 19.98)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed, invoice total %.2f", result.Order.ID(), result.Invoice.Total)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	restaurantID string
	items        []order.Item
	totalAmount  float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer id is valid, the restaurant reference is not
// empty, and there is at least one properly constructed item.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	restaurantID string,
	items []order.Item,
	totalAmount float64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.totalAmount = totalAmount
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the fulfilling restaurant's reference.
func (c CreateOrderCommand) RestaurantID() string {
	return c.restaurantID
}

// Items returns the ordered lines. The returned slice is a copy.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

// TotalAmount returns the client-supplied order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID string) error {
	if restaurantID == "" {
		return errs.NewValueIsRequiredError("restaurantId")
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}
