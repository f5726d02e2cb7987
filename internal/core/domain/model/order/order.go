package order

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate at the center of the ordering saga. It is created in
// Placed status, confirmed by the saga once payment settles, and then driven
// forward by status updates arriving through the update entry point, whether
// from restaurant staff, support tooling, or the delivery progression
// callback.
//
// Invariants held at construction:
//   - Valid order and customer identifiers
//   - Non-empty restaurant reference
//   - At least one item, each a constructed Item value object
//   - A valid lifecycle status
//
// The total amount is the caller-supplied figure, never recomputed from the
// items. Concurrent writers of the status field are resolved last-write-wins;
// there is no version check on the aggregate.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID string
	items        []Item
	totalAmount  float64
	status       Status
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Placed status.
//
// Parameters:
//   - id: unique order identifier
//   - customerID: the ordering customer
//   - restaurantID: the restaurant fulfilling the order (opaque reference)
//   - items: ordered lines, at least one, each built via NewItem
//   - totalAmount: caller-supplied total, taken as-is
//   - now: creation timestamp (drives createdAt and updatedAt)
//
// Returns a validation error if any invariant is violated.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID string,
	items []Item,
	totalAmount float64,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Placed,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}
	if err := order.setCustomerID(customerID); err != nil {
		return nil, err
	}
	if err := order.setRestaurantID(restaurantID); err != nil {
		return nil, err
	}
	if err := order.setItems(items); err != nil {
		return nil, err
	}

	order.totalAmount = totalAmount
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status and timestamps. Used by repository adapters only.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID string,
	items []Item,
	totalAmount float64,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, customerID, restaurantID, items, totalAmount, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	order.updatedAt = updatedAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's reference.
func (o *Order) RestaurantID() string {
	return o.restaurantID
}

// Items returns the ordered lines. The returned slice is a copy.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the caller-supplied order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Confirm moves the order from Placed to Confirmed once payment settles.
// This is the only transition the saga applies directly; it fails from any
// other starting status.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// OverrideStatus overwrites the order status unconditionally, refreshing
// updatedAt. The target must be a defined status value, but no forward-only
// transition check is applied: the update entry point is deliberately
// permissive, matching observed behavior. CanTransitionTo exists for callers
// that want to check before overriding.
func (o *Order) OverrideStatus(next Status, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}

	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID string) error {
	if restaurantID == "" {
		return errs.NewValueIsRequiredError("restaurantId")
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
