package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem constructor")

// Item is a value object describing one ordered line: a catalog reference,
// a display-name snapshot taken at ordering time, a quantity, and the unit
// price the customer saw. The name and price are snapshots on purpose; later
// menu edits must not rewrite history.
type Item struct {
	menuItemID string
	name       string
	quantity   int
	price      float64

	guard guard.ConstructorGuard
}

// NewItem creates an order line after validating its invariants:
// the catalog reference is required, quantity is at least 1, and the unit
// price is non-negative. The display name may be empty; it is only a snapshot.
func NewItem(menuItemID, name string, quantity int, price float64) (Item, error) {
	if menuItemID == "" {
		return Item{}, errs.NewValueIsRequiredError("menuItemId")
	}

	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}

	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%g is negative", price),
		)
	}

	return Item{
		menuItemID: menuItemID,
		name:       name,
		quantity:   quantity,
		price:      price,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// MenuItemID returns the catalog reference of the ordered item.
func (i Item) MenuItemID() string {
	return i.menuItemID
}

// Name returns the display-name snapshot captured at ordering time.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshot.
func (i Item) Price() float64 {
	return i.price
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
