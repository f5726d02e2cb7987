// Package queries contains read-only operations over the persisted state.
// Query handlers bypass the aggregates and read projections straight from
// the database, following the CQRS split: commands go through unit of work
// and domain rules, queries return plain response structs.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves every order a customer has placed, whatever
// its status. No ordering is guaranteed.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetUserOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a customer's orders.
// Validates that the customer id is valid.
func NewGetUserOrdersQuery(customerID kernel.UUID) (GetUserOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetUserOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderItemResponse is one ordered line as stored with the order.
type OrderItemResponse struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// GetUserOrdersQueryResponse represents one order in the customer's history.
type GetUserOrdersQueryResponse struct {
	ID           kernel.UUID
	RestaurantID string
	Items        []OrderItemResponse
	TotalAmount  float64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
