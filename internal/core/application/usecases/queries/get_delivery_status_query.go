package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetDeliveryStatusQueryIsNotConstructed = errors.New(
	"GetDeliveryStatusQuery must be created via NewGetDeliveryStatusQuery constructor",
)

// GetDeliveryStatusQuery retrieves the delivery created for an order.
// Lookups go by order id, the identifier customers actually hold.
type GetDeliveryStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryStatusQuery creates a query for an order's delivery.
// Validates that the order id is valid.
func NewGetDeliveryStatusQuery(orderID kernel.UUID) (GetDeliveryStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryStatusQuery{}, err
	}

	return GetDeliveryStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryStatusQueryIsNotConstructed if validation fails.
func (q GetDeliveryStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatusQueryIsNotConstructed)
}

// OrderID returns the order whose delivery is requested.
func (q GetDeliveryStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// LocationResponse is the partner's last reported coordinate.
type LocationResponse struct {
	Lat float64
	Lng float64
}

// GetDeliveryStatusQueryResponse represents the delivery's current state.
// CurrentLocation is nil when the partner never reported a position.
type GetDeliveryStatusQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	PartnerID       string
	Status          string
	EstimatedTime   int
	CurrentLocation *LocationResponse
	CreatedAt       time.Time
}
