package services

import (
	"time"

	"foodorder/internal/core/domain/model/order"
)

// Billing constants applied to every invoice: a flat tax rate and a fixed
// delivery fee, regardless of payment or delivery outcome.
const (
	TaxRate     = 0.08
	DeliveryFee = 2.99
)

// PaymentSnapshot is the payment detail captured during the create-order call
// chain. It mirrors the payment gateway's response and is embedded into the
// invoice without re-querying the gateway.
type PaymentSnapshot struct {
	ID        string
	Amount    float64
	Status    string
	Method    string
	CreatedAt time.Time
}

// DeliverySnapshot is the delivery detail captured during the create-order
// call chain, embedded into the invoice without re-querying the coordinator.
type DeliverySnapshot struct {
	ID             string
	Status         string
	EstimatedTime  int
	DeliveryPerson string
}

// Invoice is a derived summary computed on demand from an order plus the
// optional payment and delivery snapshots. It is never persisted.
type Invoice struct {
	OrderID         string
	CustomerID      string
	RestaurantID    string
	Items           []order.Item
	Subtotal        float64
	Tax             float64
	DeliveryFee     float64
	Total           float64
	PaymentDetails  *PaymentSnapshot
	DeliveryDetails *DeliverySnapshot
	OrderDate       time.Time
	Status          order.Status
}

// InvoiceComposer is a domain service building invoices.
//
// The composition is a pure function of its inputs: subtotal is the order's
// caller-supplied total, tax is 8% of the subtotal, the delivery fee is flat,
// and the grand total is the sum of the three. The payment and delivery
// snapshots are embedded exactly as captured (or left nil when the
// collaborator was unavailable); the composer performs no I/O.
//
// Example:
//
//	composer := NewInvoiceComposer()
//	invoice, err := composer.Compose(order, paymentSnap, nil)
//	if err != nil {
//	    // order was not constructed properly
//	}
//	// invoice.Total == order.TotalAmount()*1.08 + 2.99
type InvoiceComposer struct{}

// NewInvoiceComposer creates a new InvoiceComposer instance.
func NewInvoiceComposer() InvoiceComposer {
	return InvoiceComposer{}
}

// Compose builds the invoice for an order. The payment and delivery snapshots
// may be nil; the billing math does not depend on them.
func (InvoiceComposer) Compose(
	o *order.Order,
	paymentDetails *PaymentSnapshot,
	deliveryDetails *DeliverySnapshot,
) (Invoice, error) {
	if err := o.Validate(); err != nil {
		return Invoice{}, err
	}

	subtotal := o.TotalAmount()
	tax := subtotal * TaxRate

	return Invoice{
		OrderID:         o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		RestaurantID:    o.RestaurantID(),
		Items:           o.Items(),
		Subtotal:        subtotal,
		Tax:             tax,
		DeliveryFee:     DeliveryFee,
		Total:           subtotal + tax + DeliveryFee,
		PaymentDetails:  paymentDetails,
		DeliveryDetails: deliveryDetails,
		OrderDate:       o.CreatedAt(),
		Status:          o.Status(),
	}, nil
}
