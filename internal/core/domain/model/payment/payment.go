// Package payment contains the Payment aggregate of the payment gateway
// service. A payment is created PENDING for an order, settled (or declined)
// exactly once, and never mutated afterwards.
package payment

import (
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// DefaultMethod is the payment method recorded when the caller does not
// specify one. The gateway is simulated; CARD is the only method in use.
const DefaultMethod = "CARD"

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errs.NewValueIsRequiredError("Payment must be created via NewPayment or RestorePayment")

// Payment records one settlement attempt for an order.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	amount    float64
	status    Status
	method    string
	createdAt time.Time

	isConstructed bool
}

// NewPayment creates a Payment in Pending status with the default method.
// The amount must be positive.
func NewPayment(id, orderID kernel.UUID, amount float64, now time.Time) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%g is not greater than 0", amount),
		)
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		status:        Pending,
		method:        DefaultMethod,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id, orderID kernel.UUID,
	amount float64,
	status Status,
	method string,
	createdAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, amount, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	if method != "" {
		p.method = method
	}
	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}

	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order this payment settles.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the charged amount.
func (p *Payment) Amount() float64 {
	return p.amount
}

// Status returns the settlement status.
func (p *Payment) Status() Status {
	return p.status
}

// Method returns the payment method.
func (p *Payment) Method() string {
	return p.method
}

// CreatedAt returns the creation timestamp.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// Settle marks the payment as successfully settled.
func (p *Payment) Settle() error {
	newStatus, err := p.status.Settle()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Decline marks the payment as declined.
func (p *Payment) Decline() error {
	newStatus, err := p.status.Decline()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}
