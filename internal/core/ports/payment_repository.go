package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
// Payments are write-once: there is no update method.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	// Returns an ObjectNotFoundError when no payment matches.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
}
