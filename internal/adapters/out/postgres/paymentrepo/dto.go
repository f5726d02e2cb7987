// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
// Payments are write-once records; the repository exposes no update path.
package paymentrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payments.
type PaymentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Amount    float64
	Status    int
	Method    string
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		Amount:    aggregate.Amount(),
		Status:    int(aggregate.Status()),
		Method:    aggregate.Method(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		dto.Amount,
		payment.Status(dto.Status),
		dto.Method,
		dto.CreatedAt,
	)
}
