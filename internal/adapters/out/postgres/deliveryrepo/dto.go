// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// Implements the repository pattern for the delivery aggregate owned by the
// delivery coordinator.
package deliveryrepo

import (
	"time"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// One delivery per order; the order id carries a unique index so the
// by-order lookup is a point read. The location columns are nullable, a
// partner that never reports stays NULL.
type DeliveryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PartnerID     string
	Status        int
	EstimatedTime int
	LocationLat   *float64
	LocationLng   *float64
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var lat, lng *float64
	if loc := aggregate.CurrentLocation(); loc != nil {
		latVal, lngVal := loc.Lat(), loc.Lng()
		lat, lng = &latVal, &lngVal
	}

	return DeliveryDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		PartnerID:     aggregate.PartnerID(),
		Status:        int(aggregate.Status()),
		EstimatedTime: aggregate.EstimatedTime(),
		LocationLat:   lat,
		LocationLng:   lng,
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLng)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		dto.PartnerID,
		delivery.Status(dto.Status),
		dto.EstimatedTime,
		location,
		dto.CreatedAt,
	)
}
