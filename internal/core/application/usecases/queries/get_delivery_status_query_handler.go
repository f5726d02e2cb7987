package queries

import (
	"context"
	"database/sql"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryStatusQueryHandler reads a delivery's state by order id.
type GetDeliveryStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryStatusQueryHandler creates a handler for delivery lookups.
// Requires a GORM database connection for query execution.
func NewGetDeliveryStatusQueryHandler(db *gorm.DB) GetDeliveryStatusQueryHandler {
	return GetDeliveryStatusQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no delivery
// exists for the order.
func (h GetDeliveryStatusQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatusQuery,
) (GetDeliveryStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryStatusQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			partner_id,
			status,
			estimated_time,
			location_lat,
			location_lng,
			created_at
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetDeliveryStatusQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetDeliveryStatusQueryResponse{}, err
		}
		return GetDeliveryStatusQueryResponse{},
			errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	var resp GetDeliveryStatusQueryResponse
	var id, orderID uuid.UUID
	var status int
	var lat, lng sql.NullFloat64

	err = rows.Scan(
		&id,
		&orderID,
		&resp.PartnerID,
		&status,
		&resp.EstimatedTime,
		&lat,
		&lng,
		&resp.CreatedAt,
	)
	if err != nil {
		return GetDeliveryStatusQueryResponse{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDeliveryStatusQueryResponse{}, err
	}
	resp.ID = deliveryID

	respOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetDeliveryStatusQueryResponse{}, err
	}
	resp.OrderID = respOrderID

	resp.Status = delivery.Status(status).String()
	if lat.Valid && lng.Valid {
		resp.CurrentLocation = &LocationResponse{Lat: lat.Float64, Lng: lng.Float64}
	}

	return resp, nil
}
