package queries

import (
	"context"
	"encoding/json"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads a customer's order history from the
// database. Items are stored as a JSON document alongside the order row and
// are decoded into the response as-is.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query and returns every order the customer has placed.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			items,
			total_amount,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE customer_id = ?
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUserOrdersQueryResponse
		var id uuid.UUID
		var items []byte
		var status int

		err = rows.Scan(
			&id,
			&orderResp.RestaurantID,
			&items,
			&orderResp.TotalAmount,
			&status,
			&orderResp.CreatedAt,
			&orderResp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		if err = json.Unmarshal(items, &orderResp.Items); err != nil {
			return nil, err
		}

		orderResp.Status = order.Status(status).String()
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
