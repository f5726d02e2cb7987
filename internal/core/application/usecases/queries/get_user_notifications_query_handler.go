package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserNotificationsQueryHandler reads a user's notifications from the
// database, newest first.
type GetUserNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserNotificationsQueryHandler creates a handler for notification queries.
// Requires a GORM database connection for query execution.
func NewGetUserNotificationsQueryHandler(db *gorm.DB) GetUserNotificationsQueryHandler {
	return GetUserNotificationsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time descending.
func (h GetUserNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetUserNotificationsQuery,
) ([]GetUserNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]GetUserNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			message,
			created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUserNotificationsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Type,
			&resp.Message,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = notificationID

		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
