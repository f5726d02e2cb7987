package ports

import (
	"context"

	"foodorder/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
// Notifications are write-once; reads go through the query side.
type NotificationRepository interface {
	// Add persists a new notification to storage.
	Add(ctx context.Context, aggregate *notification.Notification) error
}
