// Package notificationrepo provides data transfer objects and mapping functions
// for notification persistence. Notifications are write-once; reads go through
// the query side.
package notificationrepo

import (
	"time"

	"foodorder/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
// The type tag keeps its wire name as the column name.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Kind      string    `gorm:"column:type"`
	Message   string
	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification entity to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		Kind:      aggregate.Kind(),
		Message:   aggregate.Message(),
		CreatedAt: aggregate.CreatedAt(),
	}
}
