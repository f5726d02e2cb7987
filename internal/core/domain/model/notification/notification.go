// Package notification contains the Notification entity of the notification
// sink. Notifications are write-once records; users read them newest first.
package notification

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// TypeOrderStatus tags notifications produced by the ordering saga and the
// status update entry point.
const TypeOrderStatus = "ORDER_STATUS"

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errs.NewValueIsRequiredError("Notification must be created via NewNotification or RestoreNotification")

// Notification is a single message stored for a user.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	kind      string
	message   string
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates a notification. The type tag and message are
// required; the message text is stored verbatim.
func NewNotification(id, userID kernel.UUID, kind, message string, now time.Time) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := userID.Validate(); err != nil {
		return nil, err
	}

	if kind == "" {
		return nil, errs.NewValueIsRequiredError("type")
	}

	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		id:            id,
		userID:        userID,
		kind:          kind,
		message:       message,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(id, userID kernel.UUID, kind, message string, createdAt time.Time) (*Notification, error) {
	return NewNotification(id, userID, kind, message, createdAt)
}

// Validate ensures the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}

	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID returns the recipient's identifier.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// Kind returns the type tag, e.g. "ORDER_STATUS".
func (n *Notification) Kind() string {
	return n.kind
}

// Message returns the message text.
func (n *Notification) Message() string {
	return n.message
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}
