package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetUserNotificationsQueryIsNotConstructed = errors.New(
	"GetUserNotificationsQuery must be created via NewGetUserNotificationsQuery constructor",
)

// GetUserNotificationsQuery retrieves a user's notifications, newest first.
type GetUserNotificationsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserNotificationsQuery creates a query for a user's notifications.
// Validates that the user id is valid.
func NewGetUserNotificationsQuery(userID kernel.UUID) (GetUserNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserNotificationsQuery{}, err
	}

	return GetUserNotificationsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserNotificationsQueryIsNotConstructed if validation fails.
func (q GetUserNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserNotificationsQueryIsNotConstructed)
}

// UserID returns the user whose notifications are requested.
func (q GetUserNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserNotificationsQueryResponse represents one stored notification.
type GetUserNotificationsQueryResponse struct {
	ID        kernel.UUID
	Type      string
	Message   string
	CreatedAt time.Time
}
