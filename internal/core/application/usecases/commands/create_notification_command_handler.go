package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/ports"
)

// CreateNotificationCommandHandler stores notifications inside the
// notification sink service. Notifications are write-once; listing them is a
// query-side concern.
type CreateNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
	clock      ports.Clock
}

// NewCreateNotificationCommandHandler creates a handler for notification storage.
func NewCreateNotificationCommandHandler(
	uowFactory NotificationUoWFactory,
	clock ports.Clock,
) CreateNotificationCommandHandler {
	return CreateNotificationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the notification command.
// Persists the notification and returns the stored record.
func (h *CreateNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateNotificationCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	stored, err := notification.NewNotification(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.Kind(),
		cmd.Message(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, stored); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
