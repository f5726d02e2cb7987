package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateNotificationCommandIsNotConstructed = errors.New(
	"CreateNotificationCommand must be created via NewCreateNotificationCommand constructor",
)

// CreateNotificationCommand represents a message received by the notification
// sink for a user. The message text is stored verbatim.
type CreateNotificationCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	kind    string
	message string

	guard guard.ConstructorGuard
}

// NewCreateNotificationCommand creates a command to store a notification.
// Validates that the user id is valid and both the type tag and message are
// present.
func NewCreateNotificationCommand(userID kernel.UUID, kind, message string) (CreateNotificationCommand, error) {
	command := CreateNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setKind(kind),
		command.setMessage(message),
	); err != nil {
		return CreateNotificationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateNotificationCommandIsNotConstructed if validation fails.
func (c CreateNotificationCommand) Validate() error {
	return c.guard.Validate(ErrCreateNotificationCommandIsNotConstructed)
}

// UserID returns the recipient's identifier.
func (c CreateNotificationCommand) UserID() kernel.UUID {
	return c.userID
}

// Kind returns the type tag.
func (c CreateNotificationCommand) Kind() string {
	return c.kind
}

// Message returns the message text.
func (c CreateNotificationCommand) Message() string {
	return c.message
}

func (c *CreateNotificationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateNotificationCommand) setKind(kind string) error {
	if kind == "" {
		return errs.NewValueIsRequiredError("type")
	}

	c.kind = kind
	return nil
}

func (c *CreateNotificationCommand) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.message = message
	return nil
}
