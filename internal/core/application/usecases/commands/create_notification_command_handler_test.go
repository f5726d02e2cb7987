package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

func TestNewCreateNotificationCommand_MissingFields(t *testing.T) {
	userID := kernel.NewUUID()

	_, err := commands.NewCreateNotificationCommand(userID, "", "hello")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateNotificationCommand(userID, "ORDER_STATUS", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateNotificationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateNotificationCommand(userID, "ORDER_STATUS", "Order confirmed and payment processed")
	require.NoError(t, err)

	repo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)
	factory := new(MockNotificationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h := commands.NewCreateNotificationCommandHandler(factory, stubClock{now: now})
	stored, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, userID.IsEqual(stored.UserID()))
	assert.Equal(t, "ORDER_STATUS", stored.Kind())
	assert.Equal(t, "Order confirmed and payment processed", stored.Message())
	assert.Equal(t, now, stored.CreatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateNotificationCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateNotificationCommand(kernel.NewUUID(), "ORDER_STATUS", "hello")
	require.NoError(t, err)

	repo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)
	factory := new(MockNotificationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateNotificationCommandHandler(factory, stubClock{now: time.Now()})
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
}
