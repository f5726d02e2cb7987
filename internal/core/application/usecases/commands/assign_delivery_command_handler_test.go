package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*delivery.Delivery); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(_ context.Context, _ kernel.UUID) (*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

// stubSchedule is an in-test ProgressionSchedule backed by a slice.
type stubSchedule struct {
	tasks []commands.ProgressionTask
}

func (s *stubSchedule) Schedule(task commands.ProgressionTask) {
	s.tasks = append(s.tasks, task)
}

func (s *stubSchedule) Tasks() []commands.ProgressionTask {
	return append([]commands.ProgressionTask(nil), s.tasks...)
}

func (s *stubSchedule) Remove(deliveryID kernel.UUID) {
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if !task.DeliveryID.IsEqual(deliveryID) {
			kept = append(kept, task)
		}
	}
	s.tasks = kept
}

func TestAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(orderID)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	factory := new(MockDeliveryUoWFactory)
	schedule := new(stubSchedule)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h := commands.NewAssignDeliveryCommandHandler(factory, schedule, stubClock{now: now})
	assigned, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Assigned, assigned.Status())
	assert.True(t, orderID.IsEqual(assigned.OrderID()))
	assert.Equal(t, delivery.DefaultPartnerID, assigned.PartnerID())
	assert.Equal(t, delivery.DefaultEstimatedTimeMinutes, assigned.EstimatedTime())

	require.Len(t, schedule.Tasks(), 1)
	task := schedule.Tasks()[0]
	assert.True(t, assigned.ID().IsEqual(task.DeliveryID))
	assert.True(t, orderID.IsEqual(task.OrderID))
	assert.Equal(t, now, task.CreatedAt)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_AddErrorSkipsSchedule(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDeliveryCommand(kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	factory := new(MockDeliveryUoWFactory)
	schedule := new(stubSchedule)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAssignDeliveryCommandHandler(factory, schedule, stubClock{now: time.Now()})
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, schedule.Tasks())
}

func TestAssignDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignDeliveryCommand{} // not constructed properly

	h := commands.NewAssignDeliveryCommandHandler(
		new(MockDeliveryUoWFactory), new(stubSchedule), stubClock{now: time.Now()},
	)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestNewAssignDeliveryCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAssignDeliveryCommand(kernel.UUID{})

	require.Error(t, err)
}
