package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusOrderRepository struct{ mock.Mock }

func (m *MockStatusOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}

func (m *MockStatusOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockStatusOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStatusOrderUoW struct{ mock.Mock }

func (m *MockStatusOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockStatusOrderUoWFactory struct{ mock.Mock }

func (m *MockStatusOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func placedOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	created := time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, "resto-42", testItems(t), 19.98, created)
	require.NoError(t, err)

	return o
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	existing := placedOrder(t, customerID)
	cmd, err := commands.NewUpdateOrderStatusCommand(existing.ID(), order.Preparing)
	require.NoError(t, err)

	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusOrderUoW)
	factory := new(MockStatusOrderUoWFactory)
	sink := new(MockNotificationSink)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		sink.On("Send", mock.Anything, customerID, "ORDER_STATUS", "Order status updated to PREPARING").
			Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	clock := stubClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	h := commands.NewUpdateOrderStatusCommandHandler(factory, sink, clock)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, updated.Status())
	assert.Equal(t, clock.Now(), updated.UpdatedAt())
	repo.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_BackwardOverrideAllowed(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	existing := placedOrder(t, customerID)
	require.NoError(t, existing.Confirm(existing.CreatedAt()))

	cmd, err := commands.NewUpdateOrderStatusCommand(existing.ID(), order.Placed)
	require.NoError(t, err)

	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusOrderUoW)
	factory := new(MockStatusOrderUoWFactory)
	sink := new(MockNotificationSink)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	sink.On("Send", mock.Anything, customerID, "ORDER_STATUS", "Order status updated to PLACED").
		Return(nil).Once()

	clock := stubClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	h := commands.NewUpdateOrderStatusCommandHandler(factory, sink, clock)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Placed, updated.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(missingID, order.Preparing)
	require.NoError(t, err)

	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusOrderUoW)
	factory := new(MockStatusOrderUoWFactory)
	sink := new(MockNotificationSink)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("orderId", missingID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	clock := stubClock{now: time.Now()}
	h := commands.NewUpdateOrderStatusCommandHandler(factory, sink, clock)
	updated, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
	sink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_SinkFailureAfterCommit(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	existing := placedOrder(t, customerID)
	cmd, err := commands.NewUpdateOrderStatusCommand(existing.ID(), order.Cancelled)
	require.NoError(t, err)

	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusOrderUoW)
	factory := new(MockStatusOrderUoWFactory)
	sink := new(MockNotificationSink)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		sink.On("Send", mock.Anything, customerID, "ORDER_STATUS", "Order status updated to CANCELLED").
			Return(errors.New("sink down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	clock := stubClock{now: time.Now()}
	h := commands.NewUpdateOrderStatusCommandHandler(factory, sink, clock)
	updated, err := h.Handle(ctx, cmd)

	// The write committed before the sink call, so the error reaches the
	// caller even though the new status is durable.
	require.Error(t, err)
	assert.Nil(t, updated)
	uow.AssertCalled(t, "Commit", ctx)
}
