package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelStaleOrdersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	first := restoredOrder(t, order.StatusPending)
	second := restoredOrder(t, order.StatusPending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllInStatusOlderThan", mock.Anything, order.StatusPending, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first, second}, nil).Once(),
		orderRepo.On("Update", mock.Anything, first).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, order.StatusCancelled, first.Status())
	assert.Equal(t, order.StatusCancelled, second.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelStaleOrdersCommand(time.Hour)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllInStatusOlderThan", mock.Anything, order.StatusPending, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, cancelled)
}

func TestNewCancelStaleOrdersCommand_NonPositiveAge(t *testing.T) {
	_, err := commands.NewCancelStaleOrdersCommand(0)
	require.Error(t, err)
}
