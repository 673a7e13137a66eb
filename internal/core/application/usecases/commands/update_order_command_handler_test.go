package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_StatusChange(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.StatusPending)
	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), commands.OrderPatch{
		Status: commands.NewField(order.StatusConfirmed),
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewPricingEngine())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, updated.Status())
	assert.Equal(t, order.StatusPending, updated.RestoredStatus())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ServedTimeRecorded(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.StatusReady)
	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), commands.OrderPatch{
		Status: commands.NewField(order.StatusServed),
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewPricingEngine())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusServed, updated.Status())
	require.NotNil(t, updated.ServedTime())
}

func TestUpdateOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.StatusCompleted)
	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), commands.OrderPatch{
		Status: commands.NewField(order.StatusPreparing),
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewPricingEngine())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrIllegalStatusTransition)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_ItemsFrozenAfterPending(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.StatusConfirmed)
	input, err := commands.NewItemInput(kernel.NewUUID(), 1, nil)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), commands.OrderPatch{
		Items: commands.NewField([]commands.ItemInput{input}),
	})
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	menuRepo.On("Get", mock.Anything, input.MenuItemID()).Return(testMenuItem(t, "7.99"), nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewPricingEngine())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrItemsAreImmutable)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_ReplaceItemsWhilePending(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.StatusPending)
	input, err := commands.NewItemInput(kernel.NewUUID(), 3, nil)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), commands.OrderPatch{
		Items: commands.NewField([]commands.ItemInput{input}),
	})
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	menuRepo.On("Get", mock.Anything, input.MenuItemID()).Return(testMenuItem(t, "7.99"), nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewPricingEngine())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, updated.Items(), 1)
	assert.Equal(t, 3, updated.Items()[0].Quantity())
	assert.Equal(t, "23.97", updated.Subtotal().String())
}

func TestUpdateOrderCommandHandler_Handle_ClearTableReference(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.StatusPending)
	cmd, err := commands.NewUpdateOrderCommand(aggregate.ID(), commands.OrderPatch{
		TableID: commands.NewField[*kernel.UUID](nil),
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewPricingEngine())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Nil(t, updated.TableID())
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, commands.OrderPatch{
		Status: commands.NewField(order.StatusConfirmed),
	})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, services.NewPricingEngine())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
