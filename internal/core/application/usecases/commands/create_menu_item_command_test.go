package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	categoryID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("7.99")
	require.NoError(t, err)
	cmd, err := commands.NewCreateMenuItemCommand(
		kernel.NewUUID(), categoryID, "Chocolate Cake", nil, price, nil, nil)
	require.NoError(t, err)

	category, err := menu.NewCategory(categoryID, "Desserts", nil, nil)
	require.NoError(t, err)

	categoryRepo := new(MockCategoryRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(categoryRepo).Once(),
		categoryRepo.On("Get", mock.Anything, categoryID).Return(category, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Add", mock.Anything, mock.AnythingOfType("*menu.MenuItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuItemCommandHandler(factory)
	item, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Chocolate Cake", item.Name())
	assert.Equal(t, menu.ItemStatusAvailable, item.Status())
	assert.True(t, item.IsActive())
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateMenuItemCommandHandler_Handle_DeactivatedCategory(t *testing.T) {
	ctx := t.Context()
	categoryID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("7.99")
	require.NoError(t, err)
	cmd, err := commands.NewCreateMenuItemCommand(
		kernel.NewUUID(), categoryID, "Chocolate Cake", nil, price, nil, nil)
	require.NoError(t, err)

	category, err := menu.NewCategory(categoryID, "Desserts", nil, nil)
	require.NoError(t, err)
	category.Deactivate()

	categoryRepo := new(MockCategoryRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CategoryRepository").Return(categoryRepo).Once()
	categoryRepo.On("Get", mock.Anything, categoryID).Return(category, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewCreateMenuItemCommand_MissingCategory(t *testing.T) {
	price, err := kernel.MoneyFromString("7.99")
	require.NoError(t, err)
	_, err = commands.NewCreateMenuItemCommand(
		kernel.NewUUID(), kernel.UUID{}, "Chocolate Cake", nil, price, nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
