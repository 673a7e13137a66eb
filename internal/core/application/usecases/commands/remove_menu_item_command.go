package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

// ErrRemoveMenuItemCommandIsNotConstructed is returned when a
// RemoveMenuItemCommand was not created via NewRemoveMenuItemCommand.
var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand soft deletes a menu item. Existing order lines keep
// their price snapshots; the item just stops resolving for new lines.
type RemoveMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a command to remove a menu item.
func NewRemoveMenuItemCommand(menuItemID kernel.UUID) (RemoveMenuItemCommand, error) {
	cmd := RemoveMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := menuItemID.Validate(); err != nil {
		return RemoveMenuItemCommand{}, err
	}

	cmd.menuItemID = menuItemID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identity of the item to remove.
func (c RemoveMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// RemoveMenuItemCommandHandler handles menu item removal.
type RemoveMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveMenuItemCommandHandler creates a handler for menu item removal.
func NewRemoveMenuItemCommandHandler(uowFactory CatalogUoWFactory) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle soft deletes the menu item.
func (h *RemoveMenuItemCommandHandler) Handle(ctx context.Context, cmd RemoveMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItemRepo := uow.MenuItemRepository()
	if _, err := menuItemRepo.Get(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	if err := menuItemRepo.Remove(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
