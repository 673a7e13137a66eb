package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"
)

// ErrUpdateMenuItemCommandIsNotConstructed is returned when an
// UpdateMenuItemCommand was not created via NewUpdateMenuItemCommand.
var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand replaces a menu item's details, price, category,
// availability status, and active flag. Orders that already snapshotted the
// old price are unaffected.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID      kernel.UUID
	categoryID      kernel.UUID
	name            string
	description     *string
	price           kernel.Money
	imageURL        *string
	preparationTime *int
	status          menu.ItemStatus
	isActive        bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item.
func NewUpdateMenuItemCommand(
	menuItemID, categoryID kernel.UUID,
	name string,
	description *string,
	price kernel.Money,
	imageURL *string,
	preparationTime *int,
	status menu.ItemStatus,
	isActive bool,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menuItemID.Validate(),
		validateRequiredRef("categoryId", categoryID),
		status.Validate(),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	cmd.menuItemID = menuItemID
	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description
	cmd.price = price
	cmd.imageURL = imageURL
	cmd.preparationTime = preparationTime
	cmd.status = status
	cmd.isActive = isActive
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identity of the item to update.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// CategoryID returns the (possibly new) category reference.
func (c UpdateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the new dish name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the new optional description.
func (c UpdateMenuItemCommand) Description() *string {
	return c.description
}

// Price returns the new menu price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// ImageURL returns the new optional image link.
func (c UpdateMenuItemCommand) ImageURL() *string {
	return c.imageURL
}

// PreparationTime returns the new optional preparation time in minutes.
func (c UpdateMenuItemCommand) PreparationTime() *int {
	return c.preparationTime
}

// Status returns the new availability status.
func (c UpdateMenuItemCommand) Status() menu.ItemStatus {
	return c.status
}

// IsActive returns the new active flag.
func (c UpdateMenuItemCommand) IsActive() bool {
	return c.isActive
}

// UpdateMenuItemCommandHandler handles menu item updates.
type UpdateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory CatalogUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the item, re-resolves the category when it changed, applies
// the new details, and persists the result.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItemRepo := uow.MenuItemRepository()
	item, err := menuItemRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	if !item.CategoryID().IsEqual(cmd.CategoryID()) {
		resolver, err := NewReferenceResolver(uow)
		if err != nil {
			return nil, err
		}
		if _, err = resolver.ResolveCategory(ctx, cmd.CategoryID()); err != nil {
			return nil, err
		}
		if err = item.Recategorize(cmd.CategoryID()); err != nil {
			return nil, err
		}
	}

	if err = item.UpdateDetails(cmd.Name(), cmd.Description(), cmd.ImageURL(), cmd.PreparationTime()); err != nil {
		return nil, err
	}
	item.ChangePrice(cmd.Price())
	if err = item.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}
	if cmd.IsActive() {
		item.Activate()
	} else {
		item.Deactivate()
	}

	if err = menuItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
