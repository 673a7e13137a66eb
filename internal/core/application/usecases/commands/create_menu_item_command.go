package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrCreateMenuItemCommandIsNotConstructed is returned when a
// CreateMenuItemCommand was not created via NewCreateMenuItemCommand.
var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add a dish to the menu.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID      kernel.UUID
	categoryID      kernel.UUID
	name            string
	description     *string
	price           kernel.Money
	imageURL        *string
	preparationTime *int

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item. The category
// must exist and be active; that is checked in the handler's transaction.
func NewCreateMenuItemCommand(
	menuItemID, categoryID kernel.UUID,
	name string,
	description *string,
	price kernel.Money,
	imageURL *string,
	preparationTime *int,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menuItemID.Validate(),
		validateRequiredRef("categoryId", categoryID),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	cmd.menuItemID = menuItemID
	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description
	cmd.price = price
	cmd.imageURL = imageURL
	cmd.preparationTime = preparationTime
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identity the new item will carry.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// CategoryID returns the category reference.
func (c CreateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the dish name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the optional description.
func (c CreateMenuItemCommand) Description() *string {
	return c.description
}

// Price returns the menu price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// ImageURL returns the optional image link.
func (c CreateMenuItemCommand) ImageURL() *string {
	return c.imageURL
}

// PreparationTime returns the optional preparation time in minutes.
func (c CreateMenuItemCommand) PreparationTime() *int {
	return c.preparationTime
}

func validateRequiredRef(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

// CreateMenuItemCommandHandler handles menu item creation.
type CreateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory CatalogUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the category, persists the new item, and returns it.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.MenuItem, error) {
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

	resolver, err := NewReferenceResolver(uow)
	if err != nil {
		return nil, err
	}
	if _, err = resolver.ResolveCategory(ctx, cmd.CategoryID()); err != nil {
		return nil, err
	}

	item, err := menu.NewMenuItem(
		cmd.MenuItemID(), cmd.CategoryID(), cmd.Name(), cmd.Description(),
		cmd.Price(), cmd.ImageURL(), cmd.PreparationTime())
	if err != nil {
		return nil, err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
