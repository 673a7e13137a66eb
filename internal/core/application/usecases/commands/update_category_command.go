package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"
)

// ErrUpdateCategoryCommandIsNotConstructed is returned when an
// UpdateCategoryCommand was not created via NewUpdateCategoryCommand.
var ErrUpdateCategoryCommandIsNotConstructed = errors.New(
	"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
)

// UpdateCategoryCommand replaces a category's details and active flag.
type UpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description *string
	imageURL    *string
	isActive    bool

	guard guard.ConstructorGuard
}

// NewUpdateCategoryCommand creates a command to update a category.
func NewUpdateCategoryCommand(
	categoryID kernel.UUID,
	name string,
	description, imageURL *string,
	isActive bool,
) (UpdateCategoryCommand, error) {
	cmd := UpdateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := categoryID.Validate(); err != nil {
		return UpdateCategoryCommand{}, err
	}

	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description
	cmd.imageURL = imageURL
	cmd.isActive = isActive
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

// CategoryID returns the identity of the category to update.
func (c UpdateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the new name.
func (c UpdateCategoryCommand) Name() string {
	return c.name
}

// Description returns the new optional description.
func (c UpdateCategoryCommand) Description() *string {
	return c.description
}

// ImageURL returns the new optional image link.
func (c UpdateCategoryCommand) ImageURL() *string {
	return c.imageURL
}

// IsActive returns the new active flag.
func (c UpdateCategoryCommand) IsActive() bool {
	return c.isActive
}

// UpdateCategoryCommandHandler handles category updates.
type UpdateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateCategoryCommandHandler creates a handler for category updates.
func NewUpdateCategoryCommandHandler(uowFactory CatalogUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the category, applies the new details, and persists it.
func (h *UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*menu.Category, error) {
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

	categoryRepo := uow.CategoryRepository()
	category, err := categoryRepo.Get(ctx, cmd.CategoryID())
	if err != nil {
		return nil, err
	}

	if err = category.UpdateDetails(cmd.Name(), cmd.Description(), cmd.ImageURL()); err != nil {
		return nil, err
	}
	if cmd.IsActive() {
		category.Activate()
	} else {
		category.Deactivate()
	}

	if err = categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return category, nil
}
