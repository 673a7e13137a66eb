package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"
)

// ErrCreateCategoryCommandIsNotConstructed is returned when a
// CreateCategoryCommand was not created via NewCreateCategoryCommand.
var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to add a menu category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description *string
	imageURL    *string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a category. The name is
// validated by the Category aggregate itself, so the command only checks the
// identity.
func NewCreateCategoryCommand(categoryID kernel.UUID, name string, description, imageURL *string) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := categoryID.Validate(); err != nil {
		return CreateCategoryCommand{}, err
	}

	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description
	cmd.imageURL = imageURL
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the identity the new category will carry.
func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the category name.
func (c CreateCategoryCommand) Name() string {
	return c.name
}

// Description returns the optional description.
func (c CreateCategoryCommand) Description() *string {
	return c.description
}

// ImageURL returns the optional image link.
func (c CreateCategoryCommand) ImageURL() *string {
	return c.imageURL
}

// CreateCategoryCommandHandler handles category creation.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new active category and returns it.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*menu.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	category, err := menu.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description(), cmd.ImageURL())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return category, nil
}
