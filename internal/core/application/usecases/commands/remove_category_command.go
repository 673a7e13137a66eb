package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

// ErrRemoveCategoryCommandIsNotConstructed is returned when a
// RemoveCategoryCommand was not created via NewRemoveCategoryCommand.
var ErrRemoveCategoryCommandIsNotConstructed = errors.New(
	"RemoveCategoryCommand must be created via NewRemoveCategoryCommand constructor",
)

// RemoveCategoryCommand soft deletes a category. Menu items keep their
// category reference; the category simply stops resolving for new orders and
// item moves.
type RemoveCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCategoryCommand creates a command to remove a category.
func NewRemoveCategoryCommand(categoryID kernel.UUID) (RemoveCategoryCommand, error) {
	cmd := RemoveCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := categoryID.Validate(); err != nil {
		return RemoveCategoryCommand{}, err
	}

	cmd.categoryID = categoryID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCategoryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCategoryCommandIsNotConstructed)
}

// CategoryID returns the identity of the category to remove.
func (c RemoveCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// RemoveCategoryCommandHandler handles category removal.
type RemoveCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveCategoryCommandHandler creates a handler for category removal.
func NewRemoveCategoryCommandHandler(uowFactory CatalogUoWFactory) RemoveCategoryCommandHandler {
	return RemoveCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle soft deletes the category.
func (h *RemoveCategoryCommandHandler) Handle(ctx context.Context, cmd RemoveCategoryCommand) error {
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

	categoryRepo := uow.CategoryRepository()
	if _, err := categoryRepo.Get(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	if err := categoryRepo.Remove(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
