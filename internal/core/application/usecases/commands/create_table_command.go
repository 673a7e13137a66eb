package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/dining"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

// ErrCreateTableCommandIsNotConstructed is returned when a CreateTableCommand
// was not created via NewCreateTableCommand.
var ErrCreateTableCommandIsNotConstructed = errors.New(
	"CreateTableCommand must be created via NewCreateTableCommand constructor",
)

// CreateTableCommand represents a request to register a physical table.
type CreateTableCommand struct { //nolint:recvcheck //using for validation
	tableID  kernel.UUID
	number   string
	capacity int
	location *string

	guard guard.ConstructorGuard
}

// NewCreateTableCommand creates a command to register a table.
func NewCreateTableCommand(tableID kernel.UUID, number string, capacity int, location *string) (CreateTableCommand, error) {
	cmd := CreateTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tableID.Validate(); err != nil {
		return CreateTableCommand{}, err
	}

	cmd.tableID = tableID
	cmd.number = number
	cmd.capacity = capacity
	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

// TableID returns the identity the new table will carry.
func (c CreateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

// Number returns the table label.
func (c CreateTableCommand) Number() string {
	return c.number
}

// Capacity returns the seat count.
func (c CreateTableCommand) Capacity() int {
	return c.capacity
}

// Location returns the optional location label.
func (c CreateTableCommand) Location() *string {
	return c.location
}

// CreateTableCommandHandler handles table registration.
type CreateTableCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateTableCommandHandler creates a handler for table registration.
func NewCreateTableCommandHandler(uowFactory CatalogUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new available table and returns it.
func (h *CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) (*dining.Table, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	table, err := dining.NewTable(cmd.TableID(), cmd.Number(), cmd.Capacity(), cmd.Location())
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

	if err = uow.TableRepository().Add(ctx, table); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return table, nil
}
