package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItemInputs(t *testing.T) []commands.ItemInput {
	t.Helper()
	input, err := commands.NewItemInput(kernel.NewUUID(), 2, nil)
	require.NoError(t, err)
	return []commands.ItemInput{input}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), order.TypeTakeaway, nil, nil, nil,
			validItemInputs(t), nil, nil, nil)
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, order.TypeTakeaway, cmd.OrderType())
		assert.Equal(t, "0.00", cmd.Tax().String())
		assert.Equal(t, "0.00", cmd.Tip().String())
	})

	t.Run("unknown_order_type_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), order.TypeUnknown, nil, nil, nil,
			validItemInputs(t), nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("empty_items_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), order.TypeDineIn, nil, nil, nil,
			nil, nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_order_id_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, order.TypeDineIn, nil, nil, nil,
			validItemInputs(t), nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("not_constructed_command_fails_validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestNewItemInput(t *testing.T) {
	t.Run("quantity_below_one_rejected", func(t *testing.T) {
		_, err := commands.NewItemInput(kernel.NewUUID(), 0, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing_menu_item_rejected", func(t *testing.T) {
		_, err := commands.NewItemInput(kernel.UUID{}, 1, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
