package menu_test

import (
	"strings"
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewMenuItem(t *testing.T) {
	categoryID := kernel.NewUUID()

	t.Run("creates_available_active_item", func(t *testing.T) {
		item, err := menu.NewMenuItem(
			kernel.NewUUID(), categoryID, "Grilled Salmon", nil, mustMoney(t, "24.99"), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, menu.ItemStatusAvailable, item.Status())
		assert.True(t, item.IsActive())
		assert.Equal(t, "24.99", item.Price().String())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), categoryID, "", nil, mustMoney(t, "5.00"), nil, nil)
		require.Error(t, err)
	})

	t.Run("rejects_name_over_100_chars", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), categoryID, strings.Repeat("x", 101), nil, mustMoney(t, "5.00"), nil, nil)
		require.Error(t, err)
	})

	t.Run("name_limit_counts_characters_not_bytes", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), categoryID, strings.Repeat("é", 100), nil, mustMoney(t, "5.00"), nil, nil)
		require.NoError(t, err)

		_, err = menu.NewMenuItem(
			kernel.NewUUID(), categoryID, strings.Repeat("é", 101), nil, mustMoney(t, "5.00"), nil, nil)
		require.Error(t, err)
	})

	t.Run("rejects_missing_category", func(t *testing.T) {
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), kernel.UUID{}, "Cake", nil, mustMoney(t, "7.99"), nil, nil)
		require.Error(t, err)
	})

	t.Run("rejects_negative_preparation_time", func(t *testing.T) {
		minutes := -5
		_, err := menu.NewMenuItem(
			kernel.NewUUID(), categoryID, "Soup", nil, mustMoney(t, "6.50"), nil, &minutes)
		require.Error(t, err)
	})
}

func TestMenuItem_ChangePrice(t *testing.T) {
	item, err := menu.NewMenuItem(
		kernel.NewUUID(), kernel.NewUUID(), "Cake", nil, mustMoney(t, "7.99"), nil, nil)
	require.NoError(t, err)

	item.ChangePrice(mustMoney(t, "8.49"))

	assert.Equal(t, "8.49", item.Price().String())
}

func TestMenuItem_ChangeStatus(t *testing.T) {
	item, err := menu.NewMenuItem(
		kernel.NewUUID(), kernel.NewUUID(), "Cake", nil, mustMoney(t, "7.99"), nil, nil)
	require.NoError(t, err)

	require.NoError(t, item.ChangeStatus(menu.ItemStatusOutOfStock))
	assert.Equal(t, menu.ItemStatusOutOfStock, item.Status())

	require.Error(t, item.ChangeStatus(menu.ItemStatusUnknown))
}

func TestMenuItem_Validate(t *testing.T) {
	t.Run("zero_value_fails", func(t *testing.T) {
		var item menu.MenuItem
		require.ErrorIs(t, item.Validate(), menu.ErrMenuItemIsNotConstructed)
	})
}

func TestParseItemStatus(t *testing.T) {
	tests := []struct {
		input string
		want  menu.ItemStatus
		ok    bool
	}{
		{"available", menu.ItemStatusAvailable, true},
		{"unavailable", menu.ItemStatusUnavailable, true},
		{"out_of_stock", menu.ItemStatusOutOfStock, true},
		{"sold_out", menu.ItemStatusUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := menu.ParseItemStatus(tt.input)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestNewCategory(t *testing.T) {
	t.Run("creates_active_category", func(t *testing.T) {
		category, err := menu.NewCategory(kernel.NewUUID(), "Desserts", nil, nil)

		require.NoError(t, err)
		assert.True(t, category.IsActive())
		assert.Equal(t, "Desserts", category.Name())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := menu.NewCategory(kernel.NewUUID(), "", nil, nil)
		require.Error(t, err)
	})
}

func TestCategory_Deactivate(t *testing.T) {
	category, err := menu.NewCategory(kernel.NewUUID(), "Seasonal", nil, nil)
	require.NoError(t, err)

	category.Deactivate()
	assert.False(t, category.IsActive())

	category.Activate()
	assert.True(t, category.IsActive())
}
