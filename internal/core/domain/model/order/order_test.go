package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newItem(t *testing.T, price string, quantity int) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), quantity, mustMoney(t, price), nil)
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []*order.Item{newItem(t, "10.00", 1)}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-20260830-000001", order.TypeDineIn,
		nil, nil, nil, items, kernel.ZeroMoney(), kernel.ZeroMoney(), nil, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("derives_total_from_unit_price_and_quantity", func(t *testing.T) {
		item := newItem(t, "24.99", 2)

		assert.Equal(t, "24.99", item.UnitPrice().String())
		assert.Equal(t, "49.98", item.TotalPrice().String())
	})

	t.Run("rejects_quantity_below_one", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(
				kernel.NewUUID(), kernel.NewUUID(), quantity, mustMoney(t, "5.00"), nil)
			require.Error(t, err, "quantity %d", quantity)
		}
	})

	t.Run("rejects_missing_menu_item_reference", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.UUID{}, 1, mustMoney(t, "5.00"), nil)
		require.Error(t, err)
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("rejects_inconsistent_stored_total", func(t *testing.T) {
		_, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), 2,
			mustMoney(t, "24.99"), mustMoney(t, "49.99"), nil)
		require.Error(t, err)
	})

	t.Run("accepts_consistent_stored_total", func(t *testing.T) {
		item, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), 2,
			mustMoney(t, "24.99"), mustMoney(t, "49.98"), nil)
		require.NoError(t, err)
		assert.Equal(t, "49.98", item.TotalPrice().String())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("dine_in_order_with_two_items", func(t *testing.T) {
		salmon := newItem(t, "24.99", 2)
		cake := newItem(t, "7.99", 1)

		o := newPendingOrder(t, salmon, cake)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "57.97", o.Subtotal().String())
		assert.Equal(t, "57.97", o.Total().String())
		assert.NotNil(t, o.OrderTime())
		assert.Nil(t, o.ServedTime())
	})

	t.Run("total_folds_in_tax_and_tip", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "ORD-20260830-000002", order.TypeTakeaway,
			nil, nil, nil, []*order.Item{newItem(t, "10.00", 1)},
			mustMoney(t, "0.80"), mustMoney(t, "2.00"), nil, time.Now())

		require.NoError(t, err)
		assert.Equal(t, "10.00", o.Subtotal().String())
		assert.Equal(t, "12.80", o.Total().String())
	})

	t.Run("rejects_empty_item_list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-20260830-000003", order.TypeDineIn,
			nil, nil, nil, nil, kernel.ZeroMoney(), kernel.ZeroMoney(), nil, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects_missing_order_number", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "", order.TypeDineIn,
			nil, nil, nil, []*order.Item{newItem(t, "10.00", 1)},
			kernel.ZeroMoney(), kernel.ZeroMoney(), nil, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), "ORD-20260830-000004", order.TypeUnknown,
			nil, nil, nil, []*order.Item{newItem(t, "10.00", 1)},
			kernel.ZeroMoney(), kernel.ZeroMoney(), nil, time.Now())
		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("entering_served_records_served_time", func(t *testing.T) {
		o := newPendingOrder(t)
		servedAt := time.Date(2026, 8, 30, 19, 45, 0, 0, time.UTC)

		require.NoError(t, o.ChangeStatus(order.StatusServed, servedAt))

		assert.Equal(t, order.StatusServed, o.Status())
		require.NotNil(t, o.ServedTime())
		assert.Equal(t, servedAt, *o.ServedTime())
	})

	t.Run("backward_move_after_served_is_rejected", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusServed, time.Now()))

		err := o.ChangeStatus(order.StatusConfirmed, time.Now())
		require.ErrorIs(t, err, order.ErrIllegalStatusTransition)
	})

	t.Run("reapplying_current_status_is_a_noop", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusServed, time.Now()))
		served := *o.ServedTime()

		require.NoError(t, o.ChangeStatus(order.StatusServed, time.Now().Add(time.Hour)))

		assert.Equal(t, served, *o.ServedTime())
	})

	t.Run("terminal_states_are_frozen", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled, time.Now()))

		err := o.ChangeStatus(order.StatusConfirmed, time.Now())
		require.ErrorIs(t, err, order.ErrIllegalStatusTransition)
	})
}

func TestOrder_ReplaceItems(t *testing.T) {
	t.Run("recomputes_totals_while_pending", func(t *testing.T) {
		o := newPendingOrder(t, newItem(t, "10.00", 1))

		require.NoError(t, o.ReplaceItems([]*order.Item{
			newItem(t, "24.99", 2),
			newItem(t, "7.99", 1),
		}))

		assert.Equal(t, "57.97", o.Subtotal().String())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("rejected_once_order_left_pending", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed, time.Now()))

		err := o.ReplaceItems([]*order.Item{newItem(t, "5.00", 1)})
		require.ErrorIs(t, err, order.ErrItemsAreImmutable)
	})

	t.Run("rejects_empty_replacement", func(t *testing.T) {
		o := newPendingOrder(t)
		require.Error(t, o.ReplaceItems(nil))
	})
}

func TestOrder_SetCharges(t *testing.T) {
	o := newPendingOrder(t, newItem(t, "20.00", 1))

	o.SetCharges(mustMoney(t, "1.60"), mustMoney(t, "3.00"))

	assert.Equal(t, "20.00", o.Subtotal().String())
	assert.Equal(t, "24.60", o.Total().String())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("remembers_restored_status", func(t *testing.T) {
		orderTime := time.Now().Add(-time.Hour)
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-20260830-000005", order.StatusPreparing, order.TypeDineIn,
			nil, nil, nil, []*order.Item{newItem(t, "10.00", 1)},
			kernel.ZeroMoney(), kernel.ZeroMoney(), nil, &orderTime, nil)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPreparing, o.Status())
		assert.Equal(t, order.StatusPreparing, o.RestoredStatus())
	})
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
