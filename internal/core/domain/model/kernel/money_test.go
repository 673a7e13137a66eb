package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("parses_and_keeps_two_digits", func(t *testing.T) {
		m, err := kernel.MoneyFromString("24.99")

		require.NoError(t, err)
		assert.Equal(t, "24.99", m.String())
	})

	t.Run("rounds_half_up", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.005")

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("rejects_negative", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-0.01")
		require.Error(t, err)
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")
		require.Error(t, err)
	})
}

func TestMoney_MulQuantity(t *testing.T) {
	t.Run("line_total_is_exact", func(t *testing.T) {
		unit, err := kernel.MoneyFromString("24.99")
		require.NoError(t, err)

		total := unit.MulQuantity(2)

		assert.Equal(t, "49.98", total.String())
	})

	t.Run("repeated_recomputation_is_stable", func(t *testing.T) {
		unit, err := kernel.MoneyFromString("7.99")
		require.NoError(t, err)

		first := unit.MulQuantity(3)
		second := unit.MulQuantity(3)

		assert.True(t, first.IsEqual(second))
		assert.Equal(t, "23.97", first.String())
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("sums_without_drift", func(t *testing.T) {
		a, err := kernel.MoneyFromString("49.98")
		require.NoError(t, err)
		b, err := kernel.MoneyFromString("7.99")
		require.NoError(t, err)

		assert.Equal(t, "57.97", a.Add(b).String())
	})
}

func TestZeroMoney(t *testing.T) {
	zero := kernel.ZeroMoney()

	assert.True(t, zero.IsZero())
	assert.Equal(t, "0.00", zero.String())
}

func TestNewMoney(t *testing.T) {
	t.Run("rejects_negative_decimal", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-1.50))
		require.Error(t, err)
	})

	t.Run("accepts_zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})
}
