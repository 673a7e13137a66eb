package customer_test

import (
	"strings"
	"testing"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates_active_customer", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alex", "Kim", nil, nil, nil, nil)

		require.NoError(t, err)
		assert.True(t, c.IsActive())
		assert.Equal(t, "Alex Kim", c.FullName())
		assert.Nil(t, c.Email())
	})

	t.Run("accepts_valid_email", func(t *testing.T) {
		email := "alex@example.com"
		c, err := customer.NewCustomer(kernel.NewUUID(), "Alex", "Kim", &email, nil, nil, nil)

		require.NoError(t, err)
		require.NotNil(t, c.Email())
		assert.Equal(t, email, *c.Email())
	})

	t.Run("rejects_invalid_email", func(t *testing.T) {
		email := "not-an-email"
		_, err := customer.NewCustomer(kernel.NewUUID(), "Alex", "Kim", &email, nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("rejects_missing_name", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "Kim", nil, nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("name_limit_counts_characters_not_bytes", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), strings.Repeat("ü", 100), "Kim", nil, nil, nil, nil)
		require.NoError(t, err)

		_, err = customer.NewCustomer(kernel.NewUUID(), strings.Repeat("ü", 101), "Kim", nil, nil, nil, nil)
		require.Error(t, err)
	})
}

func TestCustomer_Deactivate(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Alex", "Kim", nil, nil, nil, nil)
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.IsActive())
}

func TestCustomer_Validate(t *testing.T) {
	var c customer.Customer
	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
}
