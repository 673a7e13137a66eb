package staff_test

import (
	"strings"
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	t.Run("creates_active_member", func(t *testing.T) {
		member, err := staff.NewStaff(
			kernel.NewUUID(), "Dana", "Reyes", "dana@example.com", nil, staff.RoleWaiter, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, staff.StatusActive, member.Status())
		assert.Equal(t, "Dana Reyes", member.FullName())
	})

	t.Run("rejects_missing_names", func(t *testing.T) {
		_, err := staff.NewStaff(
			kernel.NewUUID(), "", "Reyes", "dana@example.com", nil, staff.RoleWaiter, nil, nil)
		require.Error(t, err)

		_, err = staff.NewStaff(
			kernel.NewUUID(), "Dana", "", "dana@example.com", nil, staff.RoleWaiter, nil, nil)
		require.Error(t, err)
	})

	t.Run("name_limit_counts_characters_not_bytes", func(t *testing.T) {
		_, err := staff.NewStaff(
			kernel.NewUUID(), strings.Repeat("ñ", 100), "Reyes", "dana@example.com", nil, staff.RoleWaiter, nil, nil)
		require.NoError(t, err)

		_, err = staff.NewStaff(
			kernel.NewUUID(), strings.Repeat("ñ", 101), "Reyes", "dana@example.com", nil, staff.RoleWaiter, nil, nil)
		require.Error(t, err)
	})

	t.Run("rejects_bad_email", func(t *testing.T) {
		for _, email := range []string{"", "plainaddress", "@nouser", "trailing@"} {
			_, err := staff.NewStaff(
				kernel.NewUUID(), "Dana", "Reyes", email, nil, staff.RoleWaiter, nil, nil)
			require.Error(t, err, "email %q", email)
		}
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		_, err := staff.NewStaff(
			kernel.NewUUID(), "Dana", "Reyes", "dana@example.com", nil, staff.RoleUnknown, nil, nil)
		require.Error(t, err)
	})
}

func TestStaff_ChangeStatus(t *testing.T) {
	member, err := staff.NewStaff(
		kernel.NewUUID(), "Dana", "Reyes", "dana@example.com", nil, staff.RoleChef, nil, nil)
	require.NoError(t, err)

	require.NoError(t, member.ChangeStatus(staff.StatusOnLeave))
	assert.Equal(t, staff.StatusOnLeave, member.Status())

	require.Error(t, member.ChangeStatus(staff.StatusUnknown))
}

func TestParseRole(t *testing.T) {
	role, err := staff.ParseRole("cashier")
	require.NoError(t, err)
	assert.Equal(t, staff.RoleCashier, role)

	_, err = staff.ParseRole("barista")
	require.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	status, err := staff.ParseStatus("on_leave")
	require.NoError(t, err)
	assert.Equal(t, staff.StatusOnLeave, status)

	_, err = staff.ParseStatus("fired")
	require.Error(t, err)
}
