package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name  string
		from  order.Status
		to    order.Status
		legal bool
	}{
		{"pending_to_confirmed", order.StatusPending, order.StatusConfirmed, true},
		{"confirmed_to_preparing", order.StatusConfirmed, order.StatusPreparing, true},
		{"preparing_to_ready", order.StatusPreparing, order.StatusReady, true},
		{"ready_to_served", order.StatusReady, order.StatusServed, true},
		{"served_to_completed", order.StatusServed, order.StatusCompleted, true},

		// Skipping intermediate states is a legal forward move.
		{"pending_to_served", order.StatusPending, order.StatusServed, true},
		{"confirmed_to_completed", order.StatusConfirmed, order.StatusCompleted, true},

		// Cancellation from any non-terminal state.
		{"pending_to_cancelled", order.StatusPending, order.StatusCancelled, true},
		{"served_to_cancelled", order.StatusServed, order.StatusCancelled, true},

		// Idempotent no-op.
		{"pending_to_pending", order.StatusPending, order.StatusPending, true},
		{"completed_to_completed", order.StatusCompleted, order.StatusCompleted, true},

		// Backward moves.
		{"served_to_confirmed", order.StatusServed, order.StatusConfirmed, false},
		{"confirmed_to_pending", order.StatusConfirmed, order.StatusPending, false},

		// Out of terminal states.
		{"completed_to_pending", order.StatusCompleted, order.StatusPending, false},
		{"completed_to_cancelled", order.StatusCompleted, order.StatusCancelled, false},
		{"cancelled_to_confirmed", order.StatusCancelled, order.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.CanTransitionTo(tt.to)
			if tt.legal {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, order.ErrIllegalStatusTransition)
			}
		})
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("returns_target_on_legal_move", func(t *testing.T) {
		got, err := order.StatusPending.TransitionTo(order.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, got)
	})

	t.Run("error_carries_both_states", func(t *testing.T) {
		_, err := order.StatusCancelled.TransitionTo(order.StatusConfirmed)

		var transitionErr *order.StatusTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.StatusCancelled, transitionErr.From)
		assert.Equal(t, order.StatusConfirmed, transitionErr.To)
	})

	t.Run("rejects_unknown_states", func(t *testing.T) {
		_, err := order.StatusUnknown.TransitionTo(order.StatusConfirmed)
		require.Error(t, err)

		_, err = order.StatusPending.TransitionTo(order.StatusUnknown)
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusCompleted.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusServed.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	status, err := order.ParseStatus("preparing")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, status)

	_, err = order.ParseStatus("cooking")
	require.Error(t, err)
}

func TestParseType(t *testing.T) {
	orderType, err := order.ParseType("dine_in")
	require.NoError(t, err)
	assert.Equal(t, order.TypeDineIn, orderType)

	_, err = order.ParseType("drive_through")
	require.Error(t, err)
}
