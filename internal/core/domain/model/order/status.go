package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// ErrIllegalStatusTransition is the unwrap target of StatusTransitionError.
// Callers classify lifecycle violations with errors.Is against this value.
var ErrIllegalStatusTransition = errors.New("illegal status transition")

// StatusTransitionError reports a rejected lifecycle change, carrying the
// states involved.
type StatusTransitionError struct {
	From Status
	To   Status
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrIllegalStatusTransition, e.From, e.To)
}

func (e *StatusTransitionError) Unwrap() error {
	return ErrIllegalStatusTransition
}

// Status represents the lifecycle state of an order.
//
// The main sequence is:
//
//	pending -> confirmed -> preparing -> ready -> served -> completed
//
// A change is legal when it moves strictly forward along the main sequence
// (skipping intermediate states is allowed), or to cancelled from any
// non-terminal state. Re-applying the current status is an idempotent no-op.
// Completed and cancelled are terminal.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// StatusPending is the initial state of every new order.
	StatusPending

	// StatusConfirmed means the order has been accepted.
	StatusConfirmed

	// StatusPreparing means the kitchen is working on the order.
	StatusPreparing

	// StatusReady means the order is ready to be served or picked up.
	StatusReady

	// StatusServed means the order has reached the guest.
	StatusServed

	// StatusCompleted is the terminal success state.
	StatusCompleted

	// StatusCancelled is the terminal abort state, reachable from any
	// non-terminal state.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusServed:    "served",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// ParseStatus converts the wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects StatusUnknown and any out-of-range value.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is legal from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to the target state is legal,
// without performing the transition.
func (s Status) CanTransitionTo(to Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	// Idempotent no-op.
	if s == to {
		return nil
	}

	if s.IsTerminal() {
		return &StatusTransitionError{From: s, To: to}
	}

	if to == StatusCancelled {
		return nil
	}

	// Forward along the main sequence; skipping states is allowed. Ordinal
	// comparison works because the main-sequence constants are declared in
	// lifecycle order, and cancelled was handled above.
	if to > s && to <= StatusCompleted {
		return nil
	}

	return &StatusTransitionError{From: s, To: to}
}

// TransitionTo returns the target state if the move is legal.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := s.CanTransitionTo(to); err != nil {
		return StatusUnknown, err
	}
	return to, nil
}
