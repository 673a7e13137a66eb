package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// CancelStaleOrdersCommandHandler sweeps pending orders whose order time has
// fallen behind the configured age and cancels them. Cancelling from pending
// is always a legal transition, so the sweep cannot trip the status machine.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale order
// sweep.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every pending order placed more than the command's age ago
// and returns how many were cancelled. The whole sweep runs in one
// transaction.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	cutoff := now.Add(-cmd.OlderThan())

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetAllInStatusOlderThan(ctx, order.StatusPending, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.ChangeStatus(order.StatusCancelled, now); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
