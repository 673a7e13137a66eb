package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// UpdateOrderCommandHandler handles partial order updates. The current
// aggregate is loaded, every supplied field is validated and applied, and the
// whole result is persisted atomically; a failure on any field leaves the
// order unchanged.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingEngine
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, pricing services.PricingEngine) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the order update command and returns the updated order.
// Supplied references are re-resolved even when unchanged, so an update can
// never leave the order pointing at a deactivated record. Item replacement is
// applied before a status change, which lets one request amend the lines and
// then confirm the order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	resolver, err := NewReferenceResolver(uow)
	if err != nil {
		return nil, err
	}

	if err = h.apply(ctx, resolver, aggregate, cmd.Patch()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *UpdateOrderCommandHandler) apply(
	ctx context.Context,
	resolver ReferenceResolver,
	aggregate *order.Order,
	patch OrderPatch,
) error {
	if patch.Items.IsSet() {
		items, err := buildOrderItems(ctx, resolver, h.pricing, patch.Items.Value())
		if err != nil {
			return err
		}
		if err = aggregate.ReplaceItems(items); err != nil {
			return err
		}
	}

	if patch.CustomerID.IsSet() {
		if id := patch.CustomerID.Value(); id != nil {
			if _, err := resolver.ResolveCustomer(ctx, *id); err != nil {
				return err
			}
		}
		if err := aggregate.AssignCustomer(patch.CustomerID.Value()); err != nil {
			return err
		}
	}
	if patch.TableID.IsSet() {
		if id := patch.TableID.Value(); id != nil {
			if _, err := resolver.ResolveTable(ctx, *id); err != nil {
				return err
			}
		}
		if err := aggregate.AssignTable(patch.TableID.Value()); err != nil {
			return err
		}
	}
	if patch.ServerID.IsSet() {
		if id := patch.ServerID.Value(); id != nil {
			if _, err := resolver.ResolveServer(ctx, *id); err != nil {
				return err
			}
		}
		if err := aggregate.AssignServer(patch.ServerID.Value()); err != nil {
			return err
		}
	}

	if patch.SpecialInstructions.IsSet() {
		aggregate.UpdateInstructions(patch.SpecialInstructions.Value())
	}

	if patch.Tax.IsSet() || patch.Tip.IsSet() {
		tax, tip := aggregate.Tax(), aggregate.Tip()
		if patch.Tax.IsSet() {
			tax = patch.Tax.Value()
		}
		if patch.Tip.IsSet() {
			tip = patch.Tip.Value()
		}
		aggregate.SetCharges(tax, tip)
	}

	if patch.Status.IsSet() {
		if err := aggregate.ChangeStatus(patch.Status.Value(), time.Now().UTC()); err != nil {
			return err
		}
	}

	return nil
}
