package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// CreateOrderCommandHandler handles order placement. Inside a single
// transaction it resolves every reference, snapshots menu prices into the
// order lines, assigns an order number, and persists the pending order.
type CreateOrderCommandHandler struct {
	uowFactory      OrderUoWFactory
	numberGenerator ports.OrderNumberGenerator
	pricing         services.PricingEngine
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	numberGenerator ports.OrderNumberGenerator,
	pricing services.PricingEngine,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		numberGenerator: numberGenerator,
		pricing:         pricing,
	}
}

// Handle processes the order placement command and returns the created order
// with its derived totals. All reference and pricing reads happen in the same
// transaction as the write, so no partial order is ever persisted.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	resolver, err := NewReferenceResolver(uow)
	if err != nil {
		return nil, err
	}

	if err = resolveOrderRefs(ctx, resolver, cmd.CustomerID(), cmd.TableID(), cmd.ServerID()); err != nil {
		return nil, err
	}

	items, err := buildOrderItems(ctx, resolver, h.pricing, cmd.Items())
	if err != nil {
		return nil, err
	}

	number, err := h.numberGenerator.Next(ctx)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.OrderType(),
		cmd.CustomerID(), cmd.TableID(), cmd.ServerID(),
		items,
		cmd.Tax(), cmd.Tip(),
		cmd.SpecialInstructions(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// resolveOrderRefs checks each supplied reference against the catalog.
// Nil references are simply absent.
func resolveOrderRefs(
	ctx context.Context,
	resolver ReferenceResolver,
	customerID, tableID, serverID *kernel.UUID,
) error {
	if customerID != nil {
		if _, err := resolver.ResolveCustomer(ctx, *customerID); err != nil {
			return err
		}
	}
	if tableID != nil {
		if _, err := resolver.ResolveTable(ctx, *tableID); err != nil {
			return err
		}
	}
	if serverID != nil {
		if _, err := resolver.ResolveServer(ctx, *serverID); err != nil {
			return err
		}
	}
	return nil
}

// buildOrderItems turns requested lines into priced order items. The unit
// price of each line is the menu item's price read inside this transaction.
func buildOrderItems(
	ctx context.Context,
	resolver ReferenceResolver,
	pricing services.PricingEngine,
	inputs []ItemInput,
) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(inputs))
	for _, input := range inputs {
		menuItem, err := resolver.ResolveMenuItem(ctx, input.MenuItemID())
		if err != nil {
			return nil, err
		}

		unitPrice, _, err := pricing.PriceLine(menuItem, input.Quantity())
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(
			kernel.NewUUID(), input.MenuItemID(), input.Quantity(), unitPrice, input.SpecialInstructions())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
