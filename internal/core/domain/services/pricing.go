// Package services contains stateless domain services that coordinate logic
// spanning more than one aggregate.
package services

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

// PricingEngine prices order lines against the menu.
//
// The unit price of a line is copied from the menu item's current price at
// the moment of pricing (snapshot semantics), with the round-half-up rule at
// two fractional digits applied to the line total. The order aggregate sums
// the priced lines into its subtotal and total itself.
type PricingEngine struct{}

// NewPricingEngine creates a PricingEngine.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// PriceLine prices one order line against a menu item. The unit price is the
// menu item's price at call time; the total is unit price times quantity.
// Quantity below 1 is rejected.
func (PricingEngine) PriceLine(item *menu.MenuItem, quantity int) (unitPrice, totalPrice kernel.Money, err error) {
	if err = item.Validate(); err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}
	if quantity < 1 {
		return kernel.Money{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is less than 1", quantity))
	}

	unitPrice = item.Price()
	return unitPrice, unitPrice.MulQuantity(quantity), nil
}
