package menu

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// ItemStatus represents the availability of a menu item.
type ItemStatus int

const (
	// ItemStatusUnknown is the invalid zero value.
	ItemStatusUnknown ItemStatus = iota

	// ItemStatusAvailable means the item can be ordered.
	ItemStatusAvailable

	// ItemStatusUnavailable means the item is temporarily not offered.
	ItemStatusUnavailable

	// ItemStatusOutOfStock means the kitchen cannot currently prepare the item.
	ItemStatusOutOfStock
)

func itemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusAvailable:   "available",
		ItemStatusUnavailable: "unavailable",
		ItemStatusOutOfStock:  "out_of_stock",
	}
}

// ParseItemStatus converts the wire representation ("available",
// "unavailable", "out_of_stock") into an ItemStatus.
func ParseItemStatus(s string) (ItemStatus, error) {
	for status, str := range itemStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"menu item status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects ItemStatusUnknown and any out-of-range value.
func (s ItemStatus) Validate() error {
	if _, ok := itemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"menu item status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s ItemStatus) String() string {
	if str, ok := itemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
