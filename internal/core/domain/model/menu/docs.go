// Package menu provides the catalog side of the restaurant domain: categories
// and the menu items they own.
//
// The package includes:
//   - Category: a named grouping of menu items
//   - MenuItem: a priced item belonging to exactly one category
//   - ItemStatus: availability state of a menu item
//
// Key business rules:
//   - Names are 1 to 100 characters
//   - Prices are non-negative with two fractional digits
//   - A menu item always references an existing, active category; the check is
//     performed by the write path that creates or recategorizes the item
//   - A menu item's price is copied into order lines at order time, so price
//     changes here never alter historical orders
package menu
