package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/dining"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"
)

// ReferenceResolver checks foreign references inside the transaction that
// uses them. A target that does not exist, is soft deleted, or is
// deactivated resolves to an object-not-found error, so callers never
// attach an order to a record that a reader would not see.
type ReferenceResolver struct {
	repos CatalogRepoFactory
}

func NewReferenceResolver(repos CatalogRepoFactory) (ReferenceResolver, error) {
	if repos == nil {
		return ReferenceResolver{}, errs.NewValueIsRequiredError("repos")
	}
	return ReferenceResolver{repos: repos}, nil
}

func (r ReferenceResolver) ResolveCustomer(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	aggregate, err := r.repos.CustomerRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !aggregate.IsActive() {
		return nil, errs.NewObjectNotFoundError("customer", id)
	}
	return aggregate, nil
}

func (r ReferenceResolver) ResolveTable(ctx context.Context, id kernel.UUID) (*dining.Table, error) {
	aggregate, err := r.repos.TableRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !aggregate.IsActive() {
		return nil, errs.NewObjectNotFoundError("table", id)
	}
	return aggregate, nil
}

// ResolveServer resolves a staff member for order assignment. Staff marked
// inactive cannot serve orders; staff on leave still can.
func (r ReferenceResolver) ResolveServer(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	aggregate, err := r.repos.StaffRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if aggregate.Status() == staff.StatusInactive {
		return nil, errs.NewObjectNotFoundError("staff", id)
	}
	return aggregate, nil
}

func (r ReferenceResolver) ResolveMenuItem(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	aggregate, err := r.repos.MenuItemRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !aggregate.IsActive() {
		return nil, errs.NewObjectNotFoundError("menu item", id)
	}
	return aggregate, nil
}

func (r ReferenceResolver) ResolveCategory(ctx context.Context, id kernel.UUID) (*menu.Category, error) {
	aggregate, err := r.repos.CategoryRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !aggregate.IsActive() {
		return nil, errs.NewObjectNotFoundError("category", id)
	}
	return aggregate, nil
}

// IsNotFound reports whether err is an object-not-found resolution failure.
func IsNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}
