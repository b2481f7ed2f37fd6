package ports

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// OrderFilter narrows List. The zero value lists every order that is not
// archived.
type OrderFilter struct {
	// Statuses keeps only orders in one of the given stages. Empty means any.
	Statuses []order.Stage
	// IncludeArchived also returns soft and permanently archived orders.
	IncludeArchived bool
	// ArchivedOnly returns archived orders only.
	ArchivedOnly bool
}

// Matches reports whether o passes the filter.
func (f OrderFilter) Matches(o *order.Order) bool {
	switch {
	case f.ArchivedOnly && !o.IsArchived():
		return false
	case !f.ArchivedOnly && !f.IncludeArchived && o.IsArchived():
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, s := range f.Statuses {
		if o.Status() == s {
			return true
		}
	}
	return false
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. It returns a DuplicateError when the id or
	// the order number is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The aggregate's version
	// must already be bumped; stores that detect concurrent writers compare
	// the stored version with Version()-1 and return a ConflictError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its order number, or an
	// ObjectNotFoundError.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// List returns the orders passing filter, oldest first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Count returns the number of stored orders, archived ones included.
	Count(ctx context.Context) (int, error)

	// RemoveAll deletes every order. It is used only to replace the whole
	// store on import.
	RemoveAll(ctx context.Context) error
}
