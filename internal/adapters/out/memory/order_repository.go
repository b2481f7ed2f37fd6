package memory

import (
	"context"
	"strings"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/ports"
	"decoflow/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over a Store.
type OrderRepository struct {
	store *Store
	uow   *UnitOfWork
}

// NewOrderRepository returns a repository that writes straight to store.
// Query handlers use it for reads.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store, uow: &UnitOfWork{store: store}}
}

var _ ports.OrderRepository = (*OrderRepository)(nil)

// Add stores a new order. The id and the order number must be free.
func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snap := aggregate.Snapshot()
	for _, existing := range r.view() {
		if existing.ID == snap.ID {
			return errs.NewDuplicateError("id", snap.ID)
		}
		if strings.EqualFold(existing.OrderNumber, snap.OrderNumber) {
			return errs.NewDuplicateError("orderNumber", snap.OrderNumber)
		}
	}

	r.write(snap)
	return nil
}

// Update replaces a stored order. The in-memory store trusts the version the
// aggregate carries and performs no conflict check.
func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snap := aggregate.Snapshot()
	if _, ok := r.find(func(s order.Snapshot) bool { return s.ID == snap.ID }); !ok {
		return errs.NewObjectNotFoundError("order", snap.ID)
	}

	r.write(snap)
	return nil
}

// Get retrieves an order by id.
func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	snap, ok := r.find(func(s order.Snapshot) bool { return s.ID == id })
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return order.Restore(snap)
}

// GetByNumber retrieves an order by its order number, ignoring case.
func (r *OrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, ok := r.find(func(s order.Snapshot) bool { return strings.EqualFold(s.OrderNumber, number) })
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderNumber", number)
	}
	return order.Restore(snap)
}

// List returns the orders passing filter in insertion order.
func (r *OrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0)
	for _, snap := range r.view() {
		o, err := order.Restore(snap)
		if err != nil {
			return nil, err
		}
		if filter.Matches(o) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// Count returns the number of orders visible to this repository.
func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.view()), nil
}

// RemoveAll deletes every order.
func (r *OrderRepository) RemoveAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cs := r.uow.active; cs != nil {
		cs.cleared = true
		cs.writes = make(map[kernel.UUID]order.Snapshot)
		cs.order = nil
		return nil
	}
	r.store.apply(changeSet{cleared: true})
	return nil
}

func (r *OrderRepository) write(snap order.Snapshot) {
	if cs := r.uow.active; cs != nil {
		cs.put(snap)
		return
	}
	cs := changeSet{writes: map[kernel.UUID]order.Snapshot{snap.ID: snap}, order: []kernel.UUID{snap.ID}}
	r.store.apply(cs)
}

// view merges the committed orders with the staged writes.
func (r *OrderRepository) view() []order.Snapshot {
	cs := r.uow.active
	var base []order.Snapshot
	if cs == nil || !cs.cleared {
		base = r.store.snapshots()
	}
	if cs == nil {
		return base
	}

	out := make([]order.Snapshot, 0, len(base)+len(cs.writes))
	seen := make(map[kernel.UUID]bool, len(cs.writes))
	for _, snap := range base {
		if staged, ok := cs.writes[snap.ID]; ok {
			snap = staged
			seen[snap.ID] = true
		}
		out = append(out, snap)
	}
	for _, id := range cs.order {
		if !seen[id] {
			out = append(out, cs.writes[id])
		}
	}
	return out
}

func (r *OrderRepository) find(match func(order.Snapshot) bool) (order.Snapshot, bool) {
	for _, snap := range r.view() {
		if match(snap) {
			return snap, true
		}
	}
	return order.Snapshot{}, false
}
