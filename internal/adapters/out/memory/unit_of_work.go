package memory

import (
	"context"
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit without a preceding Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork with an empty change set.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// changeSet is the staged state of a unit of work.
type changeSet struct {
	cleared bool
	writes  map[kernel.UUID]order.Snapshot
	// order keeps first-write order so new orders get stable positions.
	order []kernel.UUID
}

func (cs *changeSet) put(snap order.Snapshot) {
	if _, ok := cs.writes[snap.ID]; !ok {
		cs.order = append(cs.order, snap.ID)
	}
	cs.writes[snap.ID] = snap
}

// UnitOfWork stages writes until Commit. Without Begin, repository writes go
// straight to the store.
type UnitOfWork struct {
	store  *Store
	active *changeSet
}

// Begin starts staging. Calling it twice keeps the first change set.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active != nil {
		return nil
	}
	uow.active = &changeSet{writes: make(map[kernel.UUID]order.Snapshot)}
	return nil
}

// Commit applies the staged writes atomically.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.active == nil {
		return ErrNoActiveTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	uow.store.apply(*uow.active)
	uow.active = nil
	return nil
}

// Rollback discards the staged writes. It is a no-op after Commit.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	uow.active = nil
	return nil
}

// OrderRepository returns a repository that reads through the staged writes.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store, uow: uow}
}
