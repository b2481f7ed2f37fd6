package memory_test

import (
	"context"
	"testing"
	"time"

	"decoflow/internal/adapters/out/memory"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/ports"
	"decoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

func newLead(t *testing.T, number string) *order.Order {
	t.Helper()
	o, err := order.NewLead(kernel.NewUUID(), number, order.Customer{Name: "Acme"}, order.LeadInfo{}, "dana", createdAt)
	require.NoError(t, err)
	return o
}

func TestOrderRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	repo := memory.NewOrderRepository(store)
	o := newLead(t, "LEAD-0001")

	require.NoError(t, repo.Add(ctx, o))

	got, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, o.Snapshot(), got.Snapshot())
	assert.Equal(t, 1, store.Len())

	byNumber, err := repo.GetByNumber(ctx, "lead-0001")
	require.NoError(t, err)
	assert.True(t, byNumber.IsEqual(o))
}

func TestOrderRepository_Add_Duplicates(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())
	o := newLead(t, "LEAD-0001")
	require.NoError(t, repo.Add(ctx, o))

	err := repo.Add(ctx, o)
	require.ErrorIs(t, err, errs.ErrDuplicate)

	err = repo.Add(ctx, newLead(t, "LEAD-0001"))
	require.ErrorIs(t, err, errs.ErrDuplicate)
	assert.Contains(t, err.Error(), "orderNumber")
}

func TestOrderRepository_Get_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())

	_, err := repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = repo.GetByNumber(ctx, "LEAD-9999")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = repo.Get(ctx, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestOrderRepository_Update_NotFound(t *testing.T) {
	repo := memory.NewOrderRepository(memory.NewStore())

	err := repo.Update(t.Context(), newLead(t, "LEAD-0001"))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderRepository_ReturnsIndependentCopies(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())
	o := newLead(t, "LEAD-0001")
	require.NoError(t, repo.Add(ctx, o))

	loaded, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	notes := "changed"
	require.NoError(t, loaded.UpdateDetails(order.Details{Notes: &notes}, "dana", createdAt))

	again, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Empty(t, again.Notes())
}

func TestOrderRepository_List(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewOrderRepository(memory.NewStore())

	first := newLead(t, "LEAD-0001")
	second := newLead(t, "LEAD-0002")
	quote, err := order.NewQuote(kernel.NewUUID(), "1001", order.Customer{Name: "Beta"}, nil, nil, "dana", createdAt)
	require.NoError(t, err)
	require.NoError(t, quote.ArchiveAsDeadOpportunity("", "dana", createdAt))
	for _, o := range []*order.Order{first, second, quote} {
		require.NoError(t, repo.Add(ctx, o))
	}

	tests := []struct {
		name   string
		filter ports.OrderFilter
		want   []string
	}{
		{"active only", ports.OrderFilter{}, []string{"LEAD-0001", "LEAD-0002"}},
		{"with archived", ports.OrderFilter{IncludeArchived: true}, []string{"LEAD-0001", "LEAD-0002", "1001"}},
		{"archived only", ports.OrderFilter{ArchivedOnly: true}, []string{"1001"}},
		{"by status", ports.OrderFilter{Statuses: []order.Stage{order.Quote}, IncludeArchived: true}, []string{"1001"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			numbers := make([]string, 0, len(orders))
			for _, o := range orders {
				numbers = append(numbers, o.OrderNumber())
			}
			assert.Equal(t, tt.want, numbers)
		})
	}
}

func TestUnitOfWork_StagesUntilCommit(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(ctx))

	o := newLead(t, "LEAD-0001")
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	count, err := uow.OrderRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "staged writes are visible inside the unit of work")
	assert.Equal(t, 0, store.Len(), "staged writes are invisible outside")

	require.NoError(t, uow.Commit(ctx))
	assert.Equal(t, 1, store.Len())
	require.NoError(t, uow.Rollback(ctx), "rollback after commit is a no-op")
	assert.Equal(t, 1, store.Len())
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, newLead(t, "LEAD-0001")))

	require.NoError(t, uow.Rollback(ctx))

	assert.Equal(t, 0, store.Len())
	assert.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveTransaction)
}

func TestUnitOfWork_RemoveAllThenAdd(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	old := newLead(t, "LEAD-0001")
	require.NoError(t, memory.NewOrderRepository(store).Add(ctx, old))

	uow := memory.NewUnitOfWorkFactory(store).Create()
	require.NoError(t, uow.Begin(ctx))
	repo := uow.OrderRepository()
	require.NoError(t, repo.RemoveAll(ctx))
	replacement := newLead(t, "LEAD-0001")
	require.NoError(t, repo.Add(ctx, replacement), "the number is free once the store is cleared")

	_, err := memory.NewOrderRepository(store).Get(ctx, old.ID())
	require.NoError(t, err, "the clear is staged")

	require.NoError(t, uow.Commit(ctx))
	_, err = memory.NewOrderRepository(store).Get(ctx, old.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, 1, store.Len())
}

func TestOrderRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	repo := memory.NewOrderRepository(memory.NewStore())

	_, err := repo.List(ctx, ports.OrderFilter{})
	require.ErrorIs(t, err, context.Canceled)
}
