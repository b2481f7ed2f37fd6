package commands_test

import (
	"context"
	"testing"
	"time"

	"decoflow/internal/adapters/out/memory"
	"decoflow/internal/core/application/usecases/commands"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const actor = "dana"

var now = time.Date(2026, 4, 6, 10, 30, 0, 0, time.UTC)

func clock() kernel.Clock {
	return kernel.FixedClock(now)
}

func tee(decoration pricing.DecorationType) order.LineItemInput {
	in := order.LineItemInput{
		ItemNumber:           "G500",
		Name:                 "Heavy Cotton Tee",
		Color:                "Black",
		Size:                 "L",
		Qty:                  12,
		DecorationType:       decoration,
		DecorationPlacements: 1,
		Cost:                 decimal.NewFromInt(5),
	}
	switch decoration {
	case pricing.ScreenPrint:
		in.ScreenPrintColors = 1
	case pricing.Embroidery:
		in.StitchCountTier = pricing.Stitches8kTo12k
	case pricing.DTF:
		in.DTFSize = pricing.DTFStandard
	case pricing.OtherDecoration, pricing.UnknownDecoration:
	}
	return in
}

// memoryUoWFactory adapts the in-memory store to the command handlers.
type memoryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

type fixture struct {
	store   *memory.Store
	factory commands.OrderUoWFactory
}

func newFixture() fixture {
	store := memory.NewStore()
	return fixture{
		store:   store,
		factory: memoryUoWFactory{factory: memory.NewUnitOfWorkFactory(store)},
	}
}

func (f fixture) get(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := memory.NewOrderRepository(f.store).Get(context.Background(), id)
	require.NoError(t, err)
	return o
}

func (f fixture) createQuote(t *testing.T, items ...order.LineItemInput) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateQuoteCommand(kernel.NewUUID(), "", order.Customer{Name: "Acme", Email: "ops@acme.test"}, items, &now, actor)
	require.NoError(t, err)
	h := commands.NewCreateOrderCommandHandler(f.factory, clock())
	created, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)
	return created
}

func (f fixture) advance(t *testing.T, id kernel.UUID, withArtPending bool) (*order.Order, error) {
	t.Helper()
	cmd, err := commands.NewAdvanceOrderCommand(id, nil, withArtPending, "", actor)
	require.NoError(t, err)
	h := commands.NewAdvanceOrderCommandHandler(f.factory, clock())
	return h.Handle(context.Background(), cmd)
}

func (f fixture) checklist(t *testing.T, id kernel.UUID, flags ...order.ChecklistFlag) {
	t.Helper()
	h := commands.NewUpdateChecklistCommandHandler(f.factory, clock())
	for _, flag := range flags {
		cmd, err := commands.NewUpdateChecklistCommand(id, flag, true)
		require.NoError(t, err)
		_, err = h.Handle(context.Background(), cmd)
		require.NoError(t, err)
	}
}

func (f fixture) progress(t *testing.T, o *order.Order, flag order.ProductionFlag) {
	t.Helper()
	h := commands.NewUpdateLineItemProgressCommandHandler(f.factory, clock())
	for _, li := range o.LineItems() {
		cmd, err := commands.NewUpdateLineItemProgressCommand(o.ID(), li.ID, flag, true)
		require.NoError(t, err)
		_, err = h.Handle(context.Background(), cmd)
		require.NoError(t, err)
	}
}
