package order_test

import (
	"testing"
	"time"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/pricing"
	"decoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Advance_QuoteGate(t *testing.T) {
	o := newQuote(t)

	err := o.Advance(order.AdvanceOptions{}, actor, tick(1))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "at least one line item")
	assert.Equal(t, order.Quote, o.Status())
	assert.Len(t, o.History(), 1)

	item := shirt(pricing.ScreenPrint)
	item.Qty = 1
	_, err = o.AddLineItem(item, actor, tick(2))
	require.NoError(t, err)

	err = o.Advance(order.AdvanceOptions{}, actor, tick(3))

	require.NoError(t, err)
	assert.Equal(t, order.Approval, o.Status())
	last := o.History()[len(o.History())-1]
	assert.Equal(t, order.ActionStatusChanged, last.Action)
	assert.Equal(t, "Quote", last.PreviousValue)
	assert.Equal(t, "Approval", last.NewValue)
	assert.Equal(t, tick(3), o.UpdatedAt())
}

func TestOrder_AdvanceTo_OnlyNextStage(t *testing.T) {
	o := newQuote(t, shirt(pricing.ScreenPrint))

	err := o.AdvanceTo(order.ArtConfirmation, order.AdvanceOptions{}, actor, now)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "the next stage is Approval")
	assert.Equal(t, order.Quote, o.Status())

	require.NoError(t, o.AdvanceTo(order.Approval, order.AdvanceOptions{}, actor, now))
}

func TestOrder_Advance_LeadConversion(t *testing.T) {
	event := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	o, err := order.NewLead(kernel.NewUUID(), "LEAD-0002", customer(), order.LeadInfo{EventDate: &event}, actor, now)
	require.NoError(t, err)

	err = o.Advance(order.AdvanceOptions{}, actor, tick(1))

	require.NoError(t, err)
	assert.Equal(t, order.Quote, o.Status())
	require.NotNil(t, o.DueDate())
	assert.Equal(t, event, *o.DueDate())
	require.NotNil(t, o.LeadInfo())
	assert.Equal(t, tick(1), *o.LeadInfo().ConvertedAt)
}

func TestOrder_Advance_Gates(t *testing.T) {
	tests := []struct {
		name    string
		stage   order.Stage
		reason  string
		satisfy func(t *testing.T, o *order.Order)
	}{
		{
			name:   "inventory order needs every item ordered",
			stage:  order.InventoryOrder,
			reason: "every line item must be ordered (0 of 2)",
		},
		{
			name:   "production prep needs applicable prep flags",
			stage:  order.ProductionPrep,
			reason: "prep incomplete: gang sheet, screens",
		},
		{
			name:   "inventory received needs every item received",
			stage:  order.InventoryReceived,
			reason: "every line item must be received",
		},
		{
			name:   "production needs decorated and packed",
			stage:  order.Production,
			reason: "every line item must be decorated and packed",
		},
		{
			name:   "fulfillment needs label or pickup",
			stage:  order.Fulfillment,
			reason: "shipping label or record the customer pickup",
			satisfy: func(t *testing.T, o *order.Order) {
				_, err := o.SetChecklistFlag(order.FlagCustomerPickedUp, true, now)
				require.NoError(t, err)
			},
		},
		{
			name:   "invoice needs created and sent",
			stage:  order.Invoice,
			reason: "the invoice must be created and sent",
		},
		{
			name:   "closeout needs housekeeping",
			stage:  order.Closeout,
			reason: "closeout incomplete: files saved, canva archived, summary uploaded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newQuote(t, shirt(pricing.ScreenPrint), shirt(pricing.DTF))
			driveTo(t, o, tt.stage)
			historyLen := len(o.History())

			err := o.Advance(order.AdvanceOptions{}, actor, now)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Contains(t, err.Error(), tt.reason)
			assert.Equal(t, tt.stage, o.Status())
			assert.Len(t, o.History(), historyLen)
			assert.Error(t, o.CanAdvance(order.AdvanceOptions{}))

			if tt.satisfy != nil {
				tt.satisfy(t, o)
			} else {
				satisfyGate(t, o)
			}
			require.NoError(t, o.CanAdvance(order.AdvanceOptions{}))
			require.NoError(t, o.Advance(order.AdvanceOptions{}, actor, now))
		})
	}
}

func TestOrder_Advance_PrepNotNeeded(t *testing.T) {
	o := newQuote(t, shirt(pricing.OtherDecoration))
	driveTo(t, o, order.ProductionPrep)

	err := o.Advance(order.AdvanceOptions{}, actor, now)

	require.NoError(t, err)
	assert.Equal(t, order.InventoryReceived, o.Status())
}

func TestOrder_Advance_ArtPendingDivergence(t *testing.T) {
	o := newQuote(t, shirt(pricing.ScreenPrint))
	driveTo(t, o, order.ArtConfirmation)
	_, err := o.AddArtPlacement(art.PlacementInput{Location: "Front Center"}, actor, now)
	require.NoError(t, err)
	require.Equal(t, art.InProgress, o.ArtConfirmation().OverallStatus)
	require.Equal(t, order.ArtInProgress, o.ArtStatus())

	err = o.Advance(order.AdvanceOptions{}, actor, tick(1))
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "advance with art pending")

	err = o.Advance(order.AdvanceOptions{WithArtPending: true}, actor, tick(2))

	require.NoError(t, err)
	assert.Equal(t, order.InventoryOrder, o.Status())
	assert.Equal(t, order.ArtPending, o.ArtStatus())
	assert.Equal(t, art.InProgress, o.ArtConfirmation().OverallStatus)
	last := o.History()[len(o.History())-1]
	assert.Contains(t, last.Note, "art approval pending")

	_, err = o.AddArtPlacement(art.PlacementInput{Location: "Back"}, actor, tick(3))
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, art.InProgress, o.ArtConfirmation().OverallStatus)
}

func TestOrder_Advance_ArtApprovedStampsArtStatus(t *testing.T) {
	o := newQuote(t, shirt(pricing.ScreenPrint))
	driveTo(t, o, order.ArtConfirmation)
	p, err := o.AddArtPlacement(art.PlacementInput{Location: "Front"}, actor, now)
	require.NoError(t, err)
	pr, err := o.AddArtProof(p.ID, art.ProofInput{}, actor, now)
	require.NoError(t, err)
	require.NoError(t, o.SendArtProof(p.ID, pr.ID, actor, now))
	_, err = o.ApproveArtProof(p.ID, pr.ID, actor, now)
	require.NoError(t, err)

	err = o.Advance(order.AdvanceOptions{WithArtPending: true}, actor, now)

	require.NoError(t, err)
	assert.Equal(t, order.ArtApproved, o.ArtStatus())
}

func TestOrder_Close(t *testing.T) {
	o := newQuote(t, shirt(pricing.Embroidery))

	driveTo(t, o, order.Closed)

	assert.Equal(t, order.Closed, o.Status())
	require.NotNil(t, o.ClosedAt())
	assert.Equal(t, order.ClosedReasonCompleted, o.ClosedReason())
	assert.Equal(t, "Closeout", o.ReopenedFrom())
	assert.False(t, o.IsArchived())

	err := o.Advance(order.AdvanceOptions{}, actor, now)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	err = o.AdvanceTo(order.Closed, order.AdvanceOptions{}, actor, now)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	_, err = o.AddLineItem(shirt(pricing.DTF), actor, now)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestOrder_MoveBack(t *testing.T) {
	t.Run("should step back without clearing flags", func(t *testing.T) {
		o := newQuote(t, shirt(pricing.ScreenPrint))
		driveTo(t, o, order.ProductionPrep)
		require.True(t, o.LineItems()[0].Ordered)

		err := o.MoveBack(actor, tick(1))

		require.NoError(t, err)
		assert.Equal(t, order.InventoryOrder, o.Status())
		assert.True(t, o.LineItems()[0].Ordered)
		last := o.History()[len(o.History())-1]
		assert.Equal(t, order.ActionMovedBack, last.Action)
		assert.Equal(t, "Production Prep", last.PreviousValue)
	})

	t.Run("should ignore gates", func(t *testing.T) {
		o := newQuote(t)
		require.NoError(t, o.MoveBack(actor, now))
		assert.Equal(t, order.Lead, o.Status())
	})

	t.Run("should reject lead and closed", func(t *testing.T) {
		lead := newLead(t)
		assert.ErrorIs(t, lead.MoveBack(actor, now), errs.ErrInvalidTransition)

		closed := newQuote(t, shirt(pricing.DTF))
		driveTo(t, closed, order.Closed)
		assert.ErrorIs(t, closed.MoveBack(actor, now), errs.ErrInvalidTransition)
	})
}

func TestOrder_Reopen(t *testing.T) {
	t.Run("round trip to production", func(t *testing.T) {
		o := newQuote(t, shirt(pricing.ScreenPrint))
		driveTo(t, o, order.Closed)
		itemsBefore := o.LineItems()
		historyBefore := len(o.History())

		err := o.Reopen(order.Production, actor, tick(5))

		require.NoError(t, err)
		assert.Equal(t, order.Production, o.Status())
		assert.Nil(t, o.ClosedAt())
		assert.Empty(t, o.ClosedReason())
		assert.Empty(t, o.ReopenedFrom())
		assert.Equal(t, itemsBefore, o.LineItems())

		history := o.History()
		require.Len(t, history, historyBefore+1)
		reopened := 0
		for _, h := range history {
			if h.Action == order.ActionReopened {
				reopened++
			}
		}
		assert.Equal(t, 1, reopened)
		assert.Equal(t, "Production", history[len(history)-1].NewValue)
	})

	t.Run("should clear the soft archive", func(t *testing.T) {
		o := newQuote(t, shirt(pricing.ScreenPrint))
		driveTo(t, o, order.Closed)
		require.NoError(t, o.Archive(actor, now))
		require.True(t, o.IsArchived())

		require.NoError(t, o.Reopen(order.Invoice, actor, now))

		assert.False(t, o.IsArchived())
		assert.Nil(t, o.ArchivedAt())
	})

	t.Run("should reject open orders and lead target", func(t *testing.T) {
		o := newQuote(t, shirt(pricing.ScreenPrint))
		assert.ErrorIs(t, o.Reopen(order.Approval, actor, now), errs.ErrInvalidTransition)

		driveTo(t, o, order.Closed)
		assert.ErrorIs(t, o.Reopen(order.Lead, actor, now), errs.ErrInvalidTransition)
		assert.Equal(t, order.Closed, o.Status())
	})
}

func TestOrder_Archive(t *testing.T) {
	o := newQuote(t, shirt(pricing.ScreenPrint))
	assert.ErrorIs(t, o.Archive(actor, now), errs.ErrInvalidTransition)

	driveTo(t, o, order.Closed)
	require.NoError(t, o.Archive(actor, tick(1)))

	assert.True(t, o.IsArchived())
	assert.Equal(t, tick(1), *o.ArchivedAt())
	assert.ErrorIs(t, o.Archive(actor, tick(2)), errs.ErrInvalidTransition)
}

func TestOrder_ArchiveAsDeadOpportunity(t *testing.T) {
	t.Run("should archive quote and keep line items", func(t *testing.T) {
		o := newQuote(t, shirt(pricing.ScreenPrint))
		items := o.LineItems()

		err := o.ArchiveAsDeadOpportunity("went with another shop", actor, tick(1))

		require.NoError(t, err)
		assert.True(t, o.IsArchived())
		assert.Equal(t, order.Quote, o.Status())
		assert.Equal(t, order.ClosedReasonDeadOpportunity, o.ClosedReason())
		assert.Equal(t, items, o.LineItems())
		assert.Equal(t, "went with another shop", o.History()[len(o.History())-1].Note)
	})

	t.Run("is one-way", func(t *testing.T) {
		o := newQuote(t, shirt(pricing.ScreenPrint))
		require.NoError(t, o.ArchiveAsDeadOpportunity("", actor, now))

		assert.ErrorIs(t, o.ArchiveAsDeadOpportunity("", actor, now), errs.ErrInvalidTransition)
		assert.ErrorIs(t, o.Advance(order.AdvanceOptions{}, actor, now), errs.ErrInvalidTransition)
		assert.ErrorIs(t, o.MoveBack(actor, now), errs.ErrInvalidTransition)
		assert.ErrorIs(t, o.Reopen(order.Quote, actor, now), errs.ErrInvalidTransition)
	})

	t.Run("only from quote", func(t *testing.T) {
		o := newLead(t)

		err := o.ArchiveAsDeadOpportunity("", actor, now)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.False(t, o.IsArchived())
	})
}

func TestOrder_PermanentlyArchive(t *testing.T) {
	o := newQuote(t, shirt(pricing.ScreenPrint))

	require.NoError(t, o.PermanentlyArchive(actor, tick(1)))

	assert.True(t, o.IsPermanentlyArchived())
	assert.True(t, o.IsArchived())
	assert.ErrorIs(t, o.PermanentlyArchive(actor, now), errs.ErrInvalidTransition)
	assert.ErrorIs(t, o.Advance(order.AdvanceOptions{}, actor, now), errs.ErrInvalidTransition)
	_, err := o.SetChecklistFlag(order.FlagFilesSaved, true, now)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	notes := "x"
	assert.ErrorIs(t, o.UpdateDetails(order.Details{Notes: &notes}, actor, now), errs.ErrInvalidTransition)
}
