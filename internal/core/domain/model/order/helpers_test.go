package order_test

import (
	"testing"
	"time"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const actor = "Dana"

var now = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

func tick(n int) time.Time {
	return now.Add(time.Duration(n) * time.Hour)
}

func customer() order.Customer {
	return order.Customer{Name: "Riverside Soccer Club", Email: "coach@riverside.example", Phone: "555-0101"}
}

func shirt(decoration pricing.DecorationType) order.LineItemInput {
	in := order.LineItemInput{
		ItemNumber:           "G500",
		Name:                 "Heavy Cotton Tee",
		Color:                "Navy",
		Size:                 "L",
		Qty:                  24,
		DecorationType:       decoration,
		DecorationPlacements: 1,
		Cost:                 decimal.NewFromInt(10),
	}
	switch decoration {
	case pricing.ScreenPrint:
		in.ScreenPrintColors = 2
	case pricing.Embroidery:
		in.StitchCountTier = pricing.StitchesUnder8k
	case pricing.DTF:
		in.DTFSize = pricing.DTFStandard
	case pricing.OtherDecoration, pricing.UnknownDecoration:
	}
	return in
}

func newQuote(t *testing.T, items ...order.LineItemInput) *order.Order {
	t.Helper()
	o, err := order.NewQuote(kernel.NewUUID(), "1001", customer(), items, nil, actor, now)
	require.NoError(t, err)
	return o
}

func newLead(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewLead(kernel.NewUUID(), "LEAD-0001", customer(), order.LeadInfo{
		Source:         order.SourceReferral,
		Temperature:    order.Hot,
		EstimatedValue: decimal.NewFromInt(1500),
	}, actor, now)
	require.NoError(t, err)
	return o
}

// satisfyGate makes the gate of the current stage hold.
func satisfyGate(t *testing.T, o *order.Order) {
	t.Helper()
	setItems := func(flags ...order.ProductionFlag) {
		for _, li := range o.LineItems() {
			for _, f := range flags {
				_, err := o.SetLineItemProgress(li.ID, f, true, now)
				require.NoError(t, err)
			}
		}
	}
	setFlags := func(flags ...order.ChecklistFlag) {
		for _, f := range flags {
			_, err := o.SetChecklistFlag(f, true, now)
			require.NoError(t, err)
		}
	}

	switch o.Status() {
	case order.Quote:
		if len(o.LineItems()) == 0 {
			_, err := o.AddLineItem(shirt(pricing.ScreenPrint), actor, now)
			require.NoError(t, err)
		}
	case order.ArtConfirmation:
		if o.ArtConfirmation().OverallStatus != art.Approved {
			require.NoError(t, o.RecordFinalArtApproval("Coach Kim", "Email", now, actor, now))
		}
	case order.InventoryOrder:
		setItems(order.FlagOrdered)
	case order.ProductionPrep:
		setFlags(order.FlagGangSheetCreated, order.FlagDigitizingComplete, order.FlagScreensBurned)
	case order.InventoryReceived:
		setItems(order.FlagReceived)
	case order.Production:
		setItems(order.FlagDecorated, order.FlagPacked)
	case order.Fulfillment:
		setFlags(order.FlagShippingLabelPrinted)
	case order.Invoice:
		setFlags(order.FlagInvoiceCreated, order.FlagInvoiceSent)
	case order.Closeout:
		setFlags(order.FlagFilesSaved, order.FlagCanvaArchived, order.FlagSummaryUploaded)
	default:
	}
}

// driveTo advances o until it reaches target, satisfying every gate on the way.
func driveTo(t *testing.T, o *order.Order, target order.Stage) {
	t.Helper()
	for o.Status() != target {
		satisfyGate(t, o)
		require.NoError(t, o.Advance(order.AdvanceOptions{}, actor, now))
	}
}
