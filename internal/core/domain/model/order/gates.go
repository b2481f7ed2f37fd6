package order

import (
	"fmt"
	"strings"

	"decoflow/internal/core/domain/model/art"
)

// gateFailure returns the reason the current stage may not be left, or an
// empty string when the gate holds.
func (o *Order) gateFailure(opts AdvanceOptions) string {
	switch o.status {
	case Lead, Approval:
		return ""
	case Quote:
		if len(o.lineItems) == 0 {
			return "add at least one line item before leaving Quote"
		}
	case ArtConfirmation:
		if o.artConf.OverallStatus() != art.Approved && !opts.WithArtPending {
			return fmt.Sprintf("art is %s; approve every placement or advance with art pending",
				o.artConf.OverallStatus())
		}
	case InventoryOrder:
		if n := o.countItems(func(li LineItem) bool { return li.Ordered }); n < len(o.lineItems) {
			return fmt.Sprintf("every line item must be ordered (%d of %d)", n, len(o.lineItems))
		}
	case ProductionPrep:
		if missing := o.missingPrep(); len(missing) > 0 {
			return "prep incomplete: " + strings.Join(missing, ", ")
		}
	case InventoryReceived:
		if n := o.countItems(func(li LineItem) bool { return li.Received }); n < len(o.lineItems) {
			return fmt.Sprintf("every line item must be received (%d of %d)", n, len(o.lineItems))
		}
	case Production:
		if n := o.countItems(func(li LineItem) bool { return li.Decorated && li.Packed }); n < len(o.lineItems) {
			return fmt.Sprintf("every line item must be decorated and packed (%d of %d)", n, len(o.lineItems))
		}
	case Fulfillment:
		if !o.fulfillment.ShippingLabelPrinted && !o.fulfillment.CustomerPickedUp {
			return "print a shipping label or record the customer pickup"
		}
	case Invoice:
		if !o.invoice.InvoiceCreated || !o.invoice.InvoiceSent {
			return "the invoice must be created and sent"
		}
	case Closeout:
		if missing := o.missingCloseout(); len(missing) > 0 {
			return "closeout incomplete: " + strings.Join(missing, ", ")
		}
	case Closed, UnknownStage:
		return "closed orders can only be reopened"
	}
	return ""
}

func (o *Order) countItems(pred func(LineItem) bool) int {
	n := 0
	for _, li := range o.lineItems {
		if pred(li) {
			n++
		}
	}
	return n
}

func (o *Order) missingPrep() []string {
	req := o.PrepRequirements()
	var missing []string
	if req.GangSheet && !o.prep.GangSheetCreated {
		missing = append(missing, "gang sheet")
	}
	if req.Digitizing && !o.prep.DigitizingComplete {
		missing = append(missing, "digitizing")
	}
	if req.Screens && !o.prep.ScreensBurned {
		missing = append(missing, "screens")
	}
	return missing
}

func (o *Order) missingCloseout() []string {
	var missing []string
	if !o.closeout.FilesSaved {
		missing = append(missing, "files saved")
	}
	if !o.closeout.CanvaArchived {
		missing = append(missing, "canva archived")
	}
	if !o.closeout.SummaryUploaded {
		missing = append(missing, "summary uploaded")
	}
	return missing
}
