package validation

import (
	"fmt"
	"strings"
	"time"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/pricing"
)

// Order validates an order record and everything nested in it.
func Order(s order.Snapshot) Result {
	r := newResult()

	if s.ID.IsZero() {
		r.errorf("id is required")
	}
	if strings.TrimSpace(s.OrderNumber) == "" {
		r.errorf("orderNumber is required")
	}
	if strings.TrimSpace(s.Customer) == "" {
		r.errorf("customer is required")
	}
	r.check("status", s.Status.Validate())
	r.check("artStatus", s.ArtStatus.Validate())
	if s.Version < 0 {
		r.errorf("version must not be negative, got %d", s.Version)
	}
	if s.CreatedAt.IsZero() {
		r.errorf("createdAt is required")
	}

	leadOriginated := s.Status == order.Lead || strings.HasPrefix(s.OrderNumber, "LEAD-")
	switch {
	case s.LeadInfo != nil:
		r.merge("leadInfo", LeadInfo(*s.LeadInfo))
	case leadOriginated:
		r.errorf("leadInfo is required for orders that started as a lead")
	}

	seen := make(map[kernel.UUID]struct{}, len(s.LineItems))
	for i, li := range s.LineItems {
		path := fmt.Sprintf("lineItems[%d]", i)
		r.merge(path, LineItem(li))
		if _, dup := seen[li.ID]; dup && !li.ID.IsZero() {
			r.errorf("%s: duplicate line item id %s", path, li.ID)
		}
		seen[li.ID] = struct{}{}
	}

	r.merge("prepStatus", PrepStatus(s.PrepStatus))
	r.merge("fulfillment", Fulfillment(s.Fulfillment))
	r.merge("invoiceStatus", Invoice(s.InvoiceStatus))
	r.merge("closeoutChecklist", Closeout(s.CloseoutChecklist))
	r.merge("artConfirmation", ArtConfirmation(s.ArtConfirmation))

	if s.IsPermanentlyArchived && !s.IsArchived {
		r.errorf("a permanently archived order must also be archived")
	}
	if s.IsArchived && s.ArchivedAt == nil {
		r.errorf("isArchived is true but archivedAt is missing")
	}
	if s.Status == order.Closed && s.ClosedAt == nil {
		r.errorf("closed orders need closedAt")
	}

	if s.Status != order.Lead {
		if s.DueDate == nil {
			r.warnf("dueDate is missing")
		}
		switch {
		case len(s.LineItems) > 0:
		case s.Status.Number() > order.Quote.Number():
			r.errorf("orders past Quote need at least one line item")
		default:
			r.warnf("order has no line items")
		}
	}
	if strings.TrimSpace(s.CustomerEmail) == "" {
		r.warnf("customerEmail is missing")
	}
	return r
}

// LineItem validates a single line item.
func LineItem(li order.LineItem) Result {
	r := newResult()

	if li.ID.IsZero() {
		r.errorf("id is required")
	}
	if strings.TrimSpace(li.Name) == "" {
		r.errorf("name is required")
	}
	if li.Qty <= 0 {
		r.errorf("qty must be greater than 0, got %d", li.Qty)
	}
	r.check("decorationType", li.DecorationType.Validate())
	if li.DecorationPlacements <= 0 {
		r.errorf("decorationPlacements must be greater than 0, got %d", li.DecorationPlacements)
	}
	if li.ScreenPrintColors < 0 {
		r.errorf("screenPrintColors must not be negative, got %d", li.ScreenPrintColors)
	}
	r.check("stitchCountTier", li.StitchCountTier.Validate())
	r.check("dtfSize", li.DTFSize.Validate())
	if li.Cost.IsNegative() {
		r.errorf("cost must not be negative, got %s", li.Cost)
	}
	if li.Price.IsNegative() {
		r.errorf("price must not be negative, got %s", li.Price)
	}
	if li.IsPlusSize != pricing.IsPlusSize(li.Size) {
		r.errorf("isPlusSize does not match size %q", li.Size)
	}

	pairFlag(&r, "ordered", li.Ordered, li.OrderedAt)
	pairFlag(&r, "received", li.Received, li.ReceivedAt)
	pairFlag(&r, "decorated", li.Decorated, li.DecoratedAt)
	pairFlag(&r, "packed", li.Packed, li.PackedAt)
	if li.Packed && !li.Decorated {
		r.errorf("packed requires decorated")
	}

	if r.Valid() {
		if want, err := pricing.UnitPrice(li.Input().PricingInput()); err == nil && !want.Equal(li.Price) {
			r.warnf("price %s differs from computed price %s", li.Price.StringFixed(2), want.StringFixed(2))
		}
	}
	return r
}

// LeadInfo validates lead qualification data.
func LeadInfo(l order.LeadInfo) Result {
	r := newResult()
	r.check("source", l.Source.Validate())
	r.check("temperature", l.Temperature.Validate())
	if l.EstimatedValue.IsNegative() {
		r.errorf("estimatedValue must not be negative, got %s", l.EstimatedValue)
	}
	return r
}

// PrepStatus validates the production-prep checklist.
func PrepStatus(p order.PrepStatus) Result {
	r := newResult()
	pairFlag(&r, "gangSheetCreated", p.GangSheetCreated, p.GangSheetCreatedAt)
	pairFlag(&r, "digitizingComplete", p.DigitizingComplete, p.DigitizingCompleteAt)
	pairFlag(&r, "screensBurned", p.ScreensBurned, p.ScreensBurnedAt)
	return r
}

// Fulfillment validates the fulfillment checklist.
func Fulfillment(f order.FulfillmentStatus) Result {
	r := newResult()
	pairFlag(&r, "shippingLabelPrinted", f.ShippingLabelPrinted, f.ShippingLabelPrintedAt)
	pairFlag(&r, "customerPickedUp", f.CustomerPickedUp, f.CustomerPickedUpAt)
	return r
}

// Invoice validates the invoice checklist.
func Invoice(i order.InvoiceStatus) Result {
	r := newResult()
	pairFlag(&r, "invoiceCreated", i.InvoiceCreated, i.InvoiceCreatedAt)
	pairFlag(&r, "invoiceSent", i.InvoiceSent, i.InvoiceSentAt)
	if i.PaymentReceived != nil {
		pairFlag(&r, "paymentReceived", *i.PaymentReceived, i.PaymentReceivedAt)
	}
	return r
}

// Closeout validates the closeout checklist. It has no timestamps, so the
// Go types already guarantee everything there is to check.
func Closeout(order.CloseoutChecklist) Result {
	return newResult()
}

// pairFlag reports a true flag without its timestamp.
func pairFlag(r *Result, name string, flag bool, at *time.Time) {
	if flag && (at == nil || at.IsZero()) {
		r.errorf("%s is true but %sAt is missing", name, name)
	}
}
