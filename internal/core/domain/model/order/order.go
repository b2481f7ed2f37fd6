package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/pricing"
	"decoflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewLead, NewQuote or Restore.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewLead, NewQuote or Restore")
)

const (
	// ClosedReasonCompleted is stamped when an order leaves Closeout.
	ClosedReasonCompleted = "Completed"
	// ClosedReasonDeadOpportunity is stamped when a quote is abandoned.
	ClosedReasonDeadOpportunity = "Dead Opportunity"
)

// Customer holds the contact fields of an order. Only Name is required.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

func (c Customer) normalized() Customer {
	return Customer{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Company: strings.TrimSpace(c.Company),
	}
}

// Order is the aggregate root of the decoration workflow. It owns the stage,
// the line items, the per-stage checklists, the art confirmation and the
// audit history.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Must have a customer name
//   - Stage changes go through Advance, MoveBack, Reopen and the archive
//     operations only, and each of them is recorded in the history
//   - Leads carry LeadInfo, and it is never cleared afterwards
//   - A permanently archived order rejects every mutation
//
// All mutating methods take the acting user and the time of the change so
// that the aggregate stays deterministic under test.
type Order struct {
	id          kernel.UUID
	orderNumber string
	status      Stage
	artStatus   ArtStatus
	customer    Customer
	lineItems   []LineItem
	leadInfo    *LeadInfo
	prep        PrepStatus
	fulfillment FulfillmentStatus
	invoice     InvoiceStatus
	closeout    CloseoutChecklist
	artConf     *art.Confirmation
	history     []HistoryEntry
	version     int
	dueDate     *time.Time
	notes       string

	isArchived            bool
	archivedAt            *time.Time
	isPermanentlyArchived bool
	closedAt              *time.Time
	closedReason          string
	reopenedFrom          string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewLead creates an order in the Lead stage. Leads have no line items yet.
//
// Parameters:
//   - id: unique identifier of the order
//   - number: human-readable order number, usually LEAD-<n>
//   - customer: contact fields, Name is required
//   - lead: qualification data; empty source and temperature default to
//     Other and Warm
//   - actor, at: recorded in the history
func NewLead(id kernel.UUID, number string, customer Customer, lead LeadInfo, actor string, at time.Time) (*Order, error) {
	o := newOrder(Lead)
	lead = lead.withDefaults()

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		lead.Validate(),
	); err != nil {
		return nil, err
	}
	lead = lead.clone()
	o.leadInfo = &lead
	o.stampCreated(actor, at)
	return o, nil
}

// NewQuote creates an order directly in the Quote stage.
//
// Line items are optional here; the Quote gate requires at least one before
// the order can advance.
func NewQuote(
	id kernel.UUID,
	number string,
	customer Customer,
	items []LineItemInput,
	dueDate *time.Time,
	actor string,
	at time.Time,
) (*Order, error) {
	o := newOrder(Quote)

	errList := []error{o.setID(id), o.setNumber(number), o.setCustomer(customer)}
	for i, in := range items {
		li, err := NewLineItem(kernel.NewUUID(), in)
		if err != nil {
			errList = append(errList, fmt.Errorf("line item %d: %w", i+1, err))
			continue
		}
		o.lineItems = append(o.lineItems, li)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	o.dueDate = cloneTime(dueDate)
	o.stampCreated(actor, at)
	return o, nil
}

func newOrder(stage Stage) *Order {
	return &Order{
		status:        stage,
		artStatus:     ArtPending,
		lineItems:     []LineItem{},
		artConf:       art.NewConfirmation(),
		history:       []HistoryEntry{},
		isConstructed: true,
	}
}

func (o *Order) stampCreated(actor string, at time.Time) {
	o.version = 1
	o.createdAt = at
	o.log(ActionCreated, actor, at, withChange("status", "", o.status.String()))
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID        { return o.id }
func (o *Order) OrderNumber() string    { return o.orderNumber }
func (o *Order) Status() Stage          { return o.status }
func (o *Order) ArtStatus() ArtStatus   { return o.artStatus }
func (o *Order) Customer() Customer     { return o.customer }
func (o *Order) Version() int           { return o.version }
func (o *Order) Notes() string          { return o.notes }
func (o *Order) IsArchived() bool       { return o.isArchived }
func (o *Order) ClosedReason() string   { return o.closedReason }
func (o *Order) ReopenedFrom() string   { return o.reopenedFrom }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
func (o *Order) DueDate() *time.Time    { return cloneTime(o.dueDate) }
func (o *Order) ArchivedAt() *time.Time { return cloneTime(o.archivedAt) }
func (o *Order) ClosedAt() *time.Time   { return cloneTime(o.closedAt) }

// IsPermanentlyArchived reports whether the order reached the terminal
// permanent archive.
func (o *Order) IsPermanentlyArchived() bool { return o.isPermanentlyArchived }

// LineItems returns a copy of the line items in order.
func (o *Order) LineItems() []LineItem {
	return cloneLineItems(o.lineItems)
}

// Total returns the sum of price times quantity over all line items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range o.lineItems {
		total = total.Add(li.Price.Mul(decimal.NewFromInt(int64(li.Qty))))
	}
	return total
}

// LineItem returns a copy of one line item.
func (o *Order) LineItem(id kernel.UUID) (LineItem, error) {
	idx, err := o.lineItemIndex(id)
	if err != nil {
		return LineItem{}, err
	}
	return cloneLineItem(o.lineItems[idx]), nil
}

// LeadInfo returns a copy of the lead data, or nil for orders that did not
// start as a Lead.
func (o *Order) LeadInfo() *LeadInfo {
	if o.leadInfo == nil {
		return nil
	}
	l := o.leadInfo.clone()
	return &l
}

func (o *Order) PrepStatus() PrepStatus               { return o.prep.clone() }
func (o *Order) Fulfillment() FulfillmentStatus       { return o.fulfillment.clone() }
func (o *Order) InvoiceStatus() InvoiceStatus         { return o.invoice.clone() }
func (o *Order) CloseoutChecklist() CloseoutChecklist { return o.closeout.clone() }

// ArtConfirmation returns a copy of the art sub-workflow state.
func (o *Order) ArtConfirmation() art.Snapshot {
	return o.artConf.Snapshot()
}

// History returns a copy of the audit log, oldest first.
func (o *Order) History() []HistoryEntry {
	return slices.Clone(o.history)
}

// BumpVersion increments the optimistic-concurrency counter. The store calls
// it once per persisted mutation.
func (o *Order) BumpVersion() {
	o.version++
}

// Details is a partial update of the descriptive fields of an order. Nil
// fields are left unchanged.
type Details struct {
	Customer       *Customer
	DueDate        *time.Time
	ClearDueDate   bool
	Notes          *string
	LeadInfo       *LeadInfo
	TrackingNumber *string
	InvoiceNumber  *string
}

// UpdateDetails applies a partial update. Customer-name and due-date changes
// are recorded in the history. Nothing is applied if any field is invalid.
func (o *Order) UpdateDetails(d Details, actor string, at time.Time) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	if err := o.validateDetails(d); err != nil {
		return err
	}

	if d.Customer != nil {
		c := d.Customer.normalized()
		if c.Name != o.customer.Name {
			o.log(ActionFieldUpdated, actor, at, withChange("customer", o.customer.Name, c.Name))
		}
		o.customer = c
	}
	if d.LeadInfo != nil {
		lead := d.LeadInfo.withDefaults().clone()
		lead.ConvertedAt = cloneTime(o.leadInfo.ConvertedAt)
		o.leadInfo = &lead
	}
	switch {
	case d.ClearDueDate && o.dueDate != nil:
		o.log(ActionFieldUpdated, actor, at, withChange("dueDate", formatDate(o.dueDate), ""))
		o.dueDate = nil
	case d.DueDate != nil:
		if o.dueDate == nil || !o.dueDate.Equal(*d.DueDate) {
			o.log(ActionFieldUpdated, actor, at, withChange("dueDate", formatDate(o.dueDate), formatDate(d.DueDate)))
		}
		o.dueDate = cloneTime(d.DueDate)
	}
	if d.Notes != nil {
		o.notes = *d.Notes
	}
	if d.TrackingNumber != nil {
		o.fulfillment.TrackingNumber = strings.TrimSpace(*d.TrackingNumber)
	}
	if d.InvoiceNumber != nil {
		o.invoice.InvoiceNumber = strings.TrimSpace(*d.InvoiceNumber)
	}
	o.updatedAt = at
	return nil
}

func (o *Order) validateDetails(d Details) error {
	var errList []error
	if d.Customer != nil && d.Customer.normalized().Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer"))
	}
	if d.LeadInfo != nil {
		if o.leadInfo == nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("leadInfo", errors.New("order did not start as a lead")))
		} else {
			errList = append(errList, d.LeadInfo.withDefaults().Validate())
		}
	}
	return errors.Join(errList...)
}

// AddLineItem prices and appends a line item.
func (o *Order) AddLineItem(in LineItemInput, actor string, at time.Time) (LineItem, error) {
	if err := o.ensureEditable(); err != nil {
		return LineItem{}, err
	}
	li, err := NewLineItem(kernel.NewUUID(), in)
	if err != nil {
		return LineItem{}, err
	}
	o.lineItems = append(o.lineItems, li)
	o.log(ActionLineItemAdded, actor, at, withChange("lineItems", "", describeLineItem(li)))
	return cloneLineItem(li), nil
}

// UpdateLineItem replaces the editable fields of a line item and re-prices
// it. Production flags are kept. A change of the description or of the
// price is recorded in the history.
func (o *Order) UpdateLineItem(id kernel.UUID, in LineItemInput, actor string, at time.Time) (LineItem, error) {
	if err := o.ensureEditable(); err != nil {
		return LineItem{}, err
	}
	idx, err := o.lineItemIndex(id)
	if err != nil {
		return LineItem{}, err
	}
	previous := o.lineItems[idx]
	updated := previous
	if err := updated.apply(in); err != nil {
		return LineItem{}, err
	}
	o.lineItems[idx] = updated
	o.updatedAt = at

	before, after := describePricedLineItem(previous), describePricedLineItem(updated)
	if before != after {
		o.log(ActionFieldUpdated, actor, at, withChange("lineItems", before, after))
	}
	return cloneLineItem(updated), nil
}

// RemoveLineItem drops a line item. Past Quote the last item cannot be
// removed.
func (o *Order) RemoveLineItem(id kernel.UUID, actor string, at time.Time) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	idx, err := o.lineItemIndex(id)
	if err != nil {
		return err
	}
	if len(o.lineItems) == 1 && o.status.Number() > Quote.Number() {
		return errs.NewValidationError("order "+o.orderNumber,
			[]string{fmt.Sprintf("cannot remove the last line item of an order in %s", o.status)})
	}
	removed := o.lineItems[idx]
	o.lineItems = slices.Delete(o.lineItems, idx, idx+1)
	o.log(ActionLineItemRemoved, actor, at, withChange("lineItems", describeLineItem(removed), ""))
	return nil
}

// SetLineItemProgress toggles one production flag of a line item.
//
// Returns:
//   - true if the item changed
//   - false with a nil error for no-ops, such as packing an item that has
//     not been decorated yet
//   - ObjectNotFoundError for an unknown item
func (o *Order) SetLineItemProgress(id kernel.UUID, flag ProductionFlag, value bool, at time.Time) (bool, error) {
	if err := errors.Join(o.ensureEditable(), flag.Validate()); err != nil {
		return false, err
	}
	idx, err := o.lineItemIndex(id)
	if err != nil {
		return false, err
	}
	changed := o.lineItems[idx].setProgress(flag, value, at)
	if changed {
		o.updatedAt = at
	}
	return changed, nil
}

// SetChecklistFlag sets one flag of the prep, fulfillment, invoice or
// closeout checklist. Paired timestamps follow the flag.
func (o *Order) SetChecklistFlag(flag ChecklistFlag, value bool, at time.Time) (bool, error) {
	if err := errors.Join(o.ensureEditable(), flag.Validate()); err != nil {
		return false, err
	}
	changed := o.setChecklistFlag(flag, value, at)
	if changed {
		o.updatedAt = at
	}
	return changed, nil
}

// PrepRequirements derives which prep flags gate Production Prep from the
// decoration types of the line items.
func (o *Order) PrepRequirements() PrepRequirements {
	var r PrepRequirements
	for _, li := range o.lineItems {
		switch li.DecorationType {
		case pricing.DTF:
			r.GangSheet = true
		case pricing.Embroidery:
			r.Digitizing = true
		case pricing.ScreenPrint:
			r.Screens = true
		case pricing.OtherDecoration, pricing.UnknownDecoration:
		}
	}
	return r
}

// ensureActive rejects changes to archived orders.
func (o *Order) ensureActive() error {
	switch {
	case o.isPermanentlyArchived:
		return errs.NewInvalidTransitionError(o.status.String(), "", "order is permanently archived")
	case o.isArchived:
		return errs.NewInvalidTransitionError(o.status.String(), "", "order is archived")
	}
	return nil
}

// ensureEditable additionally rejects changes to Closed orders; they must be
// reopened first.
func (o *Order) ensureEditable() error {
	if err := o.ensureActive(); err != nil {
		return err
	}
	if o.status == Closed {
		return errs.NewInvalidTransitionError(o.status.String(), "", "closed orders must be reopened before editing")
	}
	return nil
}

func (o *Order) lineItemIndex(id kernel.UUID) (int, error) {
	idx := slices.IndexFunc(o.lineItems, func(li LineItem) bool { return li.ID == id })
	if idx < 0 {
		return -1, errs.NewObjectNotFoundError("lineItemID", id)
	}
	return idx, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = number
	return nil
}

func (o *Order) setCustomer(c Customer) error {
	c = c.normalized()
	if c.Name == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = c
	return nil
}

func describePricedLineItem(li LineItem) string {
	return fmt.Sprintf("%s @ %s", describeLineItem(li), li.Price.StringFixed(2))
}

func describeLineItem(li LineItem) string {
	parts := []string{fmt.Sprintf("%d x %s", li.Qty, li.Name)}
	if li.Color != "" {
		parts = append(parts, li.Color)
	}
	if li.Size != "" {
		parts = append(parts, li.Size)
	}
	return strings.Join(parts, " ")
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
