package order

import (
	"fmt"
	"time"

	"decoflow/internal/pkg/errs"
)

// PrepStatus holds the production-prep flags. Which of them are required
// depends on the decoration types of the line items, see PrepRequirements.
type PrepStatus struct {
	GangSheetCreated     bool       `json:"gangSheetCreated"`
	GangSheetCreatedAt   *time.Time `json:"gangSheetCreatedAt,omitempty"`
	DigitizingComplete   bool       `json:"digitizingComplete"`
	DigitizingCompleteAt *time.Time `json:"digitizingCompleteAt,omitempty"`
	ScreensBurned        bool       `json:"screensBurned"`
	ScreensBurnedAt      *time.Time `json:"screensBurnedAt,omitempty"`
}

// FulfillmentStatus tracks how the finished goods leave the shop.
type FulfillmentStatus struct {
	ShippingLabelPrinted   bool       `json:"shippingLabelPrinted"`
	ShippingLabelPrintedAt *time.Time `json:"shippingLabelPrintedAt,omitempty"`
	CustomerPickedUp       bool       `json:"customerPickedUp"`
	CustomerPickedUpAt     *time.Time `json:"customerPickedUpAt,omitempty"`
	TrackingNumber         string     `json:"trackingNumber,omitempty"`
	// CustomerNotified stays nil until someone records an answer.
	CustomerNotified *bool `json:"customerNotified"`
}

// InvoiceStatus tracks billing.
type InvoiceStatus struct {
	InvoiceCreated    bool       `json:"invoiceCreated"`
	InvoiceCreatedAt  *time.Time `json:"invoiceCreatedAt,omitempty"`
	InvoiceSent       bool       `json:"invoiceSent"`
	InvoiceSentAt     *time.Time `json:"invoiceSentAt,omitempty"`
	InvoiceNumber     string     `json:"invoiceNumber,omitempty"`
	PaymentReceived   *bool      `json:"paymentReceived"`
	PaymentReceivedAt *time.Time `json:"paymentReceivedAt,omitempty"`
}

// CloseoutChecklist holds the housekeeping done before an order is closed.
type CloseoutChecklist struct {
	FilesSaved      bool  `json:"filesSaved"`
	CanvaArchived   bool  `json:"canvaArchived"`
	SummaryUploaded bool  `json:"summaryUploaded"`
	ReviewRequested *bool `json:"reviewRequested"`
}

// PrepRequirements says which prep flags gate Production Prep.
type PrepRequirements struct {
	GangSheet  bool `json:"needsGangSheet"`
	Digitizing bool `json:"needsDigitizing"`
	Screens    bool `json:"needsScreens"`
}

// ChecklistFlag names a single flag of one of the four checklists.
type ChecklistFlag string

const (
	FlagGangSheetCreated     ChecklistFlag = "gangSheetCreated"
	FlagDigitizingComplete   ChecklistFlag = "digitizingComplete"
	FlagScreensBurned        ChecklistFlag = "screensBurned"
	FlagShippingLabelPrinted ChecklistFlag = "shippingLabelPrinted"
	FlagCustomerPickedUp     ChecklistFlag = "customerPickedUp"
	FlagCustomerNotified     ChecklistFlag = "customerNotified"
	FlagInvoiceCreated       ChecklistFlag = "invoiceCreated"
	FlagInvoiceSent          ChecklistFlag = "invoiceSent"
	FlagPaymentReceived      ChecklistFlag = "paymentReceived"
	FlagFilesSaved           ChecklistFlag = "filesSaved"
	FlagCanvaArchived        ChecklistFlag = "canvaArchived"
	FlagSummaryUploaded      ChecklistFlag = "summaryUploaded"
	FlagReviewRequested      ChecklistFlag = "reviewRequested"
)

// ChecklistFlags lists every ChecklistFlag.
func ChecklistFlags() []ChecklistFlag {
	return []ChecklistFlag{
		FlagGangSheetCreated, FlagDigitizingComplete, FlagScreensBurned,
		FlagShippingLabelPrinted, FlagCustomerPickedUp, FlagCustomerNotified,
		FlagInvoiceCreated, FlagInvoiceSent, FlagPaymentReceived,
		FlagFilesSaved, FlagCanvaArchived, FlagSummaryUploaded, FlagReviewRequested,
	}
}

// Validate rejects unknown flags.
func (f ChecklistFlag) Validate() error {
	for _, known := range ChecklistFlags() {
		if f == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("checklist flag is invalid", fmt.Errorf("%q is not a checklist flag", string(f)))
}

// setChecklistFlag applies one flag and reports whether anything changed.
func (o *Order) setChecklistFlag(flag ChecklistFlag, value bool, at time.Time) bool {
	switch flag {
	case FlagGangSheetCreated:
		return setFlag(&o.prep.GangSheetCreated, &o.prep.GangSheetCreatedAt, value, at)
	case FlagDigitizingComplete:
		return setFlag(&o.prep.DigitizingComplete, &o.prep.DigitizingCompleteAt, value, at)
	case FlagScreensBurned:
		return setFlag(&o.prep.ScreensBurned, &o.prep.ScreensBurnedAt, value, at)
	case FlagShippingLabelPrinted:
		return setFlag(&o.fulfillment.ShippingLabelPrinted, &o.fulfillment.ShippingLabelPrintedAt, value, at)
	case FlagCustomerPickedUp:
		return setFlag(&o.fulfillment.CustomerPickedUp, &o.fulfillment.CustomerPickedUpAt, value, at)
	case FlagCustomerNotified:
		return setNullable(&o.fulfillment.CustomerNotified, value)
	case FlagInvoiceCreated:
		return setFlag(&o.invoice.InvoiceCreated, &o.invoice.InvoiceCreatedAt, value, at)
	case FlagInvoiceSent:
		return setFlag(&o.invoice.InvoiceSent, &o.invoice.InvoiceSentAt, value, at)
	case FlagPaymentReceived:
		changed := setNullable(&o.invoice.PaymentReceived, value)
		if changed {
			if value {
				o.invoice.PaymentReceivedAt = &at
			} else {
				o.invoice.PaymentReceivedAt = nil
			}
		}
		return changed
	case FlagFilesSaved:
		return setPlain(&o.closeout.FilesSaved, value)
	case FlagCanvaArchived:
		return setPlain(&o.closeout.CanvaArchived, value)
	case FlagSummaryUploaded:
		return setPlain(&o.closeout.SummaryUploaded, value)
	case FlagReviewRequested:
		return setNullable(&o.closeout.ReviewRequested, value)
	}
	return false
}

func setPlain(flag *bool, value bool) bool {
	if *flag == value {
		return false
	}
	*flag = value
	return true
}

func setNullable(flag **bool, value bool) bool {
	if *flag != nil && **flag == value {
		return false
	}
	*flag = &value
	return true
}

func (p PrepStatus) clone() PrepStatus {
	p.GangSheetCreatedAt = cloneTime(p.GangSheetCreatedAt)
	p.DigitizingCompleteAt = cloneTime(p.DigitizingCompleteAt)
	p.ScreensBurnedAt = cloneTime(p.ScreensBurnedAt)
	return p
}

func (f FulfillmentStatus) clone() FulfillmentStatus {
	f.ShippingLabelPrintedAt = cloneTime(f.ShippingLabelPrintedAt)
	f.CustomerPickedUpAt = cloneTime(f.CustomerPickedUpAt)
	f.CustomerNotified = cloneBool(f.CustomerNotified)
	return f
}

func (i InvoiceStatus) clone() InvoiceStatus {
	i.InvoiceCreatedAt = cloneTime(i.InvoiceCreatedAt)
	i.InvoiceSentAt = cloneTime(i.InvoiceSentAt)
	i.PaymentReceived = cloneBool(i.PaymentReceived)
	i.PaymentReceivedAt = cloneTime(i.PaymentReceivedAt)
	return i
}

func (c CloseoutChecklist) clone() CloseoutChecklist {
	c.ReviewRequested = cloneBool(c.ReviewRequested)
	return c
}
