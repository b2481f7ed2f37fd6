package http

import (
	"time"

	"decoflow/internal/core/application/usecases/commands"
	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/pricing"
	"decoflow/internal/core/domain/validation"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// CustomerBody is the contact block of create and update requests.
type CustomerBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

func (b CustomerBody) toDomain() order.Customer {
	return order.Customer{Name: b.Name, Email: b.Email, Phone: b.Phone, Company: b.Company}
}

// LineItemBody is one line item of a request.
type LineItemBody struct {
	ItemNumber            string                 `json:"itemNumber"`
	Name                  string                 `json:"name"`
	Color                 string                 `json:"color"`
	Size                  string                 `json:"size"`
	Qty                   int                    `json:"qty"`
	DecorationType        pricing.DecorationType `json:"decorationType"`
	DecorationPlacements  int                    `json:"decorationPlacements"`
	ScreenPrintColors     int                    `json:"screenPrintColors"`
	StitchCountTier       pricing.StitchTier     `json:"stitchCountTier"`
	DTFSize               pricing.DTFSize        `json:"dtfSize"`
	DecorationDescription string                 `json:"decorationDescription"`
	Cost                  decimal.Decimal        `json:"cost"`
}

func (b LineItemBody) toDomain() order.LineItemInput {
	return order.LineItemInput{
		ItemNumber:            b.ItemNumber,
		Name:                  b.Name,
		Color:                 b.Color,
		Size:                  b.Size,
		Qty:                   b.Qty,
		DecorationType:        b.DecorationType,
		DecorationPlacements:  b.DecorationPlacements,
		ScreenPrintColors:     b.ScreenPrintColors,
		StitchCountTier:       b.StitchCountTier,
		DTFSize:               b.DTFSize,
		DecorationDescription: b.DecorationDescription,
		Cost:                  b.Cost,
	}
}

func lineItemInputs(bodies []LineItemBody) []order.LineItemInput {
	inputs := make([]order.LineItemInput, 0, len(bodies))
	for _, b := range bodies {
		inputs = append(inputs, b.toDomain())
	}
	return inputs
}

// CreateOrderRequest creates a Lead or a Quote. Mode defaults to quote.
type CreateOrderRequest struct {
	Mode        string          `json:"mode"`
	OrderNumber string          `json:"orderNumber"`
	Customer    CustomerBody    `json:"customer"`
	LeadInfo    *order.LeadInfo `json:"leadInfo"`
	LineItems   []LineItemBody  `json:"lineItems"`
	DueDate     *time.Time      `json:"dueDate"`
}

// LineItemPatch replaces one existing line item.
type LineItemPatch struct {
	ID kernel.UUID `json:"id"`
	LineItemBody
}

// UpdateOrderRequest is a partial update; absent fields are left alone.
type UpdateOrderRequest struct {
	Customer       *CustomerBody   `json:"customer"`
	DueDate        *time.Time      `json:"dueDate"`
	ClearDueDate   bool            `json:"clearDueDate"`
	Notes          *string         `json:"notes"`
	LeadInfo       *order.LeadInfo `json:"leadInfo"`
	TrackingNumber *string         `json:"trackingNumber"`
	InvoiceNumber  *string         `json:"invoiceNumber"`
	AddLineItems   []LineItemBody  `json:"addLineItems"`
	UpdateItems    []LineItemPatch `json:"updateLineItems"`
	RemoveItems    []kernel.UUID   `json:"removeLineItems"`
}

func (r UpdateOrderRequest) details() order.Details {
	d := order.Details{
		DueDate:        r.DueDate,
		ClearDueDate:   r.ClearDueDate,
		Notes:          r.Notes,
		LeadInfo:       r.LeadInfo,
		TrackingNumber: r.TrackingNumber,
		InvoiceNumber:  r.InvoiceNumber,
	}
	if r.Customer != nil {
		c := r.Customer.toDomain()
		d.Customer = &c
	}
	return d
}

func (r UpdateOrderRequest) lineItemChanges() commands.LineItemChanges {
	changes := commands.LineItemChanges{
		Add:    lineItemInputs(r.AddLineItems),
		Remove: r.RemoveItems,
	}
	for _, u := range r.UpdateItems {
		changes.Update = append(changes.Update, commands.LineItemUpdate{ID: u.ID, Input: u.toDomain()})
	}
	return changes
}

// AdvanceRequest moves an order forward. Target is optional.
type AdvanceRequest struct {
	Target         *order.Stage `json:"target"`
	WithArtPending bool         `json:"withArtPending"`
	Note           string       `json:"note"`
}

// ReopenRequest names the stage a Closed order returns to.
type ReopenRequest struct {
	Target order.Stage `json:"target"`
}

// DeadOpportunityRequest archives a quote that will not be won.
type DeadOpportunityRequest struct {
	SpawnLead bool   `json:"spawnLead"`
	Reason    string `json:"reason"`
}

// DeadOpportunityResponse carries the archived quote and the follow-up lead.
type DeadOpportunityResponse struct {
	Archived order.Snapshot  `json:"archived"`
	Lead     *order.Snapshot `json:"lead,omitempty"`
}

// ProgressRequest sets one production flag of a line item.
type ProgressRequest struct {
	Flag  order.ProductionFlag `json:"flag"`
	Value bool                 `json:"value"`
}

// ChecklistRequest sets one checklist flag.
type ChecklistRequest struct {
	Flag  order.ChecklistFlag `json:"flag"`
	Value bool                `json:"value"`
}

// PlacementRequest adds an art placement.
type PlacementRequest struct {
	Location   string   `json:"location"`
	Width      *float64 `json:"width"`
	Height     *float64 `json:"height"`
	ColorCount int      `json:"colorCount"`
}

// FileBody describes an uploaded file by reference.
type FileBody struct {
	Name     string           `json:"name"`
	URL      string           `json:"url"`
	Category art.FileCategory `json:"category"`
}

func (b FileBody) toDomain() art.FileInput {
	return art.FileInput{Name: b.Name, URL: b.URL, Category: b.Category}
}

// ProofRequest adds a Draft proof to a placement.
type ProofRequest struct {
	ProofURL   string     `json:"proofUrl"`
	ProofNotes string     `json:"proofNotes"`
	Files      []FileBody `json:"files"`
}

func (r ProofRequest) toDomain() art.ProofInput {
	in := art.ProofInput{ProofURL: r.ProofURL, ProofNotes: r.ProofNotes}
	for _, f := range r.Files {
		in.Files = append(in.Files, f.toDomain())
	}
	return in
}

// FeedbackRequest records what the customer said about a proof.
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
}

// FinalApprovalRequest records approval obtained out of band.
type FinalApprovalRequest struct {
	Name   string    `json:"name"`
	Method string    `json:"method"`
	Date   time.Time `json:"date"`
}

// NotesRequest replaces the art notes.
type NotesRequest struct {
	Notes string `json:"notes"`
}

// ImportResponse reports an import.
type ImportResponse struct {
	Imported int                    `json:"imported"`
	Report   validation.StoreReport `json:"report"`
}

// PricePreviewRequest prices a line item without saving it.
type PricePreviewRequest struct {
	Cost                 decimal.Decimal        `json:"cost"`
	DecorationType       pricing.DecorationType `json:"decorationType"`
	DecorationPlacements int                    `json:"decorationPlacements"`
	Size                 string                 `json:"size"`
	ScreenPrintColors    int                    `json:"screenPrintColors"`
	StitchCountTier      pricing.StitchTier     `json:"stitchCountTier"`
	DTFSize              pricing.DTFSize        `json:"dtfSize"`
	Qty                  int                    `json:"qty"`
}

func (r PricePreviewRequest) toDomain() pricing.Input {
	return order.LineItemInput{
		Size:                 r.Size,
		DecorationType:       r.DecorationType,
		DecorationPlacements: r.DecorationPlacements,
		ScreenPrintColors:    r.ScreenPrintColors,
		StitchCountTier:      r.StitchCountTier,
		DTFSize:              r.DTFSize,
		Cost:                 r.Cost,
	}.PricingInput()
}
