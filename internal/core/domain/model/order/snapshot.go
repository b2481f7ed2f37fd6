package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
)

// Snapshot is the plain JSON record of an order. It is what the stores
// persist and what the export bundle contains.
type Snapshot struct {
	ID                    kernel.UUID       `json:"id"`
	OrderNumber           string            `json:"orderNumber"`
	Status                Stage             `json:"status"`
	ArtStatus             ArtStatus         `json:"artStatus"`
	Customer              string            `json:"customer"`
	CustomerEmail         string            `json:"customerEmail,omitempty"`
	CustomerPhone         string            `json:"customerPhone,omitempty"`
	Company               string            `json:"company,omitempty"`
	LineItems             []LineItem        `json:"lineItems"`
	LeadInfo              *LeadInfo         `json:"leadInfo,omitempty"`
	PrepStatus            PrepStatus        `json:"prepStatus"`
	Fulfillment           FulfillmentStatus `json:"fulfillment"`
	InvoiceStatus         InvoiceStatus     `json:"invoiceStatus"`
	CloseoutChecklist     CloseoutChecklist `json:"closeoutChecklist"`
	ArtConfirmation       art.Snapshot      `json:"artConfirmation"`
	History               []HistoryEntry    `json:"history"`
	Version               int               `json:"version"`
	DueDate               *time.Time        `json:"dueDate,omitempty"`
	Notes                 string            `json:"notes,omitempty"`
	IsArchived            bool              `json:"isArchived"`
	ArchivedAt            *time.Time        `json:"archivedAt,omitempty"`
	IsPermanentlyArchived bool              `json:"isPermanentlyArchived"`
	ClosedAt              *time.Time        `json:"closedAt,omitempty"`
	ClosedReason          string            `json:"closedReason,omitempty"`
	ReopenedFrom          string            `json:"reopenedFrom,omitempty"`
	CreatedAt             time.Time         `json:"createdAt"`
	UpdatedAt             time.Time         `json:"updatedAt"`
}

// Snapshot returns a deep copy of o as a plain record.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                    o.id,
		OrderNumber:           o.orderNumber,
		Status:                o.status,
		ArtStatus:             o.artStatus,
		Customer:              o.customer.Name,
		CustomerEmail:         o.customer.Email,
		CustomerPhone:         o.customer.Phone,
		Company:               o.customer.Company,
		LineItems:             cloneLineItems(o.lineItems),
		LeadInfo:              o.LeadInfo(),
		PrepStatus:            o.prep.clone(),
		Fulfillment:           o.fulfillment.clone(),
		InvoiceStatus:         o.invoice.clone(),
		CloseoutChecklist:     o.closeout.clone(),
		ArtConfirmation:       o.artConf.Snapshot(),
		History:               slices.Clone(o.history),
		Version:               o.version,
		DueDate:               cloneTime(o.dueDate),
		Notes:                 o.notes,
		IsArchived:            o.isArchived,
		ArchivedAt:            cloneTime(o.archivedAt),
		IsPermanentlyArchived: o.isPermanentlyArchived,
		ClosedAt:              cloneTime(o.closedAt),
		ClosedReason:          o.closedReason,
		ReopenedFrom:          o.reopenedFrom,
		CreatedAt:             o.createdAt,
		UpdatedAt:             o.updatedAt,
	}
}

// Restore rebuilds an order from a persisted snapshot.
//
// Restore checks what the aggregate itself relies on: a valid id, number,
// customer, stage and art status. The validation package performs the full
// structural check and should be run on untrusted input first.
func Restore(s Snapshot) (*Order, error) {
	o := newOrder(s.Status)

	confirmation, artErr := art.Restore(s.ArtConfirmation)
	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.OrderNumber),
		o.setCustomer(Customer{Name: s.Customer, Email: s.CustomerEmail, Phone: s.CustomerPhone, Company: s.Company}),
		s.Status.Validate(),
		s.ArtStatus.Validate(),
		artErr,
	); err != nil {
		return nil, fmt.Errorf("restore order %s: %w", s.OrderNumber, err)
	}

	o.artStatus = s.ArtStatus
	o.lineItems = cloneLineItems(s.LineItems)
	if s.LeadInfo != nil {
		lead := s.LeadInfo.clone()
		o.leadInfo = &lead
	}
	o.prep = s.PrepStatus.clone()
	o.fulfillment = s.Fulfillment.clone()
	o.invoice = s.InvoiceStatus.clone()
	o.closeout = s.CloseoutChecklist.clone()
	o.artConf = confirmation
	if s.History != nil {
		o.history = slices.Clone(s.History)
	}
	o.version = s.Version
	o.dueDate = cloneTime(s.DueDate)
	o.notes = s.Notes
	o.isArchived = s.IsArchived
	o.archivedAt = cloneTime(s.ArchivedAt)
	o.isPermanentlyArchived = s.IsPermanentlyArchived
	o.closedAt = cloneTime(s.ClosedAt)
	o.closedReason = s.ClosedReason
	o.reopenedFrom = s.ReopenedFrom
	o.createdAt = s.CreatedAt
	o.updatedAt = s.UpdatedAt
	return o, nil
}
