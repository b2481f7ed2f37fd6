package order

import (
	"time"

	"decoflow/internal/core/domain/model/kernel"
)

// HistoryAction tags an entry of the order history.
type HistoryAction string

const (
	ActionCreated              HistoryAction = "Order Created"
	ActionStatusChanged        HistoryAction = "Status Changed"
	ActionMovedBack            HistoryAction = "Moved Back"
	ActionReopened             HistoryAction = "Order Reopened"
	ActionArchived             HistoryAction = "Order Archived"
	ActionDeadOpportunity      HistoryAction = "Archived as Dead Opportunity"
	ActionSpawnedFromDead      HistoryAction = "Created from Dead Opportunity"
	ActionPermanentlyArchived  HistoryAction = "Permanently Archived"
	ActionFieldUpdated         HistoryAction = "Field Updated"
	ActionLineItemAdded        HistoryAction = "Line Item Added"
	ActionLineItemRemoved      HistoryAction = "Line Item Removed"
	ActionArtApprovalRecovered HistoryAction = "Art Approval Recorded"
)

// HistoryEntry is one line of the append-only order audit log.
type HistoryEntry struct {
	ID            kernel.UUID   `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	Action        HistoryAction `json:"action"`
	Field         string        `json:"field,omitempty"`
	PreviousValue string        `json:"previousValue,omitempty"`
	NewValue      string        `json:"newValue,omitempty"`
	Note          string        `json:"note,omitempty"`
	PerformedBy   string        `json:"performedBy,omitempty"`
}

type historyOption func(*HistoryEntry)

func withChange(field, previous, next string) historyOption {
	return func(e *HistoryEntry) {
		e.Field = field
		e.PreviousValue = previous
		e.NewValue = next
	}
}

func withNote(text string) historyOption {
	return func(e *HistoryEntry) { e.Note = text }
}

func (o *Order) log(action HistoryAction, actor string, at time.Time, opts ...historyOption) {
	e := HistoryEntry{
		ID:          kernel.NewUUID(),
		Timestamp:   at,
		Action:      action,
		PerformedBy: actor,
	}
	for _, opt := range opts {
		opt(&e)
	}
	o.history = append(o.history, e)
	o.updatedAt = at
}
