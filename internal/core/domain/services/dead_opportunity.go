package services

import (
	"time"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/pkg/errs"
)

// ErrSpawnNumberRequired is returned when a follow-up lead is requested
// without an order number for it.
var ErrSpawnNumberRequired = errs.NewValueIsRequiredError("spawn order number")

// DeadOpportunityArchiver archives quotes the customer walked away from.
//
// Business rules:
//   - Only quotes can be archived as a dead opportunity
//   - The original quote keeps its line items and cannot be changed again
//   - A follow-up lead carries the customer contact fields over, starts Cold
//     and uses the quote total as its estimated value
//
// Example usage:
//
//	archiver := services.NewDeadOpportunityArchiver()
//	lead, err := archiver.Archive(quote, services.DeadOpportunity{
//	    SpawnLead:   true,
//	    SpawnNumber: "LEAD-0042",
//	    Reason:      "went with a cheaper shop",
//	}, "dana", time.Now())
type DeadOpportunityArchiver struct{}

// DeadOpportunity describes how a quote is abandoned.
type DeadOpportunity struct {
	// SpawnLead requests a follow-up lead.
	SpawnLead bool
	// SpawnNumber is the order number of the follow-up lead.
	SpawnNumber string
	// Reason is stored on the history of the archived quote.
	Reason string
}

// NewDeadOpportunityArchiver creates a DeadOpportunityArchiver.
func NewDeadOpportunityArchiver() DeadOpportunityArchiver {
	return DeadOpportunityArchiver{}
}

// Archive archives quote and, if requested, returns the follow-up lead.
//
// Parameters:
//   - quote: the order to archive, must be in Quote
//   - opts: spawn choice, number of the new lead and the reason
//   - actor, at: recorded in both histories
//
// Returns:
//   - *order.Order: the new lead, or nil when none was requested
//   - error: ErrSpawnNumberRequired, or InvalidTransitionError if quote is
//     not an active Quote
func (a DeadOpportunityArchiver) Archive(
	quote *order.Order,
	opts DeadOpportunity,
	actor string,
	at time.Time,
) (*order.Order, error) {
	if err := quote.Validate(); err != nil {
		return nil, err
	}

	if opts.SpawnLead && opts.SpawnNumber == "" {
		return nil, ErrSpawnNumberRequired
	}

	if err := quote.ArchiveAsDeadOpportunity(opts.Reason, actor, at); err != nil {
		return nil, err
	}
	if !opts.SpawnLead {
		return nil, nil
	}

	lead, err := order.NewLead(kernel.NewUUID(), opts.SpawnNumber, quote.Customer(), order.LeadInfo{
		Source:         order.SourceRepeatCustomer,
		Temperature:    order.Cold,
		EstimatedValue: quote.Total(),
		Notes:          "Follow-up of dead opportunity " + quote.OrderNumber(),
	}, actor, at)
	if err != nil {
		return nil, err
	}
	lead.MarkSpawnedFrom(quote, actor, at)
	return lead, nil
}
