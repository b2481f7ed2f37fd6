package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/services"
)

// DeadOpportunityResult carries both sides of a dead-opportunity archive.
type DeadOpportunityResult struct {
	Archived *order.Order
	// Lead is the follow-up lead, or nil when none was requested.
	Lead *order.Order
}

// ArchiveDeadOpportunityCommandHandler handles ArchiveDeadOpportunityCommand.
// The archived quote and the spawned lead are written in one unit of work.
type ArchiveDeadOpportunityCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	archiver   services.DeadOpportunityArchiver
}

// NewArchiveDeadOpportunityCommandHandler creates the handler.
func NewArchiveDeadOpportunityCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	archiver services.DeadOpportunityArchiver,
) ArchiveDeadOpportunityCommandHandler {
	return ArchiveDeadOpportunityCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		archiver:   archiver,
	}
}

// Handle archives the quote and, when requested, adds the follow-up lead
// under the next free LEAD-<n> number.
func (h *ArchiveDeadOpportunityCommandHandler) Handle(
	ctx context.Context,
	cmd ArchiveDeadOpportunityCommand,
) (DeadOpportunityResult, error) {
	if err := cmd.Validate(); err != nil {
		return DeadOpportunityResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DeadOpportunityResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	quote, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return DeadOpportunityResult{}, err
	}

	opts := services.DeadOpportunity{SpawnLead: cmd.SpawnLead(), Reason: cmd.Reason()}
	if opts.SpawnLead {
		if opts.SpawnNumber, err = nextOrderNumber(ctx, orderRepo, leadNumberPrefix); err != nil {
			return DeadOpportunityResult{}, err
		}
	}

	lead, err := h.archiver.Archive(quote, opts, cmd.Actor(), h.clock.Now())
	if err != nil {
		return DeadOpportunityResult{}, err
	}

	if err = checkOrder(quote); err != nil {
		return DeadOpportunityResult{}, err
	}
	quote.BumpVersion()
	if err = orderRepo.Update(ctx, quote); err != nil {
		return DeadOpportunityResult{}, err
	}

	if lead != nil {
		if err = checkOrder(lead); err != nil {
			return DeadOpportunityResult{}, err
		}
		if err = orderRepo.Add(ctx, lead); err != nil {
			return DeadOpportunityResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return DeadOpportunityResult{}, err
	}

	return DeadOpportunityResult{Archived: quote, Lead: lead}, nil
}
