package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// RecordFinalArtApprovalCommandHandler handles RecordFinalArtApprovalCommand.
//
// It is accepted in Art Confirmation, and also on an order that left Art
// Confirmation with art pending; there it brings the art status back in
// line.
type RecordFinalArtApprovalCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewRecordFinalArtApprovalCommandHandler creates the handler.
func NewRecordFinalArtApprovalCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
) RecordFinalArtApprovalCommandHandler {
	return RecordFinalArtApprovalCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle records the approval.
func (h *RecordFinalArtApprovalCommandHandler) Handle(
	ctx context.Context,
	cmd RecordFinalArtApprovalCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		return o.RecordFinalArtApproval(cmd.Name(), cmd.Method(), cmd.Date(), cmd.Actor(), now)
	}))
}
