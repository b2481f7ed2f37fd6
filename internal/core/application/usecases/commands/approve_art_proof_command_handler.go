package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// ApproveArtProofCommandHandler handles ApproveArtProofCommand. Approving the
// last open placement moves the order's art status to Approved.
type ApproveArtProofCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewApproveArtProofCommandHandler creates the handler.
func NewApproveArtProofCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) ApproveArtProofCommandHandler {
	return ApproveArtProofCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle approves the proof.
func (h *ApproveArtProofCommandHandler) Handle(ctx context.Context, cmd ApproveArtProofCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		_, err := o.ApproveArtProof(cmd.PlacementID(), cmd.ProofID(), cmd.Actor(), now)
		return err
	}))
}
