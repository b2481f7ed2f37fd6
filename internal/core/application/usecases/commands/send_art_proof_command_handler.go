package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// SendArtProofCommandHandler handles SendArtProofCommand.
type SendArtProofCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewSendArtProofCommandHandler creates the handler.
func NewSendArtProofCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) SendArtProofCommandHandler {
	return SendArtProofCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle sends the proof. Only drafts can be sent.
func (h *SendArtProofCommandHandler) Handle(ctx context.Context, cmd SendArtProofCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		return o.SendArtProof(cmd.PlacementID(), cmd.ProofID(), cmd.Actor(), now)
	}))
}
