package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// AddArtProofCommandHandler handles AddArtProofCommand.
type AddArtProofCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewAddArtProofCommandHandler creates the handler.
func NewAddArtProofCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) AddArtProofCommandHandler {
	return AddArtProofCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle appends the proof with version max+1.
func (h *AddArtProofCommandHandler) Handle(ctx context.Context, cmd AddArtProofCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		_, err := o.AddArtProof(cmd.PlacementID(), cmd.Proof(), cmd.Actor(), now)
		return err
	}))
}
