package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// AddArtPlacementCommandHandler handles AddArtPlacementCommand.
type AddArtPlacementCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewAddArtPlacementCommandHandler creates the handler.
func NewAddArtPlacementCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) AddArtPlacementCommandHandler {
	return AddArtPlacementCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle adds the placement. The order must be in Art Confirmation.
func (h *AddArtPlacementCommandHandler) Handle(ctx context.Context, cmd AddArtPlacementCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		_, err := o.AddArtPlacement(cmd.Placement(), cmd.Actor(), now)
		return err
	}))
}
