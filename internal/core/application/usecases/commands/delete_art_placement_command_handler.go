package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// DeleteArtPlacementCommandHandler handles DeleteArtPlacementCommand.
// Removing the last unapproved placement can complete the approval.
type DeleteArtPlacementCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewDeleteArtPlacementCommandHandler creates the handler.
func NewDeleteArtPlacementCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) DeleteArtPlacementCommandHandler {
	return DeleteArtPlacementCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle deletes the placement.
func (h *DeleteArtPlacementCommandHandler) Handle(ctx context.Context, cmd DeleteArtPlacementCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		return o.DeleteArtPlacement(cmd.PlacementID(), cmd.Actor(), now)
	}))
}
