package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// UpdateArtNotesCommandHandler handles UpdateArtNotesCommand.
type UpdateArtNotesCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewUpdateArtNotesCommandHandler creates the handler.
func NewUpdateArtNotesCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UpdateArtNotesCommandHandler {
	return UpdateArtNotesCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle replaces the notes.
func (h *UpdateArtNotesCommandHandler) Handle(ctx context.Context, cmd UpdateArtNotesCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		return o.UpdateArtNotes(cmd.Notes(), cmd.Actor(), now)
	}))
}
