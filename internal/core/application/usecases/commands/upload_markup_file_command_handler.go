package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// UploadMarkupFileCommandHandler handles UploadMarkupFileCommand.
type UploadMarkupFileCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewUploadMarkupFileCommandHandler creates the handler.
func NewUploadMarkupFileCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UploadMarkupFileCommandHandler {
	return UploadMarkupFileCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle attaches the markup.
func (h *UploadMarkupFileCommandHandler) Handle(ctx context.Context, cmd UploadMarkupFileCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		_, err := o.UploadMarkupFile(cmd.PlacementID(), cmd.ProofID(), cmd.File(), cmd.Actor(), now)
		return err
	}))
}
