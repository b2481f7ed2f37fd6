package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// RecordArtFeedbackCommandHandler handles RecordArtFeedbackCommand.
type RecordArtFeedbackCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewRecordArtFeedbackCommandHandler creates the handler.
func NewRecordArtFeedbackCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) RecordArtFeedbackCommandHandler {
	return RecordArtFeedbackCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle marks the proof as needing revision and the art as revision requested.
func (h *RecordArtFeedbackCommandHandler) Handle(ctx context.Context, cmd RecordArtFeedbackCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		return o.RecordArtFeedback(cmd.PlacementID(), cmd.ProofID(), cmd.Feedback(), now)
	}))
}
