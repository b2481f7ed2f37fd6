package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// UpdateChecklistCommandHandler handles UpdateChecklistCommand.
type UpdateChecklistCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewUpdateChecklistCommandHandler creates the handler.
func NewUpdateChecklistCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UpdateChecklistCommandHandler {
	return UpdateChecklistCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle sets the checklist flag. Re-setting a flag to its current value is
// not persisted.
func (h *UpdateChecklistCommandHandler) Handle(ctx context.Context, cmd UpdateChecklistCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (bool, error) {
		return o.SetChecklistFlag(cmd.Flag(), cmd.Value(), now)
	})
}
