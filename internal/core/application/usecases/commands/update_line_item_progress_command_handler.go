package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// UpdateLineItemProgressCommandHandler handles UpdateLineItemProgressCommand.
//
// Setting packed on an undecorated item changes nothing; the order is
// returned as stored and its version is not bumped.
type UpdateLineItemProgressCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewUpdateLineItemProgressCommandHandler creates the handler.
func NewUpdateLineItemProgressCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
) UpdateLineItemProgressCommandHandler {
	return UpdateLineItemProgressCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle sets the flag and persists the order if it changed.
func (h *UpdateLineItemProgressCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateLineItemProgressCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (bool, error) {
		return o.SetLineItemProgress(cmd.LineItemID(), cmd.Flag(), cmd.Value(), now)
	})
}
