package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// ReopenOrderCommandHandler handles ReopenOrderCommand.
type ReopenOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewReopenOrderCommandHandler creates the handler.
func NewReopenOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) ReopenOrderCommandHandler {
	return ReopenOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle reopens the order. Only Closed orders can be reopened.
func (h *ReopenOrderCommandHandler) Handle(ctx context.Context, cmd ReopenOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		return o.Reopen(cmd.Target(), cmd.Actor(), now)
	}))
}
