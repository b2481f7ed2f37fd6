package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// MoveBackOrderCommandHandler handles MoveBackOrderCommand.
type MoveBackOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewMoveBackOrderCommandHandler creates the handler.
func NewMoveBackOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) MoveBackOrderCommandHandler {
	return MoveBackOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle moves the order back one stage.
func (h *MoveBackOrderCommandHandler) Handle(ctx context.Context, cmd MoveBackOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		return o.MoveBack(cmd.Actor(), now)
	}))
}
