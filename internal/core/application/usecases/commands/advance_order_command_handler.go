package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler handles AdvanceOrderCommand. The workflow gates
// live in the order aggregate; the handler only loads, persists and commits.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewAdvanceOrderCommandHandler creates the handler.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle advances the order. A failed gate returns an InvalidTransitionError
// and leaves the stored order untouched.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		if target := cmd.Target(); target != nil {
			return o.AdvanceTo(*target, cmd.Options(), cmd.Actor(), now)
		}
		return o.Advance(cmd.Options(), cmd.Actor(), now)
	}))
}
