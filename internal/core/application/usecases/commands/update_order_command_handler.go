package commands

import (
	"context"
	"fmt"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies UpdateOrderCommand. All edits of one
// command are committed together or not at all.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewUpdateOrderCommandHandler creates the handler.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle loads the order, applies the edits, re-validates and bumps the version.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		if cmd.Details() != (order.Details{}) {
			if err := o.UpdateDetails(cmd.Details(), cmd.Actor(), now); err != nil {
				return err
			}
		}

		changes := cmd.LineItems()
		for i, in := range changes.Add {
			if _, err := o.AddLineItem(in, cmd.Actor(), now); err != nil {
				return fmt.Errorf("new line item %d: %w", i+1, err)
			}
		}
		for _, u := range changes.Update {
			if _, err := o.UpdateLineItem(u.ID, u.Input, cmd.Actor(), now); err != nil {
				return fmt.Errorf("line item %s: %w", u.ID, err)
			}
		}
		for _, id := range changes.Remove {
			if err := o.RemoveLineItem(id, cmd.Actor(), now); err != nil {
				return fmt.Errorf("line item %s: %w", id, err)
			}
		}
		return nil
	}))
}
