package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// ArchiveOrderCommandHandler handles ArchiveOrderCommand.
type ArchiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewArchiveOrderCommandHandler creates the handler.
func NewArchiveOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle archives a closed order.
func (h *ArchiveOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		return o.Archive(cmd.Actor(), now)
	}))
}

// PermanentlyArchiveOrderCommandHandler handles PermanentlyArchiveOrderCommand.
type PermanentlyArchiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewPermanentlyArchiveOrderCommandHandler creates the handler.
func NewPermanentlyArchiveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
) PermanentlyArchiveOrderCommandHandler {
	return PermanentlyArchiveOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle permanently archives the order.
func (h *PermanentlyArchiveOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PermanentlyArchiveOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		return o.PermanentlyArchive(cmd.Actor(), now)
	}))
}
