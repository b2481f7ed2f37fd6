package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// UploadClientFileCommandHandler handles UploadClientFileCommand.
type UploadClientFileCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewUploadClientFileCommandHandler creates the handler.
func NewUploadClientFileCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UploadClientFileCommandHandler {
	return UploadClientFileCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle stores the file reference. The file content itself lives elsewhere;
// only its name and URL are recorded.
func (h *UploadClientFileCommandHandler) Handle(ctx context.Context, cmd UploadClientFileCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), changed(func(o *order.Order) error {
		_, err := o.UploadClientFile(cmd.File(), cmd.Actor(), now)
		return err
	}))
}
