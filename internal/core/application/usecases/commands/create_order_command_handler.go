package commands

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the creation of leads and quotes.
// It assigns an order number when the command carries none.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock())
//	cmd, _ := NewCreateLeadCommand(kernel.NewUUID(), "", order.Customer{Name: "Acme"}, order.LeadInfo{}, "dana")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(created.OrderNumber()) // LEAD-0001
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order creation command. The new order is validated
// before it is added; a taken id or order number yields a DuplicateError.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	number := cmd.OrderNumber()
	if number == "" {
		var err error
		if number, err = nextOrderNumber(ctx, orderRepo, cmd.Mode().prefix()); err != nil {
			return nil, err
		}
	}

	now := h.clock.Now()
	var (
		created *order.Order
		err     error
	)
	if cmd.Mode() == CreateLead {
		created, err = order.NewLead(cmd.OrderID(), number, cmd.Customer(), cmd.LeadInfo(), cmd.Actor(), now)
	} else {
		created, err = order.NewQuote(cmd.OrderID(), number, cmd.Customer(), cmd.LineItems(), cmd.DueDate(), cmd.Actor(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = checkOrder(created); err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
