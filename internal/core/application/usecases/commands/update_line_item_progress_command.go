package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/pkg/guard"
)

var (
	ErrUpdateLineItemProgressCommandIsNotConstructed = errors.New(
		"UpdateLineItemProgressCommand must be created via NewUpdateLineItemProgressCommand constructor",
	)
)

// UpdateLineItemProgressCommand sets one production flag (ordered, received,
// decorated, packed) of a line item.
type UpdateLineItemProgressCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineItemID kernel.UUID
	flag       order.ProductionFlag
	value      bool

	guard guard.ConstructorGuard
}

// NewUpdateLineItemProgressCommand creates the request.
func NewUpdateLineItemProgressCommand(
	orderID kernel.UUID,
	lineItemID kernel.UUID,
	flag order.ProductionFlag,
	value bool,
) (UpdateLineItemProgressCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		lineItemID.Validate(),
		flag.Validate(),
	); err != nil {
		return UpdateLineItemProgressCommand{}, err
	}

	return UpdateLineItemProgressCommand{
		orderID:    orderID,
		lineItemID: lineItemID,
		flag:       flag,
		value:      value,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLineItemProgressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineItemProgressCommandIsNotConstructed)
}

func (c UpdateLineItemProgressCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateLineItemProgressCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

func (c UpdateLineItemProgressCommand) Flag() order.ProductionFlag {
	return c.flag
}

func (c UpdateLineItemProgressCommand) Value() bool {
	return c.value
}
