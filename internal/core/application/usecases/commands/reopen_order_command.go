package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/pkg/guard"
)

var (
	ErrReopenOrderCommandIsNotConstructed = errors.New(
		"ReopenOrderCommand must be created via NewReopenOrderCommand constructor",
	)
)

// ReopenOrderCommand brings a closed order back to an earlier stage
// (Quote through Closeout).
type ReopenOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Stage
	actor   string

	guard guard.ConstructorGuard
}

// NewReopenOrderCommand creates a reopen request.
func NewReopenOrderCommand(orderID kernel.UUID, target order.Stage, actor string) (ReopenOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		order.Closed.ValidateReopenTo(target),
	); err != nil {
		return ReopenOrderCommand{}, err
	}

	return ReopenOrderCommand{
		orderID: orderID,
		target:  target,
		actor:   actorOrDefault(actor),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReopenOrderCommand) Validate() error {
	return c.guard.Validate(ErrReopenOrderCommandIsNotConstructed)
}

func (c ReopenOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ReopenOrderCommand) Target() order.Stage {
	return c.target
}

func (c ReopenOrderCommand) Actor() string {
	return c.actor
}
