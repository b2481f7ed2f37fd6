package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrMoveBackOrderCommandIsNotConstructed = errors.New(
		"MoveBackOrderCommand must be created via NewMoveBackOrderCommand constructor",
	)
)

// MoveBackOrderCommand returns an order to the previous stage. Checklist and
// production flags gathered at later stages are kept.
type MoveBackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewMoveBackOrderCommand creates a move-back request.
func NewMoveBackOrderCommand(orderID kernel.UUID, actor string) (MoveBackOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MoveBackOrderCommand{}, err
	}

	return MoveBackOrderCommand{
		orderID: orderID,
		actor:   actorOrDefault(actor),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveBackOrderCommand) Validate() error {
	return c.guard.Validate(ErrMoveBackOrderCommandIsNotConstructed)
}

func (c MoveBackOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MoveBackOrderCommand) Actor() string {
	return c.actor
}
