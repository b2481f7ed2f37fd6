package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand moves an order one stage forward.
//
// Target is optional. When set it must be the next stage; callers that
// render a stage picker pass the chosen stage and get a descriptive error if
// it skips ahead. WithArtPending lets an order leave Art Confirmation before
// every placement is approved.
//
// Example:
//
//	cmd, _ := NewAdvanceOrderCommand(orderID, nil, false, "", "dana")
//	advanced, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // a gate is not satisfied; err says which one
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  *order.Stage
	opts    order.AdvanceOptions
	actor   string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates an advance request.
func NewAdvanceOrderCommand(
	orderID kernel.UUID,
	target *order.Stage,
	withArtPending bool,
	note string,
	actor string,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		opts:  order.AdvanceOptions{WithArtPending: withArtPending, Note: note},
		actor: actorOrDefault(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested stage, or nil for "the next one".
func (c AdvanceOrderCommand) Target() *order.Stage {
	if c.target == nil {
		return nil
	}
	t := *c.target
	return &t
}

func (c AdvanceOrderCommand) Options() order.AdvanceOptions {
	return c.opts
}

func (c AdvanceOrderCommand) Actor() string {
	return c.actor
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setTarget(target *order.Stage) error {
	if target == nil {
		return nil
	}
	if err := target.Validate(); err != nil {
		return err
	}

	t := *target
	c.target = &t
	return nil
}
