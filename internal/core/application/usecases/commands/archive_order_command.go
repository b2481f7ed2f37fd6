package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrArchiveOrderCommandIsNotConstructed = errors.New(
		"ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor",
	)
	ErrPermanentlyArchiveOrderCommandIsNotConstructed = errors.New(
		"PermanentlyArchiveOrderCommand must be created via NewPermanentlyArchiveOrderCommand constructor",
	)
)

// ArchiveOrderCommand hides a closed order from the active board. The order
// can still be reopened.
type ArchiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewArchiveOrderCommand creates an archive request.
func NewArchiveOrderCommand(orderID kernel.UUID, actor string) (ArchiveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ArchiveOrderCommand{}, err
	}

	return ArchiveOrderCommand{
		orderID: orderID,
		actor:   actorOrDefault(actor),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
}

func (c ArchiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ArchiveOrderCommand) Actor() string {
	return c.actor
}

// PermanentlyArchiveOrderCommand freezes an order. Nothing can change it
// afterwards, reopen included.
type PermanentlyArchiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewPermanentlyArchiveOrderCommand creates a permanent-archive request.
func NewPermanentlyArchiveOrderCommand(orderID kernel.UUID, actor string) (PermanentlyArchiveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PermanentlyArchiveOrderCommand{}, err
	}

	return PermanentlyArchiveOrderCommand{
		orderID: orderID,
		actor:   actorOrDefault(actor),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PermanentlyArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrPermanentlyArchiveOrderCommandIsNotConstructed)
}

func (c PermanentlyArchiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PermanentlyArchiveOrderCommand) Actor() string {
	return c.actor
}
