package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrUpdateArtNotesCommandIsNotConstructed = errors.New(
		"UpdateArtNotesCommand must be created via NewUpdateArtNotesCommand constructor",
	)
)

// UpdateArtNotesCommand replaces the free-text notes of the art confirmation.
type UpdateArtNotesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	notes   string
	actor   string

	guard guard.ConstructorGuard
}

// NewUpdateArtNotesCommand creates the request. Empty notes clear them.
func NewUpdateArtNotesCommand(orderID kernel.UUID, notes, actor string) (UpdateArtNotesCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateArtNotesCommand{}, err
	}

	return UpdateArtNotesCommand{
		orderID: orderID,
		notes:   notes,
		actor:   actorOrDefault(actor),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateArtNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateArtNotesCommandIsNotConstructed)
}

func (c UpdateArtNotesCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateArtNotesCommand) Notes() string {
	return c.notes
}

func (c UpdateArtNotesCommand) Actor() string {
	return c.actor
}
