package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrDeleteArtPlacementCommandIsNotConstructed = errors.New(
		"DeleteArtPlacementCommand must be created via NewDeleteArtPlacementCommand constructor",
	)
)

// DeleteArtPlacementCommand removes a placement together with its proofs.
type DeleteArtPlacementCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	placementID kernel.UUID
	actor       string

	guard guard.ConstructorGuard
}

// NewDeleteArtPlacementCommand creates the request.
func NewDeleteArtPlacementCommand(orderID, placementID kernel.UUID, actor string) (DeleteArtPlacementCommand, error) {
	if err := errors.Join(orderID.Validate(), placementID.Validate()); err != nil {
		return DeleteArtPlacementCommand{}, err
	}

	return DeleteArtPlacementCommand{
		orderID:     orderID,
		placementID: placementID,
		actor:       actorOrDefault(actor),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteArtPlacementCommand) Validate() error {
	return c.guard.Validate(ErrDeleteArtPlacementCommandIsNotConstructed)
}

func (c DeleteArtPlacementCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DeleteArtPlacementCommand) PlacementID() kernel.UUID {
	return c.placementID
}

func (c DeleteArtPlacementCommand) Actor() string {
	return c.actor
}
