package commands

import (
	"errors"
	"strings"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrAddArtPlacementCommandIsNotConstructed = errors.New(
		"AddArtPlacementCommand must be created via NewAddArtPlacementCommand constructor",
	)
	ErrPlacementLocationIsRequired = errors.New("placement location is required")
)

// AddArtPlacementCommand adds a decoration placement (front, left chest,
// sleeve, ...) to the art confirmation of an order.
type AddArtPlacementCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	placement art.PlacementInput
	actor     string

	guard guard.ConstructorGuard
}

// NewAddArtPlacementCommand creates the request. Dimensions and color count
// are checked by the art confirmation itself.
func NewAddArtPlacementCommand(orderID kernel.UUID, placement art.PlacementInput, actor string) (AddArtPlacementCommand, error) {
	var locationErr error
	if strings.TrimSpace(placement.Location) == "" {
		locationErr = ErrPlacementLocationIsRequired
	}
	if err := errors.Join(orderID.Validate(), locationErr); err != nil {
		return AddArtPlacementCommand{}, err
	}

	return AddArtPlacementCommand{
		orderID:   orderID,
		placement: placement,
		actor:     actorOrDefault(actor),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddArtPlacementCommand) Validate() error {
	return c.guard.Validate(ErrAddArtPlacementCommandIsNotConstructed)
}

func (c AddArtPlacementCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddArtPlacementCommand) Placement() art.PlacementInput {
	return c.placement
}

func (c AddArtPlacementCommand) Actor() string {
	return c.actor
}
