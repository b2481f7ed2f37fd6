package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrAddArtProofCommandIsNotConstructed = errors.New(
		"AddArtProofCommand must be created via NewAddArtProofCommand constructor",
	)
)

// AddArtProofCommand adds the next proof version to a placement. The proof
// starts as a draft.
type AddArtProofCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	placementID kernel.UUID
	proof       art.ProofInput
	actor       string

	guard guard.ConstructorGuard
}

// NewAddArtProofCommand creates the request.
func NewAddArtProofCommand(
	orderID, placementID kernel.UUID,
	proof art.ProofInput,
	actor string,
) (AddArtProofCommand, error) {
	if err := errors.Join(orderID.Validate(), placementID.Validate()); err != nil {
		return AddArtProofCommand{}, err
	}

	return AddArtProofCommand{
		orderID:     orderID,
		placementID: placementID,
		proof:       proof,
		actor:       actorOrDefault(actor),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddArtProofCommand) Validate() error {
	return c.guard.Validate(ErrAddArtProofCommandIsNotConstructed)
}

func (c AddArtProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddArtProofCommand) PlacementID() kernel.UUID {
	return c.placementID
}

func (c AddArtProofCommand) Proof() art.ProofInput {
	return c.proof
}

func (c AddArtProofCommand) Actor() string {
	return c.actor
}
