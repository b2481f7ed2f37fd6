package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrUploadMarkupFileCommandIsNotConstructed = errors.New(
		"UploadMarkupFileCommand must be created via NewUploadMarkupFileCommand constructor",
	)
)

// UploadMarkupFileCommand attaches a customer markup to a proof. A markup on
// a proof that is out with the customer counts as a revision request.
type UploadMarkupFileCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	placementID kernel.UUID
	proofID     kernel.UUID
	file        art.FileInput
	actor       string

	guard guard.ConstructorGuard
}

// NewUploadMarkupFileCommand creates the request.
func NewUploadMarkupFileCommand(
	orderID, placementID, proofID kernel.UUID,
	file art.FileInput,
	actor string,
) (UploadMarkupFileCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		placementID.Validate(),
		proofID.Validate(),
		validateFileInput(file),
	); err != nil {
		return UploadMarkupFileCommand{}, err
	}

	return UploadMarkupFileCommand{
		orderID:     orderID,
		placementID: placementID,
		proofID:     proofID,
		file:        file,
		actor:       actorOrDefault(actor),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadMarkupFileCommand) Validate() error {
	return c.guard.Validate(ErrUploadMarkupFileCommandIsNotConstructed)
}

func (c UploadMarkupFileCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UploadMarkupFileCommand) PlacementID() kernel.UUID {
	return c.placementID
}

func (c UploadMarkupFileCommand) ProofID() kernel.UUID {
	return c.proofID
}

func (c UploadMarkupFileCommand) File() art.FileInput {
	return c.file
}

func (c UploadMarkupFileCommand) Actor() string {
	return c.actor
}
