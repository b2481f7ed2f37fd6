package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrSendArtProofCommandIsNotConstructed = errors.New(
		"SendArtProofCommand must be created via NewSendArtProofCommand constructor",
	)
)

// SendArtProofCommand marks a draft proof as sent to the customer.
type SendArtProofCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	placementID kernel.UUID
	proofID     kernel.UUID
	actor       string

	guard guard.ConstructorGuard
}

// NewSendArtProofCommand creates the request.
func NewSendArtProofCommand(orderID, placementID, proofID kernel.UUID, actor string) (SendArtProofCommand, error) {
	if err := errors.Join(orderID.Validate(), placementID.Validate(), proofID.Validate()); err != nil {
		return SendArtProofCommand{}, err
	}

	return SendArtProofCommand{
		orderID:     orderID,
		placementID: placementID,
		proofID:     proofID,
		actor:       actorOrDefault(actor),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendArtProofCommand) Validate() error {
	return c.guard.Validate(ErrSendArtProofCommandIsNotConstructed)
}

func (c SendArtProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SendArtProofCommand) PlacementID() kernel.UUID {
	return c.placementID
}

func (c SendArtProofCommand) ProofID() kernel.UUID {
	return c.proofID
}

func (c SendArtProofCommand) Actor() string {
	return c.actor
}
