package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrApproveArtProofCommandIsNotConstructed = errors.New(
		"ApproveArtProofCommand must be created via NewApproveArtProofCommand constructor",
	)
)

// ApproveArtProofCommand records the customer's approval of a sent proof.
type ApproveArtProofCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	placementID kernel.UUID
	proofID     kernel.UUID
	actor       string

	guard guard.ConstructorGuard
}

// NewApproveArtProofCommand creates the request.
func NewApproveArtProofCommand(orderID, placementID, proofID kernel.UUID, actor string) (ApproveArtProofCommand, error) {
	if err := errors.Join(orderID.Validate(), placementID.Validate(), proofID.Validate()); err != nil {
		return ApproveArtProofCommand{}, err
	}

	return ApproveArtProofCommand{
		orderID:     orderID,
		placementID: placementID,
		proofID:     proofID,
		actor:       actorOrDefault(actor),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveArtProofCommand) Validate() error {
	return c.guard.Validate(ErrApproveArtProofCommandIsNotConstructed)
}

func (c ApproveArtProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ApproveArtProofCommand) PlacementID() kernel.UUID {
	return c.placementID
}

func (c ApproveArtProofCommand) ProofID() kernel.UUID {
	return c.proofID
}

func (c ApproveArtProofCommand) Actor() string {
	return c.actor
}
