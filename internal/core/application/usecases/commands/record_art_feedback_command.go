package commands

import (
	"errors"
	"strings"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrRecordArtFeedbackCommandIsNotConstructed = errors.New(
		"RecordArtFeedbackCommand must be created via NewRecordArtFeedbackCommand constructor",
	)
	ErrFeedbackIsRequired = errors.New("customer feedback is required")
)

// RecordArtFeedbackCommand stores the customer's change request for a sent
// proof. The revision is attributed to the customer.
type RecordArtFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	placementID kernel.UUID
	proofID     kernel.UUID
	feedback    string

	guard guard.ConstructorGuard
}

// NewRecordArtFeedbackCommand creates the request.
func NewRecordArtFeedbackCommand(orderID, placementID, proofID kernel.UUID, feedback string) (RecordArtFeedbackCommand, error) {
	var feedbackErr error
	if strings.TrimSpace(feedback) == "" {
		feedbackErr = ErrFeedbackIsRequired
	}
	if err := errors.Join(orderID.Validate(), placementID.Validate(), proofID.Validate(), feedbackErr); err != nil {
		return RecordArtFeedbackCommand{}, err
	}

	return RecordArtFeedbackCommand{
		orderID:     orderID,
		placementID: placementID,
		proofID:     proofID,
		feedback:    feedback,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordArtFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrRecordArtFeedbackCommandIsNotConstructed)
}

func (c RecordArtFeedbackCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecordArtFeedbackCommand) PlacementID() kernel.UUID {
	return c.placementID
}

func (c RecordArtFeedbackCommand) ProofID() kernel.UUID {
	return c.proofID
}

func (c RecordArtFeedbackCommand) Feedback() string {
	return c.feedback
}
