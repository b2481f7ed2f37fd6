package commands

import (
	"errors"
	"strings"
	"time"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrRecordFinalArtApprovalCommandIsNotConstructed = errors.New(
		"RecordFinalArtApprovalCommand must be created via NewRecordFinalArtApprovalCommand constructor",
	)
	ErrApproverNameIsRequired   = errors.New("approver name is required")
	ErrApprovalMethodIsRequired = errors.New("approval method is required")
)

// RecordFinalArtApprovalCommand records an approval given outside the proof
// flow, for example by phone. It approves the art as a whole.
type RecordFinalArtApprovalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	name    string
	method  string
	date    time.Time
	actor   string

	guard guard.ConstructorGuard
}

// NewRecordFinalArtApprovalCommand creates the request. A zero date means
// "now" and is filled in by the handler.
func NewRecordFinalArtApprovalCommand(
	orderID kernel.UUID,
	name, method string,
	date time.Time,
	actor string,
) (RecordFinalArtApprovalCommand, error) {
	var errList []error
	errList = append(errList, orderID.Validate())
	if strings.TrimSpace(name) == "" {
		errList = append(errList, ErrApproverNameIsRequired)
	}
	if strings.TrimSpace(method) == "" {
		errList = append(errList, ErrApprovalMethodIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return RecordFinalArtApprovalCommand{}, err
	}

	return RecordFinalArtApprovalCommand{
		orderID: orderID,
		name:    strings.TrimSpace(name),
		method:  strings.TrimSpace(method),
		date:    date,
		actor:   actorOrDefault(actor),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordFinalArtApprovalCommand) Validate() error {
	return c.guard.Validate(ErrRecordFinalArtApprovalCommandIsNotConstructed)
}

func (c RecordFinalArtApprovalCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecordFinalArtApprovalCommand) Name() string {
	return c.name
}

func (c RecordFinalArtApprovalCommand) Method() string {
	return c.method
}

func (c RecordFinalArtApprovalCommand) Date() time.Time {
	return c.date
}

func (c RecordFinalArtApprovalCommand) Actor() string {
	return c.actor
}
