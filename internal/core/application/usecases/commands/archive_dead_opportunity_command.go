package commands

import (
	"errors"
	"strings"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrArchiveDeadOpportunityCommandIsNotConstructed = errors.New(
		"ArchiveDeadOpportunityCommand must be created via NewArchiveDeadOpportunityCommand constructor",
	)
)

// ArchiveDeadOpportunityCommand abandons a quote the customer did not accept,
// optionally spawning a follow-up lead for the same customer.
type ArchiveDeadOpportunityCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	spawnLead bool
	reason    string
	actor     string

	guard guard.ConstructorGuard
}

// NewArchiveDeadOpportunityCommand creates the request.
func NewArchiveDeadOpportunityCommand(
	orderID kernel.UUID,
	spawnLead bool,
	reason string,
	actor string,
) (ArchiveDeadOpportunityCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ArchiveDeadOpportunityCommand{}, err
	}

	return ArchiveDeadOpportunityCommand{
		orderID:   orderID,
		spawnLead: spawnLead,
		reason:    strings.TrimSpace(reason),
		actor:     actorOrDefault(actor),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveDeadOpportunityCommand) Validate() error {
	return c.guard.Validate(ErrArchiveDeadOpportunityCommandIsNotConstructed)
}

func (c ArchiveDeadOpportunityCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ArchiveDeadOpportunityCommand) SpawnLead() bool {
	return c.spawnLead
}

func (c ArchiveDeadOpportunityCommand) Reason() string {
	return c.reason
}

func (c ArchiveDeadOpportunityCommand) Actor() string {
	return c.actor
}
