package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/pkg/guard"
)

var (
	ErrUpdateChecklistCommandIsNotConstructed = errors.New(
		"UpdateChecklistCommand must be created via NewUpdateChecklistCommand constructor",
	)
)

// UpdateChecklistCommand sets one flag of the prep, fulfillment, invoice or
// closeout checklist.
type UpdateChecklistCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	flag    order.ChecklistFlag
	value   bool

	guard guard.ConstructorGuard
}

// NewUpdateChecklistCommand creates the request.
func NewUpdateChecklistCommand(orderID kernel.UUID, flag order.ChecklistFlag, value bool) (UpdateChecklistCommand, error) {
	if err := errors.Join(orderID.Validate(), flag.Validate()); err != nil {
		return UpdateChecklistCommand{}, err
	}

	return UpdateChecklistCommand{
		orderID: orderID,
		flag:    flag,
		value:   value,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateChecklistCommand) Validate() error {
	return c.guard.Validate(ErrUpdateChecklistCommandIsNotConstructed)
}

func (c UpdateChecklistCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateChecklistCommand) Flag() order.ChecklistFlag {
	return c.flag
}

func (c UpdateChecklistCommand) Value() bool {
	return c.value
}
