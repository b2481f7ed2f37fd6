package commands

import (
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNothingToUpdate = errors.New("update carries no changes")
)

// LineItemUpdate replaces the editable fields of one line item.
type LineItemUpdate struct {
	ID    kernel.UUID
	Input order.LineItemInput
}

// LineItemChanges groups the line-item edits of an update. They are applied
// in the order Add, Update, Remove.
type LineItemChanges struct {
	Add    []order.LineItemInput
	Update []LineItemUpdate
	Remove []kernel.UUID
}

func (c LineItemChanges) isEmpty() bool {
	return len(c.Add) == 0 && len(c.Update) == 0 && len(c.Remove) == 0
}

// UpdateOrderCommand edits the descriptive fields and line items of an order.
// Workflow fields are not reachable through it; stage changes have their own
// commands.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	details   order.Details
	lineItems LineItemChanges
	actor     string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an update. At least one field or line-item
// change is required.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	details order.Details,
	lineItems LineItemChanges,
	actor string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		details:   details,
		lineItems: lineItems,
		actor:     actorOrDefault(actor),
		guard:     guard.NewConstructorGuard(),
	}

	var empty error
	if details == (order.Details{}) && lineItems.isEmpty() {
		empty = ErrNothingToUpdate
	}

	errList := []error{orderID.Validate(), empty}
	for _, u := range lineItems.Update {
		errList = append(errList, u.ID.Validate())
	}
	for _, id := range lineItems.Remove {
		errList = append(errList, id.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Details() order.Details {
	return c.details
}

func (c UpdateOrderCommand) LineItems() LineItemChanges {
	return c.lineItems
}

func (c UpdateOrderCommand) Actor() string {
	return c.actor
}
