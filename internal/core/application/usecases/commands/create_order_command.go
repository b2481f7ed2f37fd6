package commands

import (
	"errors"
	"fmt"
	"time"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateLeadCommand or NewCreateQuoteCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// CreateMode selects the stage a new order starts in.
type CreateMode int

const (
	// CreateLead starts the order in Lead with qualification data.
	CreateLead CreateMode = iota + 1
	// CreateQuote starts the order directly in Quote.
	CreateQuote
)

// CreateOrderCommand represents a request to create a new order, either as a
// sales lead or directly as a quote.
//
// Example:
//
//	cmd, err := NewCreateQuoteCommand(kernel.NewUUID(), "", order.Customer{Name: "Acme"}, items, nil, "dana")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock())
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	mode        CreateMode
	orderNumber string
	customer    order.Customer
	leadInfo    order.LeadInfo
	lineItems   []order.LineItemInput
	dueDate     *time.Time
	actor       string

	guard guard.ConstructorGuard
}

// NewCreateLeadCommand creates a command that registers a new lead. An empty
// orderNumber is replaced by the next free LEAD-<n> number.
func NewCreateLeadCommand(
	orderID kernel.UUID,
	orderNumber string,
	customer order.Customer,
	leadInfo order.LeadInfo,
	actor string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		mode:        CreateLead,
		orderNumber: orderNumber,
		leadInfo:    leadInfo,
		actor:       actorOrDefault(actor),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// NewCreateQuoteCommand creates a command that registers a new quote. An
// empty orderNumber is replaced by the next free TBD-<n> number.
func NewCreateQuoteCommand(
	orderID kernel.UUID,
	orderNumber string,
	customer order.Customer,
	lineItems []order.LineItemInput,
	dueDate *time.Time,
	actor string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		mode:        CreateQuote,
		orderNumber: orderNumber,
		lineItems:   append([]order.LineItemInput(nil), lineItems...),
		dueDate:     dueDate,
		actor:       actorOrDefault(actor),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Mode() CreateMode {
	return c.mode
}

func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) LeadInfo() order.LeadInfo {
	return c.leadInfo
}

func (c CreateOrderCommand) LineItems() []order.LineItemInput {
	return c.lineItems
}

func (c CreateOrderCommand) DueDate() *time.Time {
	return c.dueDate
}

func (c CreateOrderCommand) Actor() string {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if customer.Name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customer = customer
	return nil
}

func (m CreateMode) prefix() string {
	if m == CreateLead {
		return leadNumberPrefix
	}
	return quoteNumberPrefix
}

func (m CreateMode) String() string {
	switch m {
	case CreateLead:
		return "lead"
	case CreateQuote:
		return "quote"
	default:
		return fmt.Sprintf("CreateMode(%d)", int(m))
	}
}
