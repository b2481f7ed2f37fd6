package queries

import (
	"errors"
	"strings"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery or NewGetOrderByNumberQuery constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// GetOrderQuery looks one order up by id or by order number.
//
// Example:
//
//	query, _ := NewGetOrderByNumberQuery("TBD-0042")
//	snapshot, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown number
//	}
type GetOrderQuery struct {
	orderID kernel.UUID
	number  string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a lookup by id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrderByNumberQuery creates a lookup by order number. Matching is
// case-insensitive.
func NewGetOrderByNumberQuery(number string) (GetOrderQuery, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return GetOrderQuery{}, ErrOrderNumberIsRequired
	}
	return GetOrderQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) OrderNumber() string {
	return q.number
}

// ByNumber reports whether the lookup goes by order number.
func (q GetOrderQuery) ByNumber() bool {
	return q.number != ""
}
