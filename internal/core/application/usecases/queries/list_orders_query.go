package queries

import (
	"errors"
	"time"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/ports"
	"decoflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrArchiveFilterConflict = errors.New("includeArchived and archivedOnly are mutually exclusive")
)

// ListOrdersQuery lists orders for the board views. Without filters it
// returns every order that is not archived, oldest first.
type ListOrdersQuery struct {
	filter ports.OrderFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing restricted to statuses (any when
// empty). includeArchived adds archived orders; archivedOnly lists nothing
// else.
func NewListOrdersQuery(statuses []order.Stage, includeArchived, archivedOnly bool) (ListOrdersQuery, error) {
	errList := make([]error, 0, len(statuses)+1)
	for _, s := range statuses {
		errList = append(errList, s.Validate())
	}
	if includeArchived && archivedOnly {
		errList = append(errList, ErrArchiveFilterConflict)
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: ports.OrderFilter{
			Statuses:        append([]order.Stage(nil), statuses...),
			IncludeArchived: includeArchived,
			ArchivedOnly:    archivedOnly,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	ID                    kernel.UUID     `json:"id"`
	OrderNumber           string          `json:"orderNumber"`
	Status                order.Stage     `json:"status"`
	ArtStatus             order.ArtStatus `json:"artStatus"`
	CustomerName          string          `json:"customerName"`
	Company               string          `json:"company,omitempty"`
	DueDate               *time.Time      `json:"dueDate,omitempty"`
	LineItemCount         int             `json:"lineItemCount"`
	Total                 decimal.Decimal `json:"total"`
	IsArchived            bool            `json:"isArchived"`
	IsPermanentlyArchived bool            `json:"isPermanentlyArchived"`
	Version               int             `json:"version"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

func summarize(o *order.Order) OrderSummary {
	customer := o.Customer()
	return OrderSummary{
		ID:                    o.ID(),
		OrderNumber:           o.OrderNumber(),
		Status:                o.Status(),
		ArtStatus:             o.ArtStatus(),
		CustomerName:          customer.Name,
		Company:               customer.Company,
		DueDate:               o.DueDate(),
		LineItemCount:         len(o.LineItems()),
		Total:                 o.Total(),
		IsArchived:            o.IsArchived(),
		IsPermanentlyArchived: o.IsPermanentlyArchived(),
		Version:               o.Version(),
		UpdatedAt:             o.UpdatedAt(),
	}
}
