package queries

import (
	"context"
	"errors"

	"decoflow/internal/core/domain/pricing"
	"decoflow/internal/pkg/errs"
	"decoflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPreviewPriceQueryIsNotConstructed = errors.New(
		"PreviewPriceQuery must be created via NewPreviewPriceQuery constructor",
	)
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// PreviewPriceQuery prices a line item before it is saved, with the same
// engine the order uses on commit.
type PreviewPriceQuery struct {
	input pricing.Input
	qty   int

	guard guard.ConstructorGuard
}

// NewPreviewPriceQuery creates the query. qty only scales the line total
// and may be zero.
func NewPreviewPriceQuery(input pricing.Input, qty int) (PreviewPriceQuery, error) {
	if qty < 0 {
		return PreviewPriceQuery{}, errs.NewValueIsInvalidErrorWithCause("qty", ErrNegativeQuantity)
	}
	return PreviewPriceQuery{input: input, qty: qty, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q PreviewPriceQuery) Validate() error {
	return q.guard.Validate(ErrPreviewPriceQueryIsNotConstructed)
}

// PreviewPriceResponse is the priced line.
type PreviewPriceResponse struct {
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// PreviewPriceQueryHandler runs the pricing engine. It reads no state.
type PreviewPriceQueryHandler struct{}

// NewPreviewPriceQueryHandler creates the handler.
func NewPreviewPriceQueryHandler() PreviewPriceQueryHandler {
	return PreviewPriceQueryHandler{}
}

func (h PreviewPriceQueryHandler) Handle(_ context.Context, query PreviewPriceQuery) (PreviewPriceResponse, error) {
	if err := query.Validate(); err != nil {
		return PreviewPriceResponse{}, err
	}

	unit, err := pricing.UnitPrice(query.input)
	if err != nil {
		return PreviewPriceResponse{}, err
	}
	return PreviewPriceResponse{
		UnitPrice: unit,
		LineTotal: unit.Mul(decimal.NewFromInt(int64(query.qty))),
	}, nil
}
