package queries

import (
	"context"
	"errors"

	"decoflow/internal/core/domain/validation"
	"decoflow/internal/pkg/guard"
)

var ErrValidateStoreQueryIsNotConstructed = errors.New(
	"ValidateStoreQuery must be created via NewValidateStoreQuery constructor",
)

// ValidateStoreQuery re-runs the structural checks over every stored order,
// archived ones included, and the store-level uniqueness rules.
type ValidateStoreQuery struct {
	guard guard.ConstructorGuard
}

// NewValidateStoreQuery creates the query.
func NewValidateStoreQuery() ValidateStoreQuery {
	return ValidateStoreQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ValidateStoreQuery) Validate() error {
	return q.guard.Validate(ErrValidateStoreQueryIsNotConstructed)
}

// ValidateStoreQueryHandler produces a validation.StoreReport.
type ValidateStoreQueryHandler struct {
	reader OrderReader
}

// NewValidateStoreQueryHandler creates the handler.
func NewValidateStoreQueryHandler(reader OrderReader) ValidateStoreQueryHandler {
	return ValidateStoreQueryHandler{reader: reader}
}

// Handle returns the report. An invalid store is not an error; callers read
// report.Valid.
func (h ValidateStoreQueryHandler) Handle(ctx context.Context, query ValidateStoreQuery) (validation.StoreReport, error) {
	if err := query.Validate(); err != nil {
		return validation.StoreReport{}, err
	}

	orders, err := h.reader.List(ctx, everyOrder)
	if err != nil {
		return validation.StoreReport{}, err
	}
	return validation.Store(snapshots(orders)), nil
}
