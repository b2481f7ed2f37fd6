package queries

import (
	"errors"

	"decoflow/internal/pkg/guard"
)

var ErrExportDatabaseQueryIsNotConstructed = errors.New(
	"ExportDatabaseQuery must be created via NewExportDatabaseQuery constructor",
)

// ExportDatabaseQuery requests the full export bundle: metadata, every
// order including archived ones, and the enum schema.
//
// Example:
//
//	bundle, err := handler.Handle(ctx, NewExportDatabaseQuery())
//	if err != nil {
//	    return err
//	}
//	data, _ := json.MarshalIndent(bundle, "", "  ")
type ExportDatabaseQuery struct {
	guard guard.ConstructorGuard
}

// NewExportDatabaseQuery creates the query.
func NewExportDatabaseQuery() ExportDatabaseQuery {
	return ExportDatabaseQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ExportDatabaseQuery) Validate() error {
	return q.guard.Validate(ErrExportDatabaseQueryIsNotConstructed)
}
