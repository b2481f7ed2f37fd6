package queries

import (
	"context"

	"decoflow/internal/core/application/exchange"
	"decoflow/internal/core/domain/model/kernel"
)

// ExportDatabaseQueryHandler builds export bundles. The autosave job and the
// export endpoint share it.
type ExportDatabaseQueryHandler struct {
	reader OrderReader
	clock  kernel.Clock
}

// NewExportDatabaseQueryHandler creates the handler. clock stamps
// metadata.exportedAt.
func NewExportDatabaseQueryHandler(reader OrderReader, clock kernel.Clock) ExportDatabaseQueryHandler {
	return ExportDatabaseQueryHandler{reader: reader, clock: clock}
}

func (h ExportDatabaseQueryHandler) Handle(ctx context.Context, query ExportDatabaseQuery) (exchange.Bundle, error) {
	if err := query.Validate(); err != nil {
		return exchange.Bundle{}, err
	}

	orders, err := h.reader.List(ctx, everyOrder)
	if err != nil {
		return exchange.Bundle{}, err
	}
	return exchange.NewBundle(snapshots(orders), h.clock.Now()), nil
}
