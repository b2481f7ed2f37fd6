// Package queries holds the read side of the order store. Handlers never
// open a unit of work; they read through an OrderReader, which every
// repository adapter satisfies outside of a transaction.
package queries

import (
	"context"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/ports"
)

// OrderReader is the read-only part of ports.OrderRepository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetByNumber(ctx context.Context, number string) (*order.Order, error)
	List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error)
}

var everyOrder = ports.OrderFilter{IncludeArchived: true}

func snapshots(orders []*order.Order) []order.Snapshot {
	out := make([]order.Snapshot, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Snapshot())
	}
	return out
}
