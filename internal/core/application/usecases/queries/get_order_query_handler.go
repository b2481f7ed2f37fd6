package queries

import (
	"context"

	"decoflow/internal/core/domain/model/order"
)

// GetOrderQueryHandler returns the full record of one order.
type GetOrderQueryHandler struct {
	reader OrderReader
}

// NewGetOrderQueryHandler creates the handler.
func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns the order snapshot or an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	var (
		o   *order.Order
		err error
	)
	if query.ByNumber() {
		o, err = h.reader.GetByNumber(ctx, query.OrderNumber())
	} else {
		o, err = h.reader.Get(ctx, query.OrderID())
	}
	if err != nil {
		return order.Snapshot{}, err
	}
	return o.Snapshot(), nil
}
