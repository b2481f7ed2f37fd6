package commands

import (
	"context"
	"fmt"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/validation"
)

// mutation applies one domain operation to a loaded order. It reports
// whether anything changed; unchanged orders are not written back.
type mutation func(o *order.Order) (bool, error)

// changed adapts an operation that always changes the order when it succeeds.
func changed(op func(o *order.Order) error) mutation {
	return func(o *order.Order) (bool, error) {
		if err := op(o); err != nil {
			return false, err
		}
		return true, nil
	}
}

// mutateOrder runs the load, apply, validate, bump, persist cycle shared by
// every command that changes a single order.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	apply mutation,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	modified, err := apply(aggregate)
	if err != nil {
		return nil, err
	}
	if !modified {
		return aggregate, nil
	}

	if err = checkOrder(aggregate); err != nil {
		return nil, err
	}

	aggregate.BumpVersion()
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// checkOrder re-validates the aggregate as a plain record before it is
// written. Warnings never block a write.
func checkOrder(o *order.Order) error {
	return validation.Order(o.Snapshot()).Err(fmt.Sprintf("order %s", o.OrderNumber()))
}
