package commands

import (
	"context"

	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/validation"
)

// ImportResult reports what an import wrote.
type ImportResult struct {
	Imported int
	// Report carries the warnings found while validating the bundle.
	Report validation.StoreReport
}

// ImportDatabaseCommandHandler handles ImportDatabaseCommand.
//
// Every order and the store-level uniqueness rules are checked before the
// first write, so an invalid bundle leaves the store exactly as it was.
type ImportDatabaseCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewImportDatabaseCommandHandler creates the handler.
func NewImportDatabaseCommandHandler(uowFactory OrderUoWFactory) ImportDatabaseCommandHandler {
	return ImportDatabaseCommandHandler{uowFactory: uowFactory}
}

// Handle validates the bundle and swaps the store contents for it. On a
// validation failure the returned result still carries the full report.
func (h *ImportDatabaseCommandHandler) Handle(ctx context.Context, cmd ImportDatabaseCommand) (ImportResult, error) {
	if err := cmd.Validate(); err != nil {
		return ImportResult{}, err
	}

	snapshots := cmd.Bundle().Orders
	report := validation.Store(snapshots)
	if err := report.Err(); err != nil {
		return ImportResult{Report: report}, err
	}

	orders := make([]*order.Order, 0, len(snapshots))
	for _, s := range snapshots {
		o, err := order.Restore(s)
		if err != nil {
			return ImportResult{Report: report}, err
		}
		orders = append(orders, o)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ImportResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err := orderRepo.RemoveAll(ctx); err != nil {
		return ImportResult{}, err
	}
	for _, o := range orders {
		if err := orderRepo.Add(ctx, o); err != nil {
			return ImportResult{}, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return ImportResult{}, err
	}

	return ImportResult{Imported: len(orders), Report: report}, nil
}
