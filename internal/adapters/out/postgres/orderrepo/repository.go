package orderrepo

import (
	"context"
	"errors"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/ports"
	"decoflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// Update is guarded by the optimistic version: the row is only written when
// its stored version is the one the aggregate was loaded with.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker records the aggregates written within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order. Id and order number collisions are reported as
// DuplicateError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	var existing OrderDTO
	err = r.db.WithContext(ctx).
		Select("id", "order_number").
		Where("id = ? OR number_key = ?", dto.ID, dto.NumberKey).
		Take(&existing).Error
	switch {
	case err == nil:
		if existing.ID == dto.ID {
			return errs.NewDuplicateError("id", aggregate.ID())
		}
		return errs.NewDuplicateError("orderNumber", aggregate.OrderNumber())
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateError("orderNumber", aggregate.OrderNumber())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes an existing order whose version has already been bumped.
//
// Returns:
//   - ObjectNotFoundError if the order does not exist
//   - ConflictError if another writer saved the order in between
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	expected := aggregate.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Updates(map[string]any{
			"order_number": dto.OrderNumber,
			"number_key":   dto.NumberKey,
			"status":       dto.Status,
			"version":      dto.Version,
			"is_archived":  dto.IsArchived,
			"updated_at":   dto.UpdatedAt,
			"payload":      dto.Payload,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateError("orderNumber", aggregate.OrderNumber())
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err = r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConflictError(aggregate.ID().String(), expected)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its number, ignoring case.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "number_key = ?", numberKey(number)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderNumber", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns the orders passing filter, oldest first.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Order("created_at, order_number")

	switch {
	case filter.ArchivedOnly:
		query = query.Where("is_archived = ?", true)
	case !filter.IncludeArchived:
		query = query.Where("is_archived = ?", false)
	}
	if len(filter.Statuses) > 0 {
		numbers := make([]int, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			numbers = append(numbers, s.Number())
		}
		query = query.Where("status IN ?", numbers)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Count returns the number of rows, archived orders included.
func (r *GormOrderRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// RemoveAll deletes every order.
func (r *GormOrderRepository) RemoveAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&OrderDTO{}).Error
}
