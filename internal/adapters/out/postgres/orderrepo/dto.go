// Package orderrepo persists order aggregates in PostgreSQL with GORM.
//
// Each order is one row. The columns that listings filter on are kept
// relational; the rest of the aggregate is stored as the JSON snapshot used
// by exports, so a row and an exported order always carry the same data.
package orderrepo

import (
	"encoding/json"
	"strings"
	"time"

	"decoflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"size:64;not null"`
	// NumberKey is the lower-cased order number; it makes numbers unique
	// regardless of case.
	NumberKey  string         `gorm:"size:64;not null;uniqueIndex"`
	Status     int            `gorm:"not null;index"`
	Version    int            `gorm:"not null"`
	IsArchived bool           `gorm:"not null;index"`
	CreatedAt  time.Time      `gorm:"not null;index"`
	UpdatedAt  time.Time      `gorm:"not null"`
	Payload    datatypes.JSON `gorm:"type:jsonb;not null"`
}

// TableName keeps the table name independent of GORM's pluralization.
func (OrderDTO) TableName() string {
	return "orders"
}

func numberKey(number string) string {
	return strings.ToLower(strings.TrimSpace(number))
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	payload, err := json.Marshal(aggregate.Snapshot())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		NumberKey:   numberKey(aggregate.OrderNumber()),
		Status:      aggregate.Status().Number(),
		Version:     aggregate.Version(),
		IsArchived:  aggregate.IsArchived(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Payload:     datatypes.JSON(payload),
	}, nil
}

// toDomain rebuilds the aggregate from the payload. The relational columns
// are derived from it and are not read back.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var snapshot order.Snapshot
	if err := json.Unmarshal(dto.Payload, &snapshot); err != nil {
		return nil, err
	}
	return order.Restore(snapshot)
}
