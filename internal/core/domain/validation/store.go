package validation

import (
	"fmt"
	"strings"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
)

// OrderReport is the validation result of one order in a store.
type OrderReport struct {
	ID          kernel.UUID `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Result
}

// StoreReport is the result of validating a whole collection of orders.
type StoreReport struct {
	Valid  bool          `json:"valid"`
	Orders []OrderReport `json:"orders"`
	// Errors holds the store-level problems, such as duplicate ids.
	Errors []string `json:"errors"`
}

// Err returns a ValidationError listing every problem of the store, or nil.
func (s StoreReport) Err() error {
	if s.Valid {
		return nil
	}
	problems := append([]string{}, s.Errors...)
	for _, o := range s.Orders {
		for _, e := range o.Errors {
			problems = append(problems, fmt.Sprintf("%s: %s", o.OrderNumber, e))
		}
	}
	return Result{Errors: problems}.Err("store")
}

// Store validates every order and checks that ids and order numbers are
// unique across the collection. Order numbers compare case-insensitively.
func Store(orders []order.Snapshot) StoreReport {
	report := StoreReport{
		Valid:  true,
		Orders: make([]OrderReport, 0, len(orders)),
		Errors: []string{},
	}

	ids := make(map[kernel.UUID]string, len(orders))
	numbers := make(map[string]kernel.UUID, len(orders))
	for _, s := range orders {
		r := Order(s)
		report.Orders = append(report.Orders, OrderReport{ID: s.ID, OrderNumber: s.OrderNumber, Result: r})
		if !r.Valid() {
			report.Valid = false
		}

		if other, dup := ids[s.ID]; dup {
			report.Errors = append(report.Errors,
				fmt.Sprintf("duplicate id %s (orders %s and %s)", s.ID, other, s.OrderNumber))
		} else {
			ids[s.ID] = s.OrderNumber
		}
		key := orderNumberKey(s.OrderNumber)
		if _, dup := numbers[key]; dup {
			report.Errors = append(report.Errors, fmt.Sprintf("duplicate orderNumber %s", s.OrderNumber))
		} else {
			numbers[key] = s.ID
		}
	}
	if len(report.Errors) > 0 {
		report.Valid = false
	}
	return report
}

func orderNumberKey(number string) string {
	return strings.ToLower(strings.TrimSpace(number))
}
