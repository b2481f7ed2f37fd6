package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/pricing"
	"decoflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItem is one SKU, color, size and decoration combination of an order.
// Price is always computed by pricing.UnitPrice from the other fields.
type LineItem struct {
	ID                    kernel.UUID            `json:"id"`
	ItemNumber            string                 `json:"itemNumber"`
	Name                  string                 `json:"name"`
	Color                 string                 `json:"color"`
	Size                  string                 `json:"size"`
	Qty                   int                    `json:"qty"`
	DecorationType        pricing.DecorationType `json:"decorationType"`
	DecorationPlacements  int                    `json:"decorationPlacements"`
	ScreenPrintColors     int                    `json:"screenPrintColors"`
	StitchCountTier       pricing.StitchTier     `json:"stitchCountTier"`
	DTFSize               pricing.DTFSize        `json:"dtfSize"`
	DecorationDescription string                 `json:"decorationDescription,omitempty"`
	IsPlusSize            bool                   `json:"isPlusSize"`
	Cost                  decimal.Decimal        `json:"cost"`
	Price                 decimal.Decimal        `json:"price"`

	Ordered     bool       `json:"ordered"`
	OrderedAt   *time.Time `json:"orderedAt,omitempty"`
	Received    bool       `json:"received"`
	ReceivedAt  *time.Time `json:"receivedAt,omitempty"`
	Decorated   bool       `json:"decorated"`
	DecoratedAt *time.Time `json:"decoratedAt,omitempty"`
	Packed      bool       `json:"packed"`
	PackedAt    *time.Time `json:"packedAt,omitempty"`
}

// LineItemInput carries the caller-editable fields of a line item.
type LineItemInput struct {
	ItemNumber            string
	Name                  string
	Color                 string
	Size                  string
	Qty                   int
	DecorationType        pricing.DecorationType
	DecorationPlacements  int
	ScreenPrintColors     int
	StitchCountTier       pricing.StitchTier
	DTFSize               pricing.DTFSize
	DecorationDescription string
	Cost                  decimal.Decimal
}

// PricingInput returns the pricing parameters of the input. Preview and
// commit both go through it.
func (in LineItemInput) PricingInput() pricing.Input {
	return pricing.Input{
		UnitCost:          in.Cost,
		Decoration:        in.DecorationType,
		Placements:        in.DecorationPlacements,
		IsPlusSize:        pricing.IsPlusSize(in.Size),
		ScreenPrintColors: in.ScreenPrintColors,
		StitchTier:        in.StitchCountTier,
		DTFSize:           in.DTFSize,
	}
}

// NewLineItem creates a priced line item with all production flags cleared.
func NewLineItem(id kernel.UUID, in LineItemInput) (LineItem, error) {
	item := LineItem{ID: id}
	if err := errors.Join(id.Validate(), item.apply(in)); err != nil {
		return LineItem{}, err
	}
	return item, nil
}

// apply copies the editable fields and re-prices the item. Production flags
// are left alone.
func (li *LineItem) apply(in LineItemInput) error {
	name := strings.TrimSpace(in.Name)
	var problems []error
	if name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("line item name"))
	}
	if in.Qty <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"qty is invalid",
			fmt.Errorf("%d is not greater than 0", in.Qty),
		))
	}
	price, err := pricing.UnitPrice(in.PricingInput())
	problems = append(problems, err)
	if err := errors.Join(problems...); err != nil {
		return err
	}

	li.ItemNumber = strings.TrimSpace(in.ItemNumber)
	li.Name = name
	li.Color = strings.TrimSpace(in.Color)
	li.Size = strings.TrimSpace(in.Size)
	li.Qty = in.Qty
	li.DecorationType = in.DecorationType
	li.DecorationPlacements = in.DecorationPlacements
	li.ScreenPrintColors = in.ScreenPrintColors
	li.StitchCountTier = in.StitchCountTier
	li.DTFSize = in.DTFSize
	li.DecorationDescription = strings.TrimSpace(in.DecorationDescription)
	li.IsPlusSize = pricing.IsPlusSize(in.Size)
	li.Cost = in.Cost
	li.Price = price
	return nil
}

// Input returns the editable fields of li.
func (li LineItem) Input() LineItemInput {
	return LineItemInput{
		ItemNumber:            li.ItemNumber,
		Name:                  li.Name,
		Color:                 li.Color,
		Size:                  li.Size,
		Qty:                   li.Qty,
		DecorationType:        li.DecorationType,
		DecorationPlacements:  li.DecorationPlacements,
		ScreenPrintColors:     li.ScreenPrintColors,
		StitchCountTier:       li.StitchCountTier,
		DTFSize:               li.DTFSize,
		DecorationDescription: li.DecorationDescription,
		Cost:                  li.Cost,
	}
}

// ProductionFlag names one of the per-item production flags.
type ProductionFlag string

const (
	FlagOrdered   ProductionFlag = "ordered"
	FlagReceived  ProductionFlag = "received"
	FlagDecorated ProductionFlag = "decorated"
	FlagPacked    ProductionFlag = "packed"
)

// ProductionFlags lists every ProductionFlag.
func ProductionFlags() []ProductionFlag {
	return []ProductionFlag{FlagOrdered, FlagReceived, FlagDecorated, FlagPacked}
}

// Validate rejects unknown flags.
func (f ProductionFlag) Validate() error {
	switch f {
	case FlagOrdered, FlagReceived, FlagDecorated, FlagPacked:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("production flag is invalid", fmt.Errorf("%q is not a production flag", string(f)))
}

// setProgress updates one production flag and reports whether anything
// changed. Packing an undecorated item is a no-op, and clearing decorated
// also clears packed.
func (li *LineItem) setProgress(flag ProductionFlag, value bool, at time.Time) bool {
	switch flag {
	case FlagOrdered:
		return setFlag(&li.Ordered, &li.OrderedAt, value, at)
	case FlagReceived:
		return setFlag(&li.Received, &li.ReceivedAt, value, at)
	case FlagDecorated:
		changed := setFlag(&li.Decorated, &li.DecoratedAt, value, at)
		if !value {
			changed = setFlag(&li.Packed, &li.PackedAt, false, at) || changed
		}
		return changed
	case FlagPacked:
		if value && !li.Decorated {
			return false
		}
		return setFlag(&li.Packed, &li.PackedAt, value, at)
	}
	return false
}

// setFlag sets a flag and its paired timestamp. The timestamp is cleared
// together with the flag.
func setFlag(flag *bool, ts **time.Time, value bool, at time.Time) bool {
	if *flag == value {
		return false
	}
	*flag = value
	if value {
		*ts = &at
	} else {
		*ts = nil
	}
	return true
}

func cloneLineItem(li LineItem) LineItem {
	li.OrderedAt = cloneTime(li.OrderedAt)
	li.ReceivedAt = cloneTime(li.ReceivedAt)
	li.DecoratedAt = cloneTime(li.DecoratedAt)
	li.PackedAt = cloneTime(li.PackedAt)
	return li
}

func cloneLineItems(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, li := range items {
		out = append(out, cloneLineItem(li))
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
