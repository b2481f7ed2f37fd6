package pricing

import (
	"errors"
	"fmt"

	"decoflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	costMultiplier         = decimal.NewFromInt(2)
	screenPrintColorCharge = decimal.NewFromInt(1)
	screenPrintPlacement   = decimal.NewFromInt(2)
	dtfStandardCharge      = decimal.NewFromInt(5)
	dtfLargeCharge         = decimal.NewFromInt(8)
	stitches8kTo12kCharge  = decimal.NewFromInt(10)
	stitches12kPlusCharge  = decimal.NewFromInt(20)
	plusSizeCharge         = decimal.NewFromInt(2)
)

// Input holds the decoration parameters of one line item.
type Input struct {
	UnitCost          decimal.Decimal
	Decoration        DecorationType
	Placements        int
	IsPlusSize        bool
	ScreenPrintColors int
	StitchTier        StitchTier
	DTFSize           DTFSize
}

// UnitPrice returns the selling unit price, rounded to cents.
//
// Example:
//
//	price, _ := pricing.UnitPrice(pricing.Input{
//	    UnitCost:          decimal.NewFromInt(10),
//	    Decoration:        pricing.ScreenPrint,
//	    Placements:        1,
//	    ScreenPrintColors: 2,
//	})
//	// price == 24.00
func UnitPrice(in Input) (decimal.Decimal, error) {
	if err := in.validate(); err != nil {
		return decimal.Zero, err
	}

	price := in.UnitCost.Mul(costMultiplier)

	switch in.Decoration {
	case ScreenPrint:
		price = price.
			Add(screenPrintColorCharge.Mul(decimal.NewFromInt(int64(in.ScreenPrintColors)))).
			Add(screenPrintPlacement.Mul(decimal.NewFromInt(int64(in.Placements))))
	case DTF:
		switch in.DTFSize {
		case DTFStandard:
			price = price.Add(dtfStandardCharge)
		case DTFLarge:
			price = price.Add(dtfLargeCharge)
		case NoDTFSize:
		}
	case Embroidery:
		switch in.StitchTier {
		case Stitches8kTo12k:
			price = price.Add(stitches8kTo12kCharge)
		case Stitches12kPlus:
			price = price.Add(stitches12kPlusCharge)
		case NoStitchTier, StitchesUnder8k:
		}
	case OtherDecoration, UnknownDecoration:
	}

	if in.IsPlusSize {
		price = price.Add(plusSizeCharge)
	}

	return price.Round(2), nil
}

func (in Input) validate() error {
	var problems []error
	if in.UnitCost.IsNegative() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"unit cost is invalid",
			fmt.Errorf("%s is negative", in.UnitCost.String()),
		))
	}
	if err := in.Decoration.Validate(); err != nil {
		problems = append(problems, err)
	}
	if in.Placements <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"decoration placements is invalid",
			fmt.Errorf("%d is not greater than 0", in.Placements),
		))
	}
	if in.ScreenPrintColors < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"screen print colors is invalid",
			fmt.Errorf("%d is negative", in.ScreenPrintColors),
		))
	}
	problems = append(problems, in.StitchTier.Validate(), in.DTFSize.Validate())
	return errors.Join(problems...)
}
