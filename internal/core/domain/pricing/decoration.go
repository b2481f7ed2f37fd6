package pricing

import (
	"fmt"
	"strings"

	"decoflow/internal/pkg/errs"
)

// DecorationType is the method used to decorate a line item.
type DecorationType int

const (
	// UnknownDecoration is the zero value and never valid.
	UnknownDecoration DecorationType = iota
	ScreenPrint
	Embroidery
	DTF
	OtherDecoration
)

var decorationTypeStrings = map[DecorationType]string{
	ScreenPrint:     "ScreenPrint",
	Embroidery:      "Embroidery",
	DTF:             "DTF",
	OtherDecoration: "Other",
}

// DecorationTypes lists every valid decoration type in declaration order.
func DecorationTypes() []DecorationType {
	return []DecorationType{ScreenPrint, Embroidery, DTF, OtherDecoration}
}

func (d DecorationType) String() string {
	if s, ok := decorationTypeStrings[d]; ok {
		return s
	}
	return "Unknown"
}

// Validate returns an error for UnknownDecoration and out-of-range values.
func (d DecorationType) Validate() error {
	if _, ok := decorationTypeStrings[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"decoration type is invalid",
			fmt.Errorf("%d is not a valid decoration type", d),
		)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d DecorationType) MarshalText() ([]byte, error) {
	if _, ok := decorationTypeStrings[d]; !ok {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognised names decode
// to UnknownDecoration and are reported by validation.
func (d *DecorationType) UnmarshalText(data []byte) error {
	*d = ParseDecorationType(string(data))
	return nil
}

// ParseDecorationType maps a name to its DecorationType, ignoring case.
func ParseDecorationType(s string) DecorationType {
	for k, v := range decorationTypeStrings {
		if strings.EqualFold(v, strings.TrimSpace(s)) {
			return k
		}
	}
	return UnknownDecoration
}

// StitchTier is the embroidery stitch-count band.
type StitchTier int

const (
	// NoStitchTier means the tier was not set; it prices like the lowest band.
	NoStitchTier StitchTier = iota
	StitchesUnder8k
	Stitches8kTo12k
	Stitches12kPlus
)

var stitchTierStrings = map[StitchTier]string{
	StitchesUnder8k: "<8k",
	Stitches8kTo12k: "8k-12k",
	Stitches12kPlus: "12k+",
}

func (s StitchTier) String() string {
	if str, ok := stitchTierStrings[s]; ok {
		return str
	}
	return ""
}

// Validate accepts NoStitchTier and the three bands.
func (s StitchTier) Validate() error {
	if _, ok := stitchTierStrings[s]; !ok && s != NoStitchTier {
		return errs.NewValueIsInvalidErrorWithCause(
			"stitch count tier is invalid",
			fmt.Errorf("%d is not a valid stitch count tier", s),
		)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s StitchTier) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StitchTier) UnmarshalText(data []byte) error {
	str := strings.TrimSpace(string(data))
	if str == "" {
		*s = NoStitchTier
		return nil
	}
	for k, v := range stitchTierStrings {
		if v == str {
			*s = k
			return nil
		}
	}
	*s = StitchTier(-1)
	return nil
}

// DTFSize is the transfer size of a DTF print.
type DTFSize int

const (
	// NoDTFSize means the size was not set; no surcharge applies.
	NoDTFSize DTFSize = iota
	DTFStandard
	DTFLarge
)

var dtfSizeStrings = map[DTFSize]string{
	DTFStandard: "Standard",
	DTFLarge:    "Large",
}

func (s DTFSize) String() string {
	if str, ok := dtfSizeStrings[s]; ok {
		return str
	}
	return ""
}

// Validate accepts NoDTFSize, Standard and Large.
func (s DTFSize) Validate() error {
	if _, ok := dtfSizeStrings[s]; !ok && s != NoDTFSize {
		return errs.NewValueIsInvalidErrorWithCause(
			"dtf size is invalid",
			fmt.Errorf("%d is not a valid dtf size", s),
		)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s DTFSize) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *DTFSize) UnmarshalText(data []byte) error {
	str := strings.TrimSpace(string(data))
	if str == "" {
		*s = NoDTFSize
		return nil
	}
	for k, v := range dtfSizeStrings {
		if strings.EqualFold(v, str) {
			*s = k
			return nil
		}
	}
	*s = DTFSize(-1)
	return nil
}

var plusSizes = map[string]struct{}{
	"2XL": {},
	"3XL": {},
	"4XL": {},
}

// IsPlusSize reports whether a garment size carries the plus-size surcharge.
func IsPlusSize(size string) bool {
	_, ok := plusSizes[strings.ToUpper(strings.TrimSpace(size))]
	return ok
}
