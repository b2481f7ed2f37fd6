package order

import (
	"fmt"
	"strings"

	"decoflow/internal/pkg/errs"
)

// Stage is the position of an order in the decoration workflow.
//
// Stages are strictly ordered and an order moves forward by exactly one
// stage at a time:
//
//	Lead ─> Quote ─> Approval ─> Art Confirmation ─> Inventory Order ─>
//	Production Prep ─> Inventory Received ─> Production ─> Fulfillment ─>
//	Invoice ─> Closeout ─> Closed
//
// Closed is terminal but may be reopened to any stage from Quote to
// Closeout. Moving back one stage is allowed everywhere except from Lead
// and from Closed.
type Stage int

const (
	// UnknownStage represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	UnknownStage Stage = iota
	Lead
	Quote
	Approval
	ArtConfirmation
	InventoryOrder
	ProductionPrep
	InventoryReceived
	Production
	Fulfillment
	Invoice
	Closeout
	Closed
)

// getStageStrings returns the persisted name of every valid stage.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Lead:              "Lead",
		Quote:             "Quote",
		Approval:          "Approval",
		ArtConfirmation:   "Art Confirmation",
		InventoryOrder:    "Inventory Order",
		ProductionPrep:    "Production Prep",
		InventoryReceived: "Inventory Received",
		Production:        "Production",
		Fulfillment:       "Fulfillment",
		Invoice:           "Invoice",
		Closeout:          "Closeout",
		Closed:            "Closed",
	}
}

// Stages returns every valid stage in workflow order.
func Stages() []Stage {
	return []Stage{
		Lead, Quote, Approval, ArtConfirmation, InventoryOrder, ProductionPrep,
		InventoryReceived, Production, Fulfillment, Invoice, Closeout, Closed,
	}
}

// ReopenTargets returns the stages a Closed order may be reopened to.
func ReopenTargets() []Stage {
	return []Stage{
		Quote, Approval, ArtConfirmation, InventoryOrder, ProductionPrep,
		InventoryReceived, Production, Fulfillment, Invoice, Closeout,
	}
}

// Validate checks that s is one of the twelve workflow stages.
func (s Stage) Validate() error {
	if _, ok := getStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage, or "Unknown".
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Number returns the stage number, Lead=0 through Closed=11, or -1 for an
// invalid stage.
func (s Stage) Number() int {
	if s.Validate() != nil {
		return -1
	}
	return int(s) - int(Lead)
}

// StageFromNumber is the inverse of Number.
func StageFromNumber(n int) (Stage, error) {
	s := Stage(n + int(Lead))
	if err := s.Validate(); err != nil {
		return UnknownStage, errs.NewValueIsOutOfRangeError("stage number", n, Lead.Number(), Closed.Number())
	}
	return s, nil
}

// ParseStage parses a persisted stage name. Matching ignores case and
// surrounding whitespace.
func ParseStage(name string) (Stage, error) {
	name = strings.TrimSpace(name)
	for s, str := range getStageStrings() {
		if strings.EqualFold(str, name) {
			return s, nil
		}
	}
	return UnknownStage, errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%q is not a valid stage", name))
}

// MarshalText implements encoding.TextMarshaler.
func (s Stage) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stage) UnmarshalText(data []byte) error {
	parsed, err := ParseStage(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsTerminal reports whether s is Closed.
func (s Stage) IsTerminal() bool {
	return s == Closed
}

// Next returns the stage after s.
//
// Returns:
//   - the following stage
//   - InvalidTransitionError if s is Closed or invalid
func (s Stage) Next() (Stage, error) {
	if err := s.Validate(); err != nil {
		return UnknownStage, err
	}
	if s == Closed {
		return UnknownStage, errs.NewInvalidTransitionError(s.String(), "", "closed orders can only be reopened")
	}
	return s + 1, nil
}

// Previous returns the stage before s for the move-back escape hatch.
//
// Returns:
//   - the preceding stage
//   - InvalidTransitionError if s is Lead (nothing before it) or Closed
//     (reopen is the only way out)
func (s Stage) Previous() (Stage, error) {
	if err := s.Validate(); err != nil {
		return UnknownStage, err
	}
	switch s {
	case Lead:
		return UnknownStage, errs.NewInvalidTransitionError(s.String(), "", "there is no stage before Lead")
	case Closed:
		return UnknownStage, errs.NewInvalidTransitionError(s.String(), "", "closed orders can only be reopened")
	}
	return s - 1, nil
}

// ValidateAdvanceTo checks the stage graph for a forward move from s to
// target. Gates are not evaluated here.
func (s Stage) ValidateAdvanceTo(target Stage) error {
	if err := target.Validate(); err != nil {
		return err
	}
	next, err := s.Next()
	if err != nil {
		return err
	}
	if target != next {
		return errs.NewInvalidTransitionError(s.String(), target.String(),
			fmt.Sprintf("orders advance one stage at a time; the next stage is %s", next))
	}
	return nil
}

// ValidateReopenTo checks that a Closed order may be reopened to target.
func (s Stage) ValidateReopenTo(target Stage) error {
	if s != Closed {
		return errs.NewInvalidTransitionError(s.String(), target.String(), "only closed orders can be reopened")
	}
	for _, allowed := range ReopenTargets() {
		if target == allowed {
			return nil
		}
	}
	return errs.NewInvalidTransitionError(s.String(), target.String(),
		fmt.Sprintf("reopen target must be between %s and %s", Quote, Closeout))
}
