package art

import (
	"fmt"
	"strings"

	"decoflow/internal/pkg/errs"
)

// OverallStatus is the state of the whole art-confirmation sub-workflow.
type OverallStatus int

const (
	// UnknownOverallStatus is the zero value and never valid.
	UnknownOverallStatus OverallStatus = iota
	NotStarted
	InProgress
	SentToCustomer
	RevisionRequested
	Approved
)

var overallStatusStrings = map[OverallStatus]string{
	NotStarted:        "Not Started",
	InProgress:        "In Progress",
	SentToCustomer:    "Sent to Customer",
	RevisionRequested: "Revision Requested",
	Approved:          "Approved",
}

// OverallStatuses lists every valid OverallStatus.
func OverallStatuses() []OverallStatus {
	return []OverallStatus{NotStarted, InProgress, SentToCustomer, RevisionRequested, Approved}
}

func (s OverallStatus) String() string {
	if str, ok := overallStatusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects UnknownOverallStatus and out-of-range values.
func (s OverallStatus) Validate() error {
	if _, ok := overallStatusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"art overall status is invalid",
			fmt.Errorf("%d is not a valid art overall status", s),
		)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s OverallStatus) MarshalText() ([]byte, error) {
	return marshalEnum(overallStatusStrings, s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OverallStatus) UnmarshalText(data []byte) error {
	*s = unmarshalEnum(overallStatusStrings, data, UnknownOverallStatus)
	return nil
}

// ProofStatus is the state of a single proof version.
//
//	Draft ─> Sent ─┬─> Approved
//	               └─> Revision Needed
type ProofStatus int

const (
	// UnknownProofStatus is the zero value and never valid.
	UnknownProofStatus ProofStatus = iota
	ProofDraft
	ProofSent
	ProofApproved
	ProofRevisionNeeded
)

var proofStatusStrings = map[ProofStatus]string{
	ProofDraft:          "Draft",
	ProofSent:           "Sent",
	ProofApproved:       "Approved",
	ProofRevisionNeeded: "Revision Needed",
}

// ProofStatuses lists every valid ProofStatus.
func ProofStatuses() []ProofStatus {
	return []ProofStatus{ProofDraft, ProofSent, ProofApproved, ProofRevisionNeeded}
}

func (s ProofStatus) String() string {
	if str, ok := proofStatusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects UnknownProofStatus and out-of-range values.
func (s ProofStatus) Validate() error {
	if _, ok := proofStatusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"proof status is invalid",
			fmt.Errorf("%d is not a valid proof status", s),
		)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s ProofStatus) MarshalText() ([]byte, error) {
	return marshalEnum(proofStatusStrings, s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ProofStatus) UnmarshalText(data []byte) error {
	*s = unmarshalEnum(proofStatusStrings, data, UnknownProofStatus)
	return nil
}

// FileCategory classifies an uploaded art file.
type FileCategory string

const (
	OriginalArt   FileCategory = "Original Art"
	ReferenceFile FileCategory = "Reference"
	ProofFile     FileCategory = "Proof"
	MarkupFile    FileCategory = "Markup"
	OtherFile     FileCategory = "Other"
)

// FileCategories lists every valid FileCategory.
func FileCategories() []FileCategory {
	return []FileCategory{OriginalArt, ReferenceFile, ProofFile, MarkupFile, OtherFile}
}

// Validate rejects categories outside FileCategories.
func (c FileCategory) Validate() error {
	for _, known := range FileCategories() {
		if c == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"file category is invalid",
		fmt.Errorf("%q is not a valid file category", string(c)),
	)
}

// RevisionAction tags an entry of the revision history.
type RevisionAction string

const (
	ActionPlacementAdded   RevisionAction = "placement_added"
	ActionPlacementRemoved RevisionAction = "placement_removed"
	ActionProofCreated     RevisionAction = "proof_created"
	ActionProofSent        RevisionAction = "proof_sent"
	ActionFeedback         RevisionAction = "feedback_received"
	ActionApproved         RevisionAction = "approved"
	ActionFileUploaded     RevisionAction = "file_uploaded"
	ActionMarkupUploaded   RevisionAction = "markup_uploaded"
	ActionFinalApproval    RevisionAction = "final_approval"
	ActionNotesUpdated     RevisionAction = "notes_updated"
)

// RevisionActions lists every valid RevisionAction.
func RevisionActions() []RevisionAction {
	return []RevisionAction{
		ActionPlacementAdded, ActionPlacementRemoved, ActionProofCreated, ActionProofSent,
		ActionFeedback, ActionApproved, ActionFileUploaded, ActionMarkupUploaded,
		ActionFinalApproval, ActionNotesUpdated,
	}
}

// Validate rejects actions outside RevisionActions.
func (a RevisionAction) Validate() error {
	for _, known := range RevisionActions() {
		if a == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"revision action is invalid",
		fmt.Errorf("%q is not a valid revision action", string(a)),
	)
}

func marshalEnum[T comparable](names map[T]string, v T) []byte {
	if str, ok := names[v]; ok {
		return []byte(str)
	}
	return []byte{}
}

func unmarshalEnum[T comparable](names map[T]string, data []byte, unknown T) T {
	str := strings.TrimSpace(string(data))
	for k, v := range names {
		if strings.EqualFold(v, str) {
			return k
		}
	}
	return unknown
}
