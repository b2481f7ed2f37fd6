package order

import (
	"fmt"
	"strings"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/pkg/errs"
)

// ArtStatus is the coarse art flag kept on the order itself. While the order
// is in Art Confirmation it mirrors art.OverallStatus. Advancing with art
// pending leaves it at ArtPending even though the detailed status may say
// otherwise.
type ArtStatus int

const (
	UnknownArtStatus ArtStatus = iota
	ArtPending
	ArtInProgress
	ArtSentToCustomer
	ArtRevisionRequested
	ArtApproved
)

func getArtStatusStrings() map[ArtStatus]string {
	return map[ArtStatus]string{
		ArtPending:           "Pending",
		ArtInProgress:        "In Progress",
		ArtSentToCustomer:    "Sent to Customer",
		ArtRevisionRequested: "Revision Requested",
		ArtApproved:          "Approved",
	}
}

// ArtStatuses lists every valid ArtStatus.
func ArtStatuses() []ArtStatus {
	return []ArtStatus{ArtPending, ArtInProgress, ArtSentToCustomer, ArtRevisionRequested, ArtApproved}
}

// ArtStatusFor maps the detailed sub-workflow status onto the coarse flag.
func ArtStatusFor(s art.OverallStatus) ArtStatus {
	switch s {
	case art.InProgress:
		return ArtInProgress
	case art.SentToCustomer:
		return ArtSentToCustomer
	case art.RevisionRequested:
		return ArtRevisionRequested
	case art.Approved:
		return ArtApproved
	case art.NotStarted, art.UnknownOverallStatus:
		return ArtPending
	}
	return ArtPending
}

func (s ArtStatus) String() string {
	if str, ok := getArtStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects UnknownArtStatus and out-of-range values.
func (s ArtStatus) Validate() error {
	if _, ok := getArtStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("art status is invalid", fmt.Errorf("%d is not a valid art status", s))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s ArtStatus) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ArtStatus) UnmarshalText(data []byte) error {
	str := strings.TrimSpace(string(data))
	for k, v := range getArtStatusStrings() {
		if strings.EqualFold(v, str) {
			*s = k
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("art status is invalid", fmt.Errorf("%q is not a valid art status", str))
}
