package art

import (
	"errors"
	"time"
)

// Snapshot is the plain, JSON-serializable record of a Confirmation.
type Snapshot struct {
	OverallStatus          OverallStatus `json:"overallStatus"`
	Placements             []Placement   `json:"placements"`
	ClientFiles            []File        `json:"clientFiles"`
	RevisionHistory        []Revision    `json:"revisionHistory"`
	Notes                  string        `json:"notes,omitempty"`
	StartedAt              *time.Time    `json:"startedAt,omitempty"`
	CompletedAt            *time.Time    `json:"completedAt,omitempty"`
	LastContactedAt        *time.Time    `json:"lastContactedAt,omitempty"`
	CustomerApprovalName   string        `json:"customerApprovalName,omitempty"`
	CustomerApprovalDate   *time.Time    `json:"customerApprovalDate,omitempty"`
	CustomerApprovalMethod string        `json:"customerApprovalMethod,omitempty"`
}

// Snapshot returns a deep copy of c as a plain record.
func (c *Confirmation) Snapshot() Snapshot {
	s := Snapshot{
		OverallStatus:   c.overallStatus,
		Placements:      clonePlacements(c.placements),
		ClientFiles:     cloneFiles(c.clientFiles),
		RevisionHistory: cloneRevisions(c.revisions),
		Notes:           c.notes,
		StartedAt:       cloneTime(c.startedAt),
		CompletedAt:     cloneTime(c.completedAt),
		LastContactedAt: cloneTime(c.lastContactedAt),
	}
	if c.approval != nil {
		date := c.approval.Date
		s.CustomerApprovalName = c.approval.Name
		s.CustomerApprovalDate = &date
		s.CustomerApprovalMethod = c.approval.Method
	}
	return s
}

// Restore rebuilds a Confirmation from a snapshot. Only enum membership is
// checked here; the validation package does the full structural check.
func Restore(s Snapshot) (*Confirmation, error) {
	if err := restoreEnums(s); err != nil {
		return nil, err
	}

	c := &Confirmation{
		overallStatus:   s.OverallStatus,
		placements:      clonePlacements(s.Placements),
		clientFiles:     cloneFiles(s.ClientFiles),
		revisions:       cloneRevisions(s.RevisionHistory),
		notes:           s.Notes,
		startedAt:       cloneTime(s.StartedAt),
		completedAt:     cloneTime(s.CompletedAt),
		lastContactedAt: cloneTime(s.LastContactedAt),
	}
	if s.CustomerApprovalName != "" {
		a := CustomerApproval{Name: s.CustomerApprovalName, Method: s.CustomerApprovalMethod}
		if s.CustomerApprovalDate != nil {
			a.Date = *s.CustomerApprovalDate
		}
		c.approval = &a
	}
	return c, nil
}

func restoreEnums(s Snapshot) error {
	errList := []error{s.OverallStatus.Validate()}
	for _, p := range s.Placements {
		for _, pr := range p.Proofs {
			errList = append(errList, pr.Status.Validate())
		}
	}
	return errors.Join(errList...)
}
