package art

import (
	"slices"
	"time"

	"decoflow/internal/core/domain/model/kernel"
)

// File is an uploaded artwork file. It is used for client files, proof
// renderings and markup files alike.
type File struct {
	ID         kernel.UUID  `json:"id"`
	Name       string       `json:"name"`
	URL        string       `json:"url"`
	Category   FileCategory `json:"category"`
	UploadedAt time.Time    `json:"uploadedAt"`
	UploadedBy string       `json:"uploadedBy,omitempty"`
}

// Proof is one versioned rendering of a placement submitted to the customer.
type Proof struct {
	ID                 kernel.UUID `json:"id"`
	Version            int         `json:"version"`
	Status             ProofStatus `json:"status"`
	ProofURL           string      `json:"proofUrl,omitempty"`
	ProofNotes         string      `json:"proofNotes,omitempty"`
	CustomerFeedback   string      `json:"customerFeedback,omitempty"`
	Files              []File      `json:"files"`
	MarkupFiles        []File      `json:"markupFiles"`
	CreatedAt          time.Time   `json:"createdAt"`
	SentToCustomerAt   *time.Time  `json:"sentToCustomerAt,omitempty"`
	FeedbackReceivedAt *time.Time  `json:"feedbackReceivedAt,omitempty"`
	ApprovedAt         *time.Time  `json:"approvedAt,omitempty"`
}

// Placement is a physical location on the garment that receives decoration.
type Placement struct {
	ID         kernel.UUID `json:"id"`
	Location   string      `json:"location"`
	Width      *float64    `json:"width,omitempty"`
	Height     *float64    `json:"height,omitempty"`
	ColorCount int         `json:"colorCount"`
	Proofs     []Proof     `json:"proofs"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// HasApprovedProof reports whether at least one proof of p is Approved.
func (p Placement) HasApprovedProof() bool {
	return slices.ContainsFunc(p.Proofs, func(pr Proof) bool {
		return pr.Status == ProofApproved
	})
}

// Revision is an entry of the append-only art revision history.
type Revision struct {
	ID          kernel.UUID    `json:"id"`
	Action      RevisionAction `json:"action"`
	Description string         `json:"description"`
	PerformedBy string         `json:"performedBy"`
	Timestamp   time.Time      `json:"timestamp"`
	PlacementID *kernel.UUID   `json:"placementId,omitempty"`
	ProofID     *kernel.UUID   `json:"proofId,omitempty"`
	FileID      *kernel.UUID   `json:"fileId,omitempty"`
}

// PlacementInput describes a placement to add.
type PlacementInput struct {
	Location   string
	Width      *float64
	Height     *float64
	ColorCount int
}

// ProofInput describes a proof to add to a placement.
type ProofInput struct {
	ProofURL   string
	ProofNotes string
	Files      []FileInput
}

// FileInput describes a file to upload.
type FileInput struct {
	Name     string
	URL      string
	Category FileCategory
}

func cloneFiles(files []File) []File {
	if files == nil {
		return []File{}
	}
	return slices.Clone(files)
}

func cloneProof(p Proof) Proof {
	p.Files = cloneFiles(p.Files)
	p.MarkupFiles = cloneFiles(p.MarkupFiles)
	p.SentToCustomerAt = cloneTime(p.SentToCustomerAt)
	p.FeedbackReceivedAt = cloneTime(p.FeedbackReceivedAt)
	p.ApprovedAt = cloneTime(p.ApprovedAt)
	return p
}

func clonePlacement(p Placement) Placement {
	proofs := make([]Proof, 0, len(p.Proofs))
	for _, pr := range p.Proofs {
		proofs = append(proofs, cloneProof(pr))
	}
	p.Proofs = proofs
	p.Width = cloneFloat(p.Width)
	p.Height = cloneFloat(p.Height)
	return p
}

func clonePlacements(placements []Placement) []Placement {
	out := make([]Placement, 0, len(placements))
	for _, p := range placements {
		out = append(out, clonePlacement(p))
	}
	return out
}

func cloneRevisions(revisions []Revision) []Revision {
	if revisions == nil {
		return []Revision{}
	}
	return slices.Clone(revisions)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
