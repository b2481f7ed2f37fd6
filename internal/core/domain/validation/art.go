package validation

import (
	"fmt"
	"strings"

	"decoflow/internal/core/domain/model/art"
)

// ArtConfirmation validates the art sub-workflow record.
func ArtConfirmation(a art.Snapshot) Result {
	r := newResult()
	r.check("overallStatus", a.OverallStatus.Validate())

	for i, p := range a.Placements {
		r.merge(fmt.Sprintf("placements[%d]", i), Placement(p))
	}
	for i, f := range a.ClientFiles {
		r.merge(fmt.Sprintf("clientFiles[%d]", i), File(f))
	}
	for i, rev := range a.RevisionHistory {
		if err := rev.Action.Validate(); err != nil {
			r.errorf("revisionHistory[%d]: %v", i, err)
		}
	}

	if a.OverallStatus == art.Approved && a.CompletedAt == nil {
		r.errorf("overallStatus is Approved but completedAt is missing")
	}
	if a.CustomerApprovalName != "" && strings.TrimSpace(a.CustomerApprovalMethod) == "" {
		r.errorf("customerApprovalMethod is required with customerApprovalName")
	}
	if allApproved(a.Placements) && a.OverallStatus != art.Approved {
		r.warnf("every placement has an approved proof but overallStatus is %s", a.OverallStatus)
	}
	return r
}

// Placement validates a placement and its proofs.
func Placement(p art.Placement) Result {
	r := newResult()
	if p.ID.IsZero() {
		r.errorf("id is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		r.errorf("location is required")
	}
	if p.ColorCount < 0 {
		r.errorf("colorCount must not be negative, got %d", p.ColorCount)
	}
	if p.Width != nil && *p.Width <= 0 {
		r.errorf("width must be positive, got %v", *p.Width)
	}
	if p.Height != nil && *p.Height <= 0 {
		r.errorf("height must be positive, got %v", *p.Height)
	}

	versions := make(map[int]struct{}, len(p.Proofs))
	for i, pr := range p.Proofs {
		path := fmt.Sprintf("proofs[%d]", i)
		r.merge(path, Proof(pr))
		if _, dup := versions[pr.Version]; dup {
			r.errorf("%s: duplicate proof version %d", path, pr.Version)
		}
		versions[pr.Version] = struct{}{}
	}
	return r
}

// Proof validates a proof version.
func Proof(p art.Proof) Result {
	r := newResult()
	if p.ID.IsZero() {
		r.errorf("id is required")
	}
	if p.Version < 1 {
		r.errorf("version must be at least 1, got %d", p.Version)
	}
	r.check("status", p.Status.Validate())

	switch p.Status {
	case art.ProofSent, art.ProofApproved, art.ProofRevisionNeeded:
		if p.SentToCustomerAt == nil {
			r.errorf("%s proof needs sentToCustomerAt", p.Status)
		}
	case art.ProofDraft, art.UnknownProofStatus:
	}
	if p.Status == art.ProofApproved && p.ApprovedAt == nil {
		r.errorf("approved proof needs approvedAt")
	}
	if p.Status == art.ProofRevisionNeeded && p.FeedbackReceivedAt == nil {
		r.errorf("proof needing revision needs feedbackReceivedAt")
	}

	for i, f := range p.Files {
		r.merge(fmt.Sprintf("files[%d]", i), File(f))
	}
	for i, f := range p.MarkupFiles {
		r.merge(fmt.Sprintf("markupFiles[%d]", i), File(f))
	}
	return r
}

// File validates an uploaded file.
func File(f art.File) Result {
	r := newResult()
	if f.ID.IsZero() {
		r.errorf("id is required")
	}
	if strings.TrimSpace(f.Name) == "" {
		r.errorf("name is required")
	}
	r.check("category", f.Category.Validate())
	if f.UploadedAt.IsZero() {
		r.errorf("uploadedAt is required")
	}
	return r
}

func allApproved(placements []art.Placement) bool {
	if len(placements) == 0 {
		return false
	}
	for _, p := range placements {
		if !p.HasApprovedProof() {
			return false
		}
	}
	return true
}
