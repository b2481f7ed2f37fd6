package art

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/errs"
)

// CustomerPerformer is recorded as the author of customer feedback.
const CustomerPerformer = "Customer"

// Confirmation is the art-confirmation state of a single order.
type Confirmation struct {
	overallStatus   OverallStatus
	placements      []Placement
	clientFiles     []File
	revisions       []Revision
	notes           string
	startedAt       *time.Time
	completedAt     *time.Time
	lastContactedAt *time.Time
	approval        *CustomerApproval
}

// CustomerApproval is the out-of-band approval recorded by a final approval.
type CustomerApproval struct {
	Name   string
	Date   time.Time
	Method string
}

// NewConfirmation returns an empty confirmation in Not Started.
func NewConfirmation() *Confirmation {
	return &Confirmation{
		overallStatus: NotStarted,
		placements:    []Placement{},
		clientFiles:   []File{},
		revisions:     []Revision{},
	}
}

func (c *Confirmation) OverallStatus() OverallStatus {
	return c.overallStatus
}

func (c *Confirmation) Placements() []Placement {
	return clonePlacements(c.placements)
}

func (c *Confirmation) ClientFiles() []File {
	return cloneFiles(c.clientFiles)
}

func (c *Confirmation) Revisions() []Revision {
	return cloneRevisions(c.revisions)
}

func (c *Confirmation) Notes() string {
	return c.notes
}

func (c *Confirmation) StartedAt() *time.Time {
	return cloneTime(c.startedAt)
}

func (c *Confirmation) CompletedAt() *time.Time {
	return cloneTime(c.completedAt)
}

func (c *Confirmation) LastContactedAt() *time.Time {
	return cloneTime(c.lastContactedAt)
}

// CustomerApproval returns the recorded final approval, or nil.
func (c *Confirmation) CustomerApproval() *CustomerApproval {
	if c.approval == nil {
		return nil
	}
	a := *c.approval
	return &a
}

// AllPlacementsApproved reports whether there is at least one placement and
// every placement has an approved proof.
func (c *Confirmation) AllPlacementsApproved() bool {
	if len(c.placements) == 0 {
		return false
	}
	for _, p := range c.placements {
		if !p.HasApprovedProof() {
			return false
		}
	}
	return true
}

// AddPlacement appends a placement with no proofs. An approved confirmation
// goes back to In Progress unless a final approval was recorded.
func (c *Confirmation) AddPlacement(in PlacementInput, actor string, at time.Time) (Placement, error) {
	location := strings.TrimSpace(in.Location)
	if err := errors.Join(
		validateLocation(location),
		validateColorCount(in.ColorCount),
		validateDimension("width", in.Width),
		validateDimension("height", in.Height),
	); err != nil {
		return Placement{}, err
	}

	p := Placement{
		ID:         kernel.NewUUID(),
		Location:   location,
		Width:      cloneFloat(in.Width),
		Height:     cloneFloat(in.Height),
		ColorCount: in.ColorCount,
		Proofs:     []Proof{},
		CreatedAt:  at,
	}
	c.placements = append(c.placements, p)

	switch {
	case c.overallStatus == NotStarted:
		c.overallStatus = InProgress
	case c.overallStatus == Approved && c.approval == nil:
		c.overallStatus = InProgress
		c.completedAt = nil
	}
	if c.startedAt == nil {
		c.startedAt = &at
	}
	c.record(ActionPlacementAdded, fmt.Sprintf("Added placement %s", location), actor, at, withPlacement(p.ID))
	return clonePlacement(p), nil
}

// DeletePlacement removes a placement together with its proofs. The
// approval derivation is re-run over the remaining placements.
func (c *Confirmation) DeletePlacement(placementID kernel.UUID, actor string, at time.Time) error {
	idx, err := c.placementIndex(placementID)
	if err != nil {
		return err
	}
	removed := c.placements[idx]
	c.placements = slices.Delete(c.placements, idx, idx+1)

	c.record(ActionPlacementRemoved, fmt.Sprintf("Removed placement %s", removed.Location), actor, at, withPlacement(removed.ID))

	if c.overallStatus != Approved && c.AllPlacementsApproved() {
		c.complete(at)
	}
	return nil
}

// AddProof appends a Draft proof to a placement. Versions are never reused.
func (c *Confirmation) AddProof(placementID kernel.UUID, in ProofInput, actor string, at time.Time) (Proof, error) {
	idx, err := c.placementIndex(placementID)
	if err != nil {
		return Proof{}, err
	}
	files, err := newFiles(in.Files, ProofFile, actor, at)
	if err != nil {
		return Proof{}, err
	}

	placement := &c.placements[idx]
	proof := Proof{
		ID:          kernel.NewUUID(),
		Version:     nextProofVersion(placement.Proofs),
		Status:      ProofDraft,
		ProofURL:    strings.TrimSpace(in.ProofURL),
		ProofNotes:  in.ProofNotes,
		Files:       files,
		MarkupFiles: []File{},
		CreatedAt:   at,
	}
	placement.Proofs = append(placement.Proofs, proof)

	if c.overallStatus == NotStarted {
		c.overallStatus = InProgress
	}
	c.record(ActionProofCreated,
		fmt.Sprintf("Created proof v%d for %s", proof.Version, placement.Location),
		actor, at, withPlacement(placement.ID), withProof(proof.ID))
	return cloneProof(proof), nil
}

// SendProof moves a Draft proof to Sent.
func (c *Confirmation) SendProof(placementID, proofID kernel.UUID, actor string, at time.Time) error {
	placement, proof, err := c.proof(placementID, proofID)
	if err != nil {
		return err
	}
	if proof.Status != ProofDraft {
		return proofTransitionError(proof, ProofSent, "only Draft proofs can be sent")
	}

	proof.Status = ProofSent
	proof.SentToCustomerAt = &at
	c.overallStatus = SentToCustomer
	c.lastContactedAt = &at

	c.record(ActionProofSent,
		fmt.Sprintf("Sent proof v%d for %s to customer", proof.Version, placement.Location),
		actor, at, withPlacement(placement.ID), withProof(proof.ID))
	return nil
}

// RecordFeedback stores customer feedback on a Sent proof and requests a
// revision.
func (c *Confirmation) RecordFeedback(placementID, proofID kernel.UUID, feedback string, at time.Time) error {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return errs.NewValueIsRequiredError("feedback")
	}
	placement, proof, err := c.proof(placementID, proofID)
	if err != nil {
		return err
	}
	if proof.Status != ProofSent {
		return proofTransitionError(proof, ProofRevisionNeeded, "feedback can only be recorded on a Sent proof")
	}

	proof.CustomerFeedback = feedback
	proof.FeedbackReceivedAt = &at
	proof.Status = ProofRevisionNeeded
	c.overallStatus = RevisionRequested
	c.lastContactedAt = &at

	c.record(ActionFeedback,
		fmt.Sprintf("Customer requested changes on proof v%d for %s: %s", proof.Version, placement.Location, feedback),
		CustomerPerformer, at, withPlacement(placement.ID), withProof(proof.ID))
	return nil
}

// ApproveProof moves a Sent proof to Approved. It reports whether the
// approval completed the sub-workflow.
func (c *Confirmation) ApproveProof(placementID, proofID kernel.UUID, actor string, at time.Time) (bool, error) {
	placement, proof, err := c.proof(placementID, proofID)
	if err != nil {
		return false, err
	}
	if proof.Status != ProofSent {
		return false, proofTransitionError(proof, ProofApproved, "only Sent proofs can be approved")
	}

	proof.Status = ProofApproved
	proof.ApprovedAt = &at

	description := fmt.Sprintf("Approved proof v%d for %s", proof.Version, placement.Location)
	completed := c.AllPlacementsApproved()
	if completed {
		c.complete(at)
		description += "; all placements approved"
	}
	c.record(ActionApproved, description, actor, at, withPlacement(placement.ID), withProof(proof.ID))
	return completed, nil
}

// UploadClientFile stores a file that is not tied to any proof.
func (c *Confirmation) UploadClientFile(in FileInput, actor string, at time.Time) (File, error) {
	file, err := newFile(in, OriginalArt, actor, at)
	if err != nil {
		return File{}, err
	}
	c.clientFiles = append(c.clientFiles, file)
	c.record(ActionFileUploaded, fmt.Sprintf("Uploaded %s (%s)", file.Name, file.Category), actor, at, withFile(file.ID))
	return file, nil
}

// UploadMarkupFile attaches a customer markup to a proof. A markup on a Sent
// proof requests a revision, like explicit feedback does. It reports whether
// that happened.
func (c *Confirmation) UploadMarkupFile(
	placementID, proofID kernel.UUID,
	in FileInput,
	actor string,
	at time.Time,
) (File, bool, error) {
	placement, proof, err := c.proof(placementID, proofID)
	if err != nil {
		return File{}, false, err
	}
	file, err := newFile(in, MarkupFile, actor, at)
	if err != nil {
		return File{}, false, err
	}
	proof.MarkupFiles = append(proof.MarkupFiles, file)

	revisionRequested := proof.Status == ProofSent
	if revisionRequested {
		c.overallStatus = RevisionRequested
		c.lastContactedAt = &at
	}
	c.record(ActionMarkupUploaded,
		fmt.Sprintf("Uploaded markup %s for proof v%d of %s", file.Name, proof.Version, placement.Location),
		actor, at, withPlacement(placement.ID), withProof(proof.ID), withFile(file.ID))
	return file, revisionRequested, nil
}

// RecordFinalApproval force-approves the sub-workflow with approval obtained
// out of band. A zero date defaults to at.
func (c *Confirmation) RecordFinalApproval(name, method string, date time.Time, actor string, at time.Time) error {
	name = strings.TrimSpace(name)
	method = strings.TrimSpace(method)
	if err := errors.Join(
		requireText("customerApprovalName", name),
		requireText("customerApprovalMethod", method),
	); err != nil {
		return err
	}
	if date.IsZero() {
		date = at
	}

	c.approval = &CustomerApproval{Name: name, Date: date, Method: method}
	c.complete(at)
	c.record(ActionFinalApproval, fmt.Sprintf("Final approval recorded from %s via %s", name, method), actor, at)
	return nil
}

// SetNotes replaces the free-text art notes.
func (c *Confirmation) SetNotes(notes, actor string, at time.Time) {
	c.notes = notes
	c.record(ActionNotesUpdated, "Updated art notes", actor, at)
}

func (c *Confirmation) complete(at time.Time) {
	c.overallStatus = Approved
	c.completedAt = &at
}

func (c *Confirmation) placementIndex(id kernel.UUID) (int, error) {
	idx := slices.IndexFunc(c.placements, func(p Placement) bool { return p.ID == id })
	if idx < 0 {
		return -1, errs.NewObjectNotFoundError("placementID", id)
	}
	return idx, nil
}

func (c *Confirmation) proof(placementID, proofID kernel.UUID) (*Placement, *Proof, error) {
	idx, err := c.placementIndex(placementID)
	if err != nil {
		return nil, nil, err
	}
	placement := &c.placements[idx]
	for i := range placement.Proofs {
		if placement.Proofs[i].ID == proofID {
			return placement, &placement.Proofs[i], nil
		}
	}
	return nil, nil, errs.NewObjectNotFoundError("proofID", proofID)
}

type revisionOption func(*Revision)

func withPlacement(id kernel.UUID) revisionOption {
	return func(r *Revision) { r.PlacementID = &id }
}

func withProof(id kernel.UUID) revisionOption {
	return func(r *Revision) { r.ProofID = &id }
}

func withFile(id kernel.UUID) revisionOption {
	return func(r *Revision) { r.FileID = &id }
}

func (c *Confirmation) record(action RevisionAction, description, actor string, at time.Time, opts ...revisionOption) {
	r := Revision{
		ID:          kernel.NewUUID(),
		Action:      action,
		Description: description,
		PerformedBy: actor,
		Timestamp:   at,
	}
	for _, opt := range opts {
		opt(&r)
	}
	c.revisions = append(c.revisions, r)
}

func nextProofVersion(proofs []Proof) int {
	next := len(proofs) + 1
	for _, p := range proofs {
		if p.Version >= next {
			next = p.Version + 1
		}
	}
	return next
}

func proofTransitionError(p *Proof, to ProofStatus, reason string) error {
	return errs.NewInvalidTransitionError(
		fmt.Sprintf("proof v%d %s", p.Version, p.Status),
		to.String(),
		reason,
	)
}

func newFiles(inputs []FileInput, fallback FileCategory, actor string, at time.Time) ([]File, error) {
	files := make([]File, 0, len(inputs))
	var errList []error
	for _, in := range inputs {
		f, err := newFile(in, fallback, actor, at)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		files = append(files, f)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return files, nil
}

func newFile(in FileInput, fallback FileCategory, actor string, at time.Time) (File, error) {
	category := in.Category
	if category == "" {
		category = fallback
	}
	name := strings.TrimSpace(in.Name)
	if err := errors.Join(requireText("fileName", name), category.Validate()); err != nil {
		return File{}, err
	}
	return File{
		ID:         kernel.NewUUID(),
		Name:       name,
		URL:        strings.TrimSpace(in.URL),
		Category:   category,
		UploadedAt: at,
		UploadedBy: actor,
	}, nil
}

func validateLocation(location string) error {
	return requireText("location", location)
}

func validateColorCount(count int) error {
	if count < 0 {
		return errs.NewValueIsOutOfRangeError("colorCount", count, 0, "unbounded")
	}
	return nil
}

func validateDimension(name string, v *float64) error {
	if v != nil && *v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("must be positive, got %v", *v))
	}
	return nil
}

func requireText(name, v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
