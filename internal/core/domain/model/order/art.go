package order

import (
	"time"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/pkg/errs"
)

// The art methods below delegate to the art sub-workflow. They are accepted
// only while the order is in Art Confirmation, and each of them mirrors the
// detailed status into the coarse art status.

func (o *Order) AddArtPlacement(in art.PlacementInput, actor string, at time.Time) (art.Placement, error) {
	if err := o.ensureArtEditable(); err != nil {
		return art.Placement{}, err
	}
	p, err := o.artConf.AddPlacement(in, actor, at)
	if err != nil {
		return art.Placement{}, err
	}
	o.syncArtStatus(at)
	return p, nil
}

func (o *Order) DeleteArtPlacement(placementID kernel.UUID, actor string, at time.Time) error {
	if err := o.ensureArtEditable(); err != nil {
		return err
	}
	if err := o.artConf.DeletePlacement(placementID, actor, at); err != nil {
		return err
	}
	o.syncArtStatus(at)
	return nil
}

func (o *Order) AddArtProof(placementID kernel.UUID, in art.ProofInput, actor string, at time.Time) (art.Proof, error) {
	if err := o.ensureArtEditable(); err != nil {
		return art.Proof{}, err
	}
	p, err := o.artConf.AddProof(placementID, in, actor, at)
	if err != nil {
		return art.Proof{}, err
	}
	o.syncArtStatus(at)
	return p, nil
}

func (o *Order) SendArtProof(placementID, proofID kernel.UUID, actor string, at time.Time) error {
	if err := o.ensureArtEditable(); err != nil {
		return err
	}
	if err := o.artConf.SendProof(placementID, proofID, actor, at); err != nil {
		return err
	}
	o.syncArtStatus(at)
	return nil
}

func (o *Order) RecordArtFeedback(placementID, proofID kernel.UUID, feedback string, at time.Time) error {
	if err := o.ensureArtEditable(); err != nil {
		return err
	}
	if err := o.artConf.RecordFeedback(placementID, proofID, feedback, at); err != nil {
		return err
	}
	o.syncArtStatus(at)
	return nil
}

// ApproveArtProof approves a sent proof and reports whether that completed
// the art for every placement.
func (o *Order) ApproveArtProof(placementID, proofID kernel.UUID, actor string, at time.Time) (bool, error) {
	if err := o.ensureArtEditable(); err != nil {
		return false, err
	}
	completed, err := o.artConf.ApproveProof(placementID, proofID, actor, at)
	if err != nil {
		return false, err
	}
	o.syncArtStatus(at)
	return completed, nil
}

func (o *Order) UploadClientFile(in art.FileInput, actor string, at time.Time) (art.File, error) {
	if err := o.ensureArtEditable(); err != nil {
		return art.File{}, err
	}
	f, err := o.artConf.UploadClientFile(in, actor, at)
	if err != nil {
		return art.File{}, err
	}
	o.syncArtStatus(at)
	return f, nil
}

func (o *Order) UploadMarkupFile(placementID, proofID kernel.UUID, in art.FileInput, actor string, at time.Time) (art.File, error) {
	if err := o.ensureArtEditable(); err != nil {
		return art.File{}, err
	}
	f, _, err := o.artConf.UploadMarkupFile(placementID, proofID, in, actor, at)
	if err != nil {
		return art.File{}, err
	}
	o.syncArtStatus(at)
	return f, nil
}

func (o *Order) UpdateArtNotes(notes, actor string, at time.Time) error {
	if err := o.ensureArtEditable(); err != nil {
		return err
	}
	o.artConf.SetNotes(notes, actor, at)
	o.updatedAt = at
	return nil
}

// RecordFinalArtApproval force-approves the art with an approval obtained out
// of band. Besides Art Confirmation it is also accepted after the order left
// Art Confirmation with art pending, which is the only way to reconcile the
// two art statuses afterwards.
func (o *Order) RecordFinalArtApproval(name, method string, date time.Time, actor string, at time.Time) error {
	reconciling := o.awaitsArtReconciliation()
	if !reconciling {
		if err := o.ensureArtEditable(); err != nil {
			return err
		}
	} else if err := o.ensureEditable(); err != nil {
		return err
	}

	if err := o.artConf.RecordFinalApproval(name, method, date, actor, at); err != nil {
		return err
	}
	previous := o.artStatus
	o.artStatus = ArtApproved
	if reconciling {
		o.log(ActionArtApprovalRecovered, actor, at, withChange("artStatus", previous.String(), ArtApproved.String()))
		return nil
	}
	o.updatedAt = at
	return nil
}

// awaitsArtReconciliation reports whether the order left Art Confirmation
// with art pending and the art has not been approved since.
func (o *Order) awaitsArtReconciliation() bool {
	return o.status.Number() > ArtConfirmation.Number() &&
		o.artStatus == ArtPending &&
		o.artConf.OverallStatus() != art.Approved
}

func (o *Order) ensureArtEditable() error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	if o.status != ArtConfirmation {
		return errs.NewInvalidTransitionError(o.status.String(), "", "art can only be edited in Art Confirmation")
	}
	return nil
}

func (o *Order) syncArtStatus(at time.Time) {
	o.artStatus = ArtStatusFor(o.artConf.OverallStatus())
	o.updatedAt = at
}
