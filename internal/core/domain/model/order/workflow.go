package order

import (
	"time"

	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/pkg/errs"
)

// AdvanceOptions modifies a forward transition.
type AdvanceOptions struct {
	// WithArtPending lets the order leave Art Confirmation before the art is
	// approved. The coarse art status is left at Pending and the detailed
	// art status is not touched.
	WithArtPending bool
	// Note is stored on the history entry.
	Note string
}

// Advance moves the order to the next stage.
func (o *Order) Advance(opts AdvanceOptions, actor string, at time.Time) error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}
	return o.AdvanceTo(next, opts, actor, at)
}

// AdvanceTo moves the order forward to target, which must be exactly the
// next stage, after checking the gate of the current stage.
//
// Returns:
//   - nil on success
//   - InvalidTransitionError if target is not the next stage, the gate does
//     not hold, or the order is archived; the order is left unchanged
//
// Side effects:
//   - Lead -> Quote copies leadInfo.eventDate into dueDate and stamps
//     leadInfo.convertedAt
//   - leaving Art Confirmation stamps the coarse art status
//   - Closeout -> Closed stamps closedAt, closedReason and reopenedFrom
//   - a "Status Changed" history entry is appended
func (o *Order) AdvanceTo(target Stage, opts AdvanceOptions, actor string, at time.Time) error {
	if err := o.ensureActive(); err != nil {
		return err
	}
	if err := o.status.ValidateAdvanceTo(target); err != nil {
		return err
	}
	if reason := o.gateFailure(opts); reason != "" {
		return errs.NewInvalidTransitionError(o.status.String(), target.String(), reason)
	}

	from := o.status
	switch from {
	case Lead:
		if o.leadInfo != nil {
			if o.leadInfo.EventDate != nil {
				o.dueDate = cloneTime(o.leadInfo.EventDate)
			}
			o.leadInfo.ConvertedAt = &at
		}
	case ArtConfirmation:
		if o.artConf.OverallStatus() == art.Approved {
			o.artStatus = ArtApproved
		} else {
			o.artStatus = ArtPending
			if opts.Note == "" {
				opts.Note = "Advanced with art approval pending"
			}
		}
	case Closeout:
		o.closedAt = &at
		o.closedReason = ClosedReasonCompleted
		o.reopenedFrom = Closeout.String()
		o.isArchived = false
		o.archivedAt = nil
	}

	o.status = target
	o.log(ActionStatusChanged, actor, at, withChange("status", from.String(), target.String()), withNote(opts.Note))
	return nil
}

// CanAdvance reports why the order could not leave its current stage, or nil
// if Advance would succeed.
func (o *Order) CanAdvance(opts AdvanceOptions) error {
	if err := o.ensureActive(); err != nil {
		return err
	}
	next, err := o.status.Next()
	if err != nil {
		return err
	}
	if reason := o.gateFailure(opts); reason != "" {
		return errs.NewInvalidTransitionError(o.status.String(), next.String(), reason)
	}
	return nil
}

// MoveBack moves the order one stage back without checking any gate. Flags
// collected in later stages are kept.
func (o *Order) MoveBack(actor string, at time.Time) error {
	if err := o.ensureActive(); err != nil {
		return err
	}
	prev, err := o.status.Previous()
	if err != nil {
		return err
	}
	from := o.status
	o.status = prev
	o.log(ActionMovedBack, actor, at, withChange("status", from.String(), prev.String()))
	return nil
}

// Reopen returns a Closed order to target, which must be between Quote and
// Closeout. Closing bookkeeping and the soft archive are cleared; line items
// are not touched.
func (o *Order) Reopen(target Stage, actor string, at time.Time) error {
	if o.isPermanentlyArchived {
		return errs.NewInvalidTransitionError(o.status.String(), target.String(), "order is permanently archived")
	}
	if err := o.status.ValidateReopenTo(target); err != nil {
		return err
	}

	o.closedAt = nil
	o.closedReason = ""
	o.reopenedFrom = ""
	o.isArchived = false
	o.archivedAt = nil
	o.status = target
	o.log(ActionReopened, actor, at, withChange("status", Closed.String(), target.String()))
	return nil
}

// Archive soft-archives a Closed order. Reopen clears the archive.
func (o *Order) Archive(actor string, at time.Time) error {
	if err := o.ensureActive(); err != nil {
		return err
	}
	if o.status != Closed {
		return errs.NewInvalidTransitionError(o.status.String(), "", "only closed orders can be archived")
	}
	o.isArchived = true
	o.archivedAt = &at
	o.log(ActionArchived, actor, at, withChange("isArchived", "false", "true"))
	return nil
}

// ArchiveAsDeadOpportunity archives an abandoned quote. The order keeps its
// stage and line items, and cannot be changed afterwards.
func (o *Order) ArchiveAsDeadOpportunity(reason, actor string, at time.Time) error {
	if err := o.ensureActive(); err != nil {
		return err
	}
	if o.status != Quote {
		return errs.NewInvalidTransitionError(o.status.String(), "", "only quotes can be archived as a dead opportunity")
	}
	o.isArchived = true
	o.archivedAt = &at
	o.closedAt = &at
	o.closedReason = ClosedReasonDeadOpportunity
	o.log(ActionDeadOpportunity, actor, at, withChange("isArchived", "false", "true"), withNote(reason))
	return nil
}

// MarkSpawnedFrom records on a freshly created lead which dead opportunity
// it follows up.
func (o *Order) MarkSpawnedFrom(original *Order, actor string, at time.Time) {
	o.log(ActionSpawnedFromDead, actor, at, withNote("Follow-up of "+original.orderNumber))
}

// PermanentlyArchive is the terminal action. Every later mutation is
// rejected.
func (o *Order) PermanentlyArchive(actor string, at time.Time) error {
	if o.isPermanentlyArchived {
		return errs.NewInvalidTransitionError(o.status.String(), "", "order is already permanently archived")
	}
	o.isPermanentlyArchived = true
	o.isArchived = true
	if o.archivedAt == nil {
		o.archivedAt = &at
	}
	o.log(ActionPermanentlyArchived, actor, at)
	return nil
}
