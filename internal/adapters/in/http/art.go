package http

import (
	"decoflow/internal/core/application/usecases/commands"
	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// proofPath holds the ids addressed by proof endpoints.
type proofPath struct {
	order     kernel.UUID
	placement kernel.UUID
	proof     kernel.UUID
}

func parseProofPath(c echo.Context, withProof bool) (proofPath, error) {
	var (
		p   proofPath
		err error
	)
	if p.order, err = pathID(c, "id"); err != nil {
		return p, err
	}
	if p.placement, err = pathID(c, "placementId"); err != nil {
		return p, err
	}
	if withProof {
		p.proof, err = pathID(c, "proofId")
	}
	return p, err
}

// AddArtPlacement handles POST /api/v1/orders/:id/art/placements.
func (s *Server) AddArtPlacement(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	var req PlacementRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewAddArtPlacementCommand(id, art.PlacementInput{
		Location:   req.Location,
		Width:      req.Width,
		Height:     req.Height,
		ColorCount: req.ColorCount,
	}, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.AddArtPlacement.Handle(c.Request().Context(), cmd))
}

// DeleteArtPlacement handles DELETE /api/v1/orders/:id/art/placements/:placementId.
func (s *Server) DeleteArtPlacement(c echo.Context) error {
	p, err := parseProofPath(c, false)
	if err != nil {
		return s.badRequest(c, err)
	}
	cmd, err := commands.NewDeleteArtPlacementCommand(p.order, p.placement, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.DeleteArtPlacement.Handle(c.Request().Context(), cmd))
}

// AddArtProof handles POST .../placements/:placementId/proofs.
func (s *Server) AddArtProof(c echo.Context) error {
	p, err := parseProofPath(c, false)
	if err != nil {
		return s.badRequest(c, err)
	}
	var req ProofRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewAddArtProofCommand(p.order, p.placement, req.toDomain(), actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.AddArtProof.Handle(c.Request().Context(), cmd))
}

// SendArtProof handles POST .../proofs/:proofId/send.
func (s *Server) SendArtProof(c echo.Context) error {
	p, err := parseProofPath(c, true)
	if err != nil {
		return s.badRequest(c, err)
	}
	cmd, err := commands.NewSendArtProofCommand(p.order, p.placement, p.proof, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.SendArtProof.Handle(c.Request().Context(), cmd))
}

// RecordArtFeedback handles POST .../proofs/:proofId/feedback.
func (s *Server) RecordArtFeedback(c echo.Context) error {
	p, err := parseProofPath(c, true)
	if err != nil {
		return s.badRequest(c, err)
	}
	var req FeedbackRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewRecordArtFeedbackCommand(p.order, p.placement, p.proof, req.Feedback)
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.RecordArtFeedback.Handle(c.Request().Context(), cmd))
}

// ApproveArtProof handles POST .../proofs/:proofId/approve.
func (s *Server) ApproveArtProof(c echo.Context) error {
	p, err := parseProofPath(c, true)
	if err != nil {
		return s.badRequest(c, err)
	}
	cmd, err := commands.NewApproveArtProofCommand(p.order, p.placement, p.proof, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.ApproveArtProof.Handle(c.Request().Context(), cmd))
}

// UploadMarkupFile handles POST .../proofs/:proofId/markups.
func (s *Server) UploadMarkupFile(c echo.Context) error {
	p, err := parseProofPath(c, true)
	if err != nil {
		return s.badRequest(c, err)
	}
	var req FileBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewUploadMarkupFileCommand(p.order, p.placement, p.proof, req.toDomain(), actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.UploadMarkupFile.Handle(c.Request().Context(), cmd))
}

// UploadClientFile handles POST /api/v1/orders/:id/art/files.
func (s *Server) UploadClientFile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	var req FileBody
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewUploadClientFileCommand(id, req.toDomain(), actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.UploadClientFile.Handle(c.Request().Context(), cmd))
}

// RecordFinalArtApproval handles POST /api/v1/orders/:id/art/final-approval.
func (s *Server) RecordFinalArtApproval(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	var req FinalApprovalRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewRecordFinalArtApprovalCommand(id, req.Name, req.Method, req.Date, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.RecordFinalArtApproval.Handle(c.Request().Context(), cmd))
}

// UpdateArtNotes handles PUT /api/v1/orders/:id/art/notes.
func (s *Server) UpdateArtNotes(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	var req NotesRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewUpdateArtNotesCommand(id, req.Notes, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.UpdateArtNotes.Handle(c.Request().Context(), cmd))
}
