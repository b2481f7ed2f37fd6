// Package http exposes the order store over a JSON API built on echo.
//
// Every mutating endpoint returns the full order snapshot after the change.
// The acting user is taken from the X-Actor header; without it the store
// records "System".
package http

import (
	"log/slog"
	"net/http"

	"decoflow/internal/core/application/usecases/commands"
	"decoflow/internal/core/application/usecases/queries"
	"decoflow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ActorHeader names the request header carrying the acting user.
const ActorHeader = "X-Actor"

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder            commands.CreateOrderCommandHandler
	UpdateOrder            commands.UpdateOrderCommandHandler
	AdvanceOrder           commands.AdvanceOrderCommandHandler
	MoveBackOrder          commands.MoveBackOrderCommandHandler
	ReopenOrder            commands.ReopenOrderCommandHandler
	ArchiveOrder           commands.ArchiveOrderCommandHandler
	PermanentlyArchive     commands.PermanentlyArchiveOrderCommandHandler
	ArchiveDeadOpportunity commands.ArchiveDeadOpportunityCommandHandler
	UpdateProgress         commands.UpdateLineItemProgressCommandHandler
	UpdateChecklist        commands.UpdateChecklistCommandHandler
	ImportDatabase         commands.ImportDatabaseCommandHandler

	AddArtPlacement        commands.AddArtPlacementCommandHandler
	DeleteArtPlacement     commands.DeleteArtPlacementCommandHandler
	AddArtProof            commands.AddArtProofCommandHandler
	SendArtProof           commands.SendArtProofCommandHandler
	RecordArtFeedback      commands.RecordArtFeedbackCommandHandler
	ApproveArtProof        commands.ApproveArtProofCommandHandler
	UploadClientFile       commands.UploadClientFileCommandHandler
	UploadMarkupFile       commands.UploadMarkupFileCommandHandler
	RecordFinalArtApproval commands.RecordFinalArtApprovalCommandHandler
	UpdateArtNotes         commands.UpdateArtNotesCommandHandler

	GetOrder       queries.GetOrderQueryHandler
	ListOrders     queries.ListOrdersQueryHandler
	ValidateStore  queries.ValidateStoreQueryHandler
	ExportDatabase queries.ExportDatabaseQueryHandler
	PreviewPrice   queries.PreviewPriceQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a server dispatching to h.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http"),
	}
}

// NewEcho builds an echo instance with the middleware and every route of s.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("32M"))
	s.Register(e)
	return e
}

// Register mounts the routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/move-back", s.MoveBackOrder)
	api.POST("/orders/:id/reopen", s.ReopenOrder)
	api.POST("/orders/:id/archive", s.ArchiveOrder)
	api.POST("/orders/:id/dead-opportunity", s.ArchiveDeadOpportunity)
	api.POST("/orders/:id/permanent-archive", s.PermanentlyArchiveOrder)
	api.PUT("/orders/:id/line-items/:itemId/progress", s.UpdateLineItemProgress)
	api.PUT("/orders/:id/checklist", s.UpdateChecklist)

	art := api.Group("/orders/:id/art")
	art.POST("/placements", s.AddArtPlacement)
	art.DELETE("/placements/:placementId", s.DeleteArtPlacement)
	art.POST("/placements/:placementId/proofs", s.AddArtProof)
	art.POST("/placements/:placementId/proofs/:proofId/send", s.SendArtProof)
	art.POST("/placements/:placementId/proofs/:proofId/feedback", s.RecordArtFeedback)
	art.POST("/placements/:placementId/proofs/:proofId/approve", s.ApproveArtProof)
	art.POST("/placements/:placementId/proofs/:proofId/markups", s.UploadMarkupFile)
	art.POST("/files", s.UploadClientFile)
	art.POST("/final-approval", s.RecordFinalArtApproval)
	art.PUT("/notes", s.UpdateArtNotes)

	api.GET("/export", s.ExportDatabase)
	api.POST("/import", s.ImportDatabase)
	api.GET("/validate", s.ValidateStore)
	api.POST("/pricing/preview", s.PreviewPrice)
}

func actor(c echo.Context) string {
	return c.Request().Header.Get(ActorHeader)
}

// pathID parses a path parameter as a UUID.
func pathID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}
