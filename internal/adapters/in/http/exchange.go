package http

import (
	"fmt"
	"io"
	"net/http"

	"decoflow/internal/core/application/usecases/commands"
	"decoflow/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ExportDatabase handles GET /api/v1/export. The bundle is served as a
// download named after the export time.
func (s *Server) ExportDatabase(c echo.Context) error {
	bundle, err := s.h.ExportDatabase.Handle(c.Request().Context(), queries.NewExportDatabaseQuery())
	if err != nil {
		return s.failed(c, err)
	}

	name := fmt.Sprintf("decoflow-export-%s.json", bundle.Metadata.ExportedAt.Format("20060102-150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.JSON(http.StatusOK, bundle)
}

// ImportDatabase handles POST /api/v1/import. The body is an export bundle;
// it replaces the whole store or, if anything is invalid, nothing at all.
func (s *Server) ImportDatabase(c echo.Context) error {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewImportDatabaseCommand(data)
	if err != nil {
		return s.badRequest(c, err)
	}

	result, err := s.h.ImportDatabase.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failed(c, err)
	}

	s.logger.InfoContext(c.Request().Context(), "store replaced by import", "orders", result.Imported)
	return c.JSON(http.StatusOK, ImportResponse{Imported: result.Imported, Report: result.Report})
}

// ValidateStore handles GET /api/v1/validate.
func (s *Server) ValidateStore(c echo.Context) error {
	report, err := s.h.ValidateStore.Handle(c.Request().Context(), queries.NewValidateStoreQuery())
	if err != nil {
		return s.failed(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// PreviewPrice handles POST /api/v1/pricing/preview.
func (s *Server) PreviewPrice(c echo.Context) error {
	var req PricePreviewRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	query, err := queries.NewPreviewPriceQuery(req.toDomain(), req.Qty)
	if err != nil {
		return s.badRequest(c, err)
	}

	price, err := s.h.PreviewPrice.Handle(c.Request().Context(), query)
	if err != nil {
		return s.badRequest(c, err)
	}
	return c.JSON(http.StatusOK, price)
}
