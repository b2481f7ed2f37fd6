package http

import (
	"net/http"
	"strconv"
	"strings"

	"decoflow/internal/core/application/usecases/commands"
	"decoflow/internal/core/application/usecases/queries"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders.
//
// Query parameters: status (repeatable stage name), includeArchived,
// archivedOnly.
func (s *Server) ListOrders(c echo.Context) error {
	var statuses []order.Stage
	for _, raw := range c.QueryParams()["status"] {
		for _, name := range strings.Split(raw, ",") {
			stage, err := order.ParseStage(name)
			if err != nil {
				return s.badRequest(c, err)
			}
			statuses = append(statuses, stage)
		}
	}
	includeArchived, err := queryBool(c, "includeArchived")
	if err != nil {
		return s.badRequest(c, err)
	}
	archivedOnly, err := queryBool(c, "archivedOnly")
	if err != nil {
		return s.badRequest(c, err)
	}

	query, err := queries.NewListOrdersQuery(statuses, includeArchived, archivedOnly)
	if err != nil {
		return s.badRequest(c, err)
	}

	summaries, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.failed(c, err)
	}
	return c.JSON(http.StatusOK, summaries)
}

// GetOrder handles GET /api/v1/orders/:id. The id may also be an order
// number.
func (s *Server) GetOrder(c echo.Context) error {
	var (
		query queries.GetOrderQuery
		err   error
	)
	if id, idErr := pathID(c, "id"); idErr == nil {
		query, err = queries.NewGetOrderQuery(id)
	} else {
		query, err = queries.NewGetOrderByNumberQuery(c.Param("id"))
	}
	if err != nil {
		return s.badRequest(c, err)
	}

	snapshot, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.failed(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	var (
		cmd commands.CreateOrderCommand
		err error
	)
	switch strings.ToLower(req.Mode) {
	case "lead":
		var lead order.LeadInfo
		if req.LeadInfo != nil {
			lead = *req.LeadInfo
		}
		cmd, err = commands.NewCreateLeadCommand(kernel.NewUUID(), req.OrderNumber, req.Customer.toDomain(), lead, actor(c))
	case "", "quote":
		cmd, err = commands.NewCreateQuoteCommand(kernel.NewUUID(), req.OrderNumber, req.Customer.toDomain(),
			lineItemInputs(req.LineItems), req.DueDate, actor(c))
	default:
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "mode must be lead or quote",
		})
	}
	if err != nil {
		return s.badRequest(c, err)
	}

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failed(c, err)
	}
	return c.JSON(http.StatusCreated, created.Snapshot())
}

// UpdateOrder handles PATCH /api/v1/orders/:id.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	var req UpdateOrderRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.details(), req.lineItemChanges(), actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.UpdateOrder.Handle(c.Request().Context(), cmd))
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance.
func (s *Server) AdvanceOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	var req AdvanceRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(id, req.Target, req.WithArtPending, req.Note, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.AdvanceOrder.Handle(c.Request().Context(), cmd))
}

// MoveBackOrder handles POST /api/v1/orders/:id/move-back.
func (s *Server) MoveBackOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	cmd, err := commands.NewMoveBackOrderCommand(id, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.MoveBackOrder.Handle(c.Request().Context(), cmd))
}

// ReopenOrder handles POST /api/v1/orders/:id/reopen.
func (s *Server) ReopenOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	var req ReopenRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewReopenOrderCommand(id, req.Target, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.ReopenOrder.Handle(c.Request().Context(), cmd))
}

// ArchiveOrder handles POST /api/v1/orders/:id/archive.
func (s *Server) ArchiveOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	cmd, err := commands.NewArchiveOrderCommand(id, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.ArchiveOrder.Handle(c.Request().Context(), cmd))
}

// PermanentlyArchiveOrder handles POST /api/v1/orders/:id/permanent-archive.
func (s *Server) PermanentlyArchiveOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	cmd, err := commands.NewPermanentlyArchiveOrderCommand(id, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.PermanentlyArchive.Handle(c.Request().Context(), cmd))
}

// ArchiveDeadOpportunity handles POST /api/v1/orders/:id/dead-opportunity.
func (s *Server) ArchiveDeadOpportunity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	var req DeadOpportunityRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewArchiveDeadOpportunityCommand(id, req.SpawnLead, req.Reason, actor(c))
	if err != nil {
		return s.badRequest(c, err)
	}

	result, err := s.h.ArchiveDeadOpportunity.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failed(c, err)
	}
	resp := DeadOpportunityResponse{Archived: result.Archived.Snapshot()}
	if result.Lead != nil {
		lead := result.Lead.Snapshot()
		resp.Lead = &lead
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateLineItemProgress handles PUT /api/v1/orders/:id/line-items/:itemId/progress.
func (s *Server) UpdateLineItemProgress(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return s.badRequest(c, err)
	}
	var req ProgressRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewUpdateLineItemProgressCommand(id, itemID, req.Flag, req.Value)
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.UpdateProgress.Handle(c.Request().Context(), cmd))
}

// UpdateChecklist handles PUT /api/v1/orders/:id/checklist.
func (s *Server) UpdateChecklist(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	var req ChecklistRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewUpdateChecklistCommand(id, req.Flag, req.Value)
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respond(c)(s.h.UpdateChecklist.Handle(c.Request().Context(), cmd))
}

// respond writes the order returned by a command handler.
func (s *Server) respond(c echo.Context) func(*order.Order, error) error {
	return func(o *order.Order, err error) error {
		if err != nil {
			return s.failed(c, err)
		}
		return c.JSON(http.StatusOK, o.Snapshot())
	}
}

func queryBool(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
