package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"decoflow/internal/adapters/out/memory"
	"decoflow/internal/core/application/usecases/commands"
	"decoflow/internal/core/application/usecases/queries"
	"decoflow/internal/core/domain/model/art"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type uowFactory struct {
	f *memory.UnitOfWorkFactory
}

func (u uowFactory) Create() commands.OrderUoW {
	return u.f.Create()
}

func newHandlers(store *memory.Store, clock kernel.Clock) Handlers {
	f := uowFactory{f: memory.NewUnitOfWorkFactory(store)}
	reader := memory.NewOrderRepository(store)
	return Handlers{
		CreateOrder:            commands.NewCreateOrderCommandHandler(f, clock),
		UpdateOrder:            commands.NewUpdateOrderCommandHandler(f, clock),
		AdvanceOrder:           commands.NewAdvanceOrderCommandHandler(f, clock),
		MoveBackOrder:          commands.NewMoveBackOrderCommandHandler(f, clock),
		ReopenOrder:            commands.NewReopenOrderCommandHandler(f, clock),
		ArchiveOrder:           commands.NewArchiveOrderCommandHandler(f, clock),
		PermanentlyArchive:     commands.NewPermanentlyArchiveOrderCommandHandler(f, clock),
		ArchiveDeadOpportunity: commands.NewArchiveDeadOpportunityCommandHandler(f, clock, services.NewDeadOpportunityArchiver()),
		UpdateProgress:         commands.NewUpdateLineItemProgressCommandHandler(f, clock),
		UpdateChecklist:        commands.NewUpdateChecklistCommandHandler(f, clock),
		ImportDatabase:         commands.NewImportDatabaseCommandHandler(f),

		AddArtPlacement:        commands.NewAddArtPlacementCommandHandler(f, clock),
		DeleteArtPlacement:     commands.NewDeleteArtPlacementCommandHandler(f, clock),
		AddArtProof:            commands.NewAddArtProofCommandHandler(f, clock),
		SendArtProof:           commands.NewSendArtProofCommandHandler(f, clock),
		RecordArtFeedback:      commands.NewRecordArtFeedbackCommandHandler(f, clock),
		ApproveArtProof:        commands.NewApproveArtProofCommandHandler(f, clock),
		UploadClientFile:       commands.NewUploadClientFileCommandHandler(f, clock),
		UploadMarkupFile:       commands.NewUploadMarkupFileCommandHandler(f, clock),
		RecordFinalArtApproval: commands.NewRecordFinalArtApprovalCommandHandler(f, clock),
		UpdateArtNotes:         commands.NewUpdateArtNotesCommandHandler(f, clock),

		GetOrder:       queries.NewGetOrderQueryHandler(reader),
		ListOrders:     queries.NewListOrdersQueryHandler(reader),
		ValidateStore:  queries.NewValidateStoreQueryHandler(reader),
		ExportDatabase: queries.NewExportDatabaseQueryHandler(reader, clock),
		PreviewPrice:   queries.NewPreviewPriceQueryHandler(),
	}
}

type ServerTestSuite struct {
	suite.Suite
	store *memory.Store
	e     *echo.Echo
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.store = memory.NewStore()
	clock := kernel.FixedClock(time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.e = NewEcho(NewServer(newHandlers(s.store, clock), logger))
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(ActorHeader, "dana")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *ServerTestSuite) createQuote() order.Snapshot {
	rec := s.do(http.MethodPost, "/api/v1/orders", `{
		"customer": {"name": "Acme", "email": "ops@acme.test"},
		"lineItems": [{
			"itemNumber": "G500", "name": "Tee", "color": "Black", "size": "L", "qty": 12,
			"decorationType": "DTF", "decorationPlacements": 1, "dtfSize": "Standard", "cost": "4"
		}]
	}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var snap order.Snapshot
	s.decode(rec, &snap)
	return snap
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) TestCreateGetAndAdvance() {
	created := s.createQuote()
	s.Equal(order.Quote, created.Status)
	s.Equal("dana", created.History[0].PerformedBy)

	rec := s.do(http.MethodGet, "/api/v1/orders/"+created.OrderNumber, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var byNumber order.Snapshot
	s.decode(rec, &byNumber)
	s.Equal(created.ID, byNumber.ID)

	rec = s.do(http.MethodPost, "/api/v1/orders/"+created.ID.String()+"/advance", `{}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var advanced order.Snapshot
	s.decode(rec, &advanced)
	s.Equal(order.Approval, advanced.Status)
	s.Equal(created.Version+1, advanced.Version)

	rec = s.do(http.MethodGet, "/api/v1/orders?status=Approval", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var summaries []queries.OrderSummary
	s.decode(rec, &summaries)
	s.Require().Len(summaries, 1)
	s.Equal(created.OrderNumber, summaries[0].OrderNumber)
}

func (s *ServerTestSuite) TestErrorMapping() {
	created := s.createQuote()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{"unknown order", http.MethodGet, "/api/v1/orders/" + kernel.NewUUID().String(), "", http.StatusNotFound},
		{"unknown order number", http.MethodGet, "/api/v1/orders/TBD-9999", "", http.StatusNotFound},
		{"malformed id", http.MethodPost, "/api/v1/orders/nope/advance", `{}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/v1/orders", `{"customer":`, http.StatusBadRequest},
		{"unknown mode", http.MethodPost, "/api/v1/orders", `{"mode":"draft"}`, http.StatusBadRequest},
		{"unknown status filter", http.MethodGet, "/api/v1/orders?status=Shipped", "", http.StatusBadRequest},
		{"reopen of an open order", http.MethodPost, "/api/v1/orders/" + created.ID.String() + "/reopen",
			`{"target":"Quote"}`, http.StatusUnprocessableEntity},
		{"archive of an open order", http.MethodPost, "/api/v1/orders/" + created.ID.String() + "/archive",
			"", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(tt.method, tt.path, tt.body)

			s.Equal(tt.code, rec.Code, rec.Body.String())
			var body Error
			s.decode(rec, &body)
			s.Equal(tt.code, body.Code)
			s.NotEmpty(body.Message)
		})
	}
}

func (s *ServerTestSuite) TestAdvanceGateFailureNamesTheReason() {
	rec := s.do(http.MethodPost, "/api/v1/orders", `{"customer": {"name": "Acme"}}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var empty order.Snapshot
	s.decode(rec, &empty)

	rec = s.do(http.MethodPost, "/api/v1/orders/"+empty.ID.String()+"/advance", `{}`)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	var body Error
	s.decode(rec, &body)
	s.Contains(body.Message, "line item")
}

func (s *ServerTestSuite) TestArtFlow() {
	created := s.createQuote()
	base := "/api/v1/orders/" + created.ID.String()
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/advance", `{}`).Code)
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/advance", `{}`).Code)

	rec := s.do(http.MethodPost, base+"/art/placements", `{"location":"Front","width":10,"colorCount":2}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var snap order.Snapshot
	s.decode(rec, &snap)
	s.Require().Len(snap.ArtConfirmation.Placements, 1)
	placement := snap.ArtConfirmation.Placements[0].ID.String()

	rec = s.do(http.MethodPost, base+"/art/placements/"+placement+"/proofs", `{"proofUrl":"https://proofs.test/1.png"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &snap)
	s.Require().Len(snap.ArtConfirmation.Placements[0].Proofs, 1)
	proof := snap.ArtConfirmation.Placements[0].Proofs[0].ID.String()
	proofPath := base + "/art/placements/" + placement + "/proofs/" + proof

	rec = s.do(http.MethodPost, proofPath+"/send", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &snap)
	s.Equal(order.ArtSentToCustomer, snap.ArtStatus)

	rec = s.do(http.MethodPost, proofPath+"/approve", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &snap)
	s.Equal(art.Approved, snap.ArtConfirmation.OverallStatus)
	s.Equal(order.ArtApproved, snap.ArtStatus)

	rec = s.do(http.MethodPut, base+"/art/notes", `{"notes":"use PMS 186"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &snap)
	s.Equal("use PMS 186", snap.ArtConfirmation.Notes)

	rec = s.do(http.MethodPost, base+"/advance", `{}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &snap)
	s.Equal(order.InventoryOrder, snap.Status)
}

func (s *ServerTestSuite) TestFinalApprovalRequiresName() {
	created := s.createQuote()

	rec := s.do(http.MethodPost, "/api/v1/orders/"+created.ID.String()+"/art/final-approval", `{"method":"email"}`)

	s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
}

func (s *ServerTestSuite) TestExportImportRoundTrip() {
	created := s.createQuote()

	rec := s.do(http.MethodGet, "/api/v1/export", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "decoflow-export-20260504-090000.json")
	exported := rec.Body.String()

	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/v1/orders", `{"customer":{"name":"Later"}}`).Code)
	s.Require().Equal(2, s.store.Len())

	rec = s.do(http.MethodPost, "/api/v1/import", exported)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var result ImportResponse
	s.decode(rec, &result)
	s.Equal(1, result.Imported)
	s.True(result.Report.Valid)
	s.Equal(1, s.store.Len())

	rec = s.do(http.MethodGet, "/api/v1/orders/"+created.ID.String(), "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestImportRejectsInvalidBundle() {
	s.createQuote()

	rec := s.do(http.MethodPost, "/api/v1/import", `{"metadata":{"schemaVersion":"1.0.0"},"orders":"nope"}`)

	s.GreaterOrEqual(rec.Code, http.StatusBadRequest)
	s.Less(rec.Code, http.StatusInternalServerError)
	s.Equal(1, s.store.Len())
}

func (s *ServerTestSuite) TestValidateStore() {
	s.createQuote()

	rec := s.do(http.MethodGet, "/api/v1/validate", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var report struct {
		Valid bool `json:"valid"`
	}
	s.decode(rec, &report)
	s.True(report.Valid)
}

func TestPreviewPrice(t *testing.T) {
	clock := kernel.FixedClock(time.Now())
	e := NewEcho(NewServer(newHandlers(memory.NewStore(), clock), slog.New(slog.NewTextHandler(io.Discard, nil))))

	tests := []struct {
		name      string
		body      string
		code      int
		unitPrice string
		lineTotal string
	}{
		{
			name:      "dtf standard",
			body:      `{"cost":"4","decorationType":"DTF","decorationPlacements":1,"dtfSize":"Standard","size":"L","qty":24}`,
			code:      http.StatusOK,
			unitPrice: "13",
			lineTotal: "312",
		},
		{
			name: "negative quantity",
			body: `{"cost":"4","decorationType":"DTF","decorationPlacements":1,"qty":-1}`,
			code: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/preview", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			if tt.code != http.StatusOK {
				return
			}
			var price queries.PreviewPriceResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &price))
			assert.True(t, decimal.RequireFromString(tt.unitPrice).Equal(price.UnitPrice), price.UnitPrice.String())
			assert.True(t, decimal.RequireFromString(tt.lineTotal).Equal(price.LineTotal), price.LineTotal.String())
		})
	}
}
