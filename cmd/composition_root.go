package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	httpin "decoflow/internal/adapters/in/http"
	"decoflow/internal/adapters/out/memory"
	"decoflow/internal/adapters/out/postgres"
	"decoflow/internal/adapters/out/postgres/orderrepo"
	"decoflow/internal/core/application/usecases/commands"
	"decoflow/internal/core/application/usecases/queries"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/services"
	"decoflow/internal/core/ports"
	"decoflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	clock      kernel.Clock
	uowFactory ports.UnitOfWorkFactory
	reader     queries.OrderReader
}

// NewCompositionRoot wires the application on top of gormDB, or on an
// in-memory store when gormDB is nil.
func NewCompositionRoot(cfg Config, logger *slog.Logger, gormDB *gorm.DB) CompositionRoot {
	root := CompositionRoot{
		cfg:    cfg,
		logger: logger,
		clock:  kernel.SystemClock(),
	}

	if gormDB != nil {
		factory := postgres.NewGormUnitOfWorkFactory(gormDB)
		root.uowFactory = factory
		// Outside of a transaction the repository reads through the pool.
		root.reader = factory.Create().OrderRepository()
		return root
	}

	store := memory.NewStore()
	root.uowFactory = memory.NewUnitOfWorkFactory(store)
	root.reader = memory.NewOrderRepository(store)
	return root
}

// Migrate creates or updates the orders table.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(&orderrepo.OrderDTO{})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMoveBackOrderCommandHandler() commands.MoveBackOrderCommandHandler {
	return commands.NewMoveBackOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReopenOrderCommandHandler() commands.ReopenOrderCommandHandler {
	return commands.NewReopenOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateArchiveOrderCommandHandler() commands.ArchiveOrderCommandHandler {
	return commands.NewArchiveOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreatePermanentlyArchiveOrderCommandHandler() commands.PermanentlyArchiveOrderCommandHandler {
	return commands.NewPermanentlyArchiveOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateArchiveDeadOpportunityCommandHandler() commands.ArchiveDeadOpportunityCommandHandler {
	return commands.NewArchiveDeadOpportunityCommandHandler(c.orderUoWFactory(), c.clock, services.NewDeadOpportunityArchiver())
}

func (c *CompositionRoot) CreateUpdateLineItemProgressCommandHandler() commands.UpdateLineItemProgressCommandHandler {
	return commands.NewUpdateLineItemProgressCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateChecklistCommandHandler() commands.UpdateChecklistCommandHandler {
	return commands.NewUpdateChecklistCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateImportDatabaseCommandHandler() commands.ImportDatabaseCommandHandler {
	return commands.NewImportDatabaseCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddArtPlacementCommandHandler() commands.AddArtPlacementCommandHandler {
	return commands.NewAddArtPlacementCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteArtPlacementCommandHandler() commands.DeleteArtPlacementCommandHandler {
	return commands.NewDeleteArtPlacementCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddArtProofCommandHandler() commands.AddArtProofCommandHandler {
	return commands.NewAddArtProofCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSendArtProofCommandHandler() commands.SendArtProofCommandHandler {
	return commands.NewSendArtProofCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRecordArtFeedbackCommandHandler() commands.RecordArtFeedbackCommandHandler {
	return commands.NewRecordArtFeedbackCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateApproveArtProofCommandHandler() commands.ApproveArtProofCommandHandler {
	return commands.NewApproveArtProofCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUploadClientFileCommandHandler() commands.UploadClientFileCommandHandler {
	return commands.NewUploadClientFileCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUploadMarkupFileCommandHandler() commands.UploadMarkupFileCommandHandler {
	return commands.NewUploadMarkupFileCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRecordFinalArtApprovalCommandHandler() commands.RecordFinalArtApprovalCommandHandler {
	return commands.NewRecordFinalArtApprovalCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateArtNotesCommandHandler() commands.UpdateArtNotesCommandHandler {
	return commands.NewUpdateArtNotesCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateValidateStoreQueryHandler() queries.ValidateStoreQueryHandler {
	return queries.NewValidateStoreQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateExportDatabaseQueryHandler() queries.ExportDatabaseQueryHandler {
	return queries.NewExportDatabaseQueryHandler(c.reader, c.clock)
}

// CreateHTTPServer builds the API server over every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		UpdateOrder:            c.CreateUpdateOrderCommandHandler(),
		AdvanceOrder:           c.CreateAdvanceOrderCommandHandler(),
		MoveBackOrder:          c.CreateMoveBackOrderCommandHandler(),
		ReopenOrder:            c.CreateReopenOrderCommandHandler(),
		ArchiveOrder:           c.CreateArchiveOrderCommandHandler(),
		PermanentlyArchive:     c.CreatePermanentlyArchiveOrderCommandHandler(),
		ArchiveDeadOpportunity: c.CreateArchiveDeadOpportunityCommandHandler(),
		UpdateProgress:         c.CreateUpdateLineItemProgressCommandHandler(),
		UpdateChecklist:        c.CreateUpdateChecklistCommandHandler(),
		ImportDatabase:         c.CreateImportDatabaseCommandHandler(),

		AddArtPlacement:        c.CreateAddArtPlacementCommandHandler(),
		DeleteArtPlacement:     c.CreateDeleteArtPlacementCommandHandler(),
		AddArtProof:            c.CreateAddArtProofCommandHandler(),
		SendArtProof:           c.CreateSendArtProofCommandHandler(),
		RecordArtFeedback:      c.CreateRecordArtFeedbackCommandHandler(),
		ApproveArtProof:        c.CreateApproveArtProofCommandHandler(),
		UploadClientFile:       c.CreateUploadClientFileCommandHandler(),
		UploadMarkupFile:       c.CreateUploadMarkupFileCommandHandler(),
		RecordFinalArtApproval: c.CreateRecordFinalArtApprovalCommandHandler(),
		UpdateArtNotes:         c.CreateUpdateArtNotesCommandHandler(),

		GetOrder:       c.CreateGetOrderQueryHandler(),
		ListOrders:     c.CreateListOrdersQueryHandler(),
		ValidateStore:  c.CreateValidateStoreQueryHandler(),
		ExportDatabase: c.CreateExportDatabaseQueryHandler(),
		PreviewPrice:   queries.NewPreviewPriceQueryHandler(),
	}, c.logger)
}

// CreateJobManager builds the scheduled jobs. Autosave is only scheduled
// when enabled in the configuration.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var autosave *jobs.AutosaveJob
	if c.cfg.AutosaveEnabled {
		autosave = jobs.NewAutosaveJob(c.CreateExportDatabaseQueryHandler(), c.cfg.AutosavePath, c.cfg.AutosaveSchedule, c.logger)
	}
	return jobs.NewJobManager(autosave, c.logger)
}

// RestoreAutosave imports the autosave file into the in-memory store. It
// does nothing for the postgres driver, when autosave is disabled or when
// no file has been written yet. It returns the number of restored orders.
func (c *CompositionRoot) RestoreAutosave(ctx context.Context) (int, error) {
	if c.cfg.StorageDriver != StorageMemory || !c.cfg.AutosaveEnabled {
		return 0, nil
	}

	data, err := os.ReadFile(c.cfg.AutosavePath)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read autosave: %w", err)
	}

	cmd, err := commands.NewImportDatabaseCommand(data)
	if err != nil {
		return 0, fmt.Errorf("decode autosave: %w", err)
	}
	handler := c.CreateImportDatabaseCommandHandler()
	result, err := handler.Handle(ctx, cmd)
	if err != nil {
		return 0, fmt.Errorf("restore autosave: %w", err)
	}
	return result.Imported, nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
