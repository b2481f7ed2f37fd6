package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"decoflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAutosaveSchedule runs the autosave every thirty seconds.
const DefaultAutosaveSchedule = "*/30 * * * * *"

// AutosaveJob periodically writes the export bundle of the whole store to a
// file, so the store can be restored through an import after a restart.
type AutosaveJob struct {
	handler  queries.ExportDatabaseQueryHandler
	path     string
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu       sync.Mutex
	lastSave []byte
}

// NewAutosaveJob creates a job writing to path on schedule, a six-field cron
// expression. An empty schedule means DefaultAutosaveSchedule.
func NewAutosaveJob(
	handler queries.ExportDatabaseQueryHandler,
	path, schedule string,
	logger *slog.Logger,
) *AutosaveJob {
	if schedule == "" {
		schedule = DefaultAutosaveSchedule
	}
	return &AutosaveJob{
		handler:  handler,
		path:     path,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "autosave_job"),
	}
}

// Start schedules the autosave.
func (j *AutosaveJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Save(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Autosave failed", "path", j.path, "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Autosave job started", "schedule", j.schedule, "path", j.path)
	return nil
}

// Stop waits for a running save and stops the job.
func (j *AutosaveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Autosave job stopped")
}

// Save exports the store and writes it to the autosave file. It reports
// whether the file was written; an unchanged store is not written again.
func (j *AutosaveJob) Save(ctx context.Context) (bool, error) {
	bundle, err := j.handler.Handle(ctx, queries.NewExportDatabaseQuery())
	if err != nil {
		return false, fmt.Errorf("export store: %w", err)
	}

	// exportedAt changes on every run, so only the orders are compared.
	orders, err := json.Marshal(bundle.Orders)
	if err != nil {
		return false, fmt.Errorf("encode orders: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.lastSave != nil && bytes.Equal(orders, j.lastSave) {
		return false, nil
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode bundle: %w", err)
	}
	if err = writeFileAtomic(j.path, data); err != nil {
		return false, err
	}

	j.lastSave = orders
	j.logger.DebugContext(ctx, "Store autosaved", "orders", len(bundle.Orders), "path", j.path)
	return true, nil
}

// writeFileAtomic replaces path with data through a temporary file in the
// same directory.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create autosave directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace autosave file: %w", err)
	}
	return nil
}
