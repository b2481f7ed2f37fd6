package jobs_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"decoflow/internal/adapters/out/memory"
	"decoflow/internal/core/application/exchange"
	"decoflow/internal/core/application/usecases/queries"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var savedAt = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func addLead(t *testing.T, store *memory.Store, number string) {
	t.Helper()
	o, err := order.NewLead(kernel.NewUUID(), number, order.Customer{Name: "Acme"}, order.LeadInfo{}, "dana", savedAt)
	require.NoError(t, err)
	require.NoError(t, memory.NewOrderRepository(store).Add(t.Context(), o))
}

func newJob(store *memory.Store, path, schedule string) *jobs.AutosaveJob {
	handler := queries.NewExportDatabaseQueryHandler(memory.NewOrderRepository(store), kernel.FixedClock(savedAt))
	return jobs.NewAutosaveJob(handler, path, schedule, discard())
}

func TestAutosaveJob_Save(t *testing.T) {
	store := memory.NewStore()
	path := filepath.Join(t.TempDir(), "nested", "autosave.json")
	job := newJob(store, path, "")
	addLead(t, store, "LEAD-0001")

	written, err := job.Save(t.Context())
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	bundle, err := exchange.Decode(data)
	require.NoError(t, err)
	require.Len(t, bundle.Orders, 1)
	assert.Equal(t, "LEAD-0001", bundle.Orders[0].OrderNumber)
	assert.Equal(t, 1, bundle.Metadata.OrderCount)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestAutosaveJob_Save_SkipsUnchangedStore(t *testing.T) {
	store := memory.NewStore()
	path := filepath.Join(t.TempDir(), "autosave.json")
	job := newJob(store, path, "")
	addLead(t, store, "LEAD-0001")

	written, err := job.Save(t.Context())
	require.NoError(t, err)
	require.True(t, written)

	written, err = job.Save(t.Context())
	require.NoError(t, err)
	assert.False(t, written)

	addLead(t, store, "LEAD-0002")
	written, err = job.Save(t.Context())
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	bundle, err := exchange.Decode(data)
	require.NoError(t, err)
	assert.Len(t, bundle.Orders, 2)
}

func TestAutosaveJob_Save_EmptyStoreStillWritesBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.json")
	job := newJob(memory.NewStore(), path, "")

	written, err := job.Save(t.Context())
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	bundle, err := exchange.Decode(data)
	require.NoError(t, err)
	assert.Empty(t, bundle.Orders)
}

func TestAutosaveJob_Start_InvalidSchedule(t *testing.T) {
	job := newJob(memory.NewStore(), filepath.Join(t.TempDir(), "autosave.json"), "every so often")

	err := job.Start()

	assert.Error(t, err)
}

func TestJobManager_StopAllSavesOnce(t *testing.T) {
	store := memory.NewStore()
	path := filepath.Join(t.TempDir(), "autosave.json")
	manager := jobs.NewJobManager(newJob(store, path, "0 0 0 1 1 *"), discard())
	addLead(t, store, "LEAD-0001")

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestJobManager_WithoutAutosave(t *testing.T) {
	manager := jobs.NewJobManager(nil, discard())

	assert.NoError(t, manager.StartAll())
	assert.NotPanics(t, manager.StopAll)
}
