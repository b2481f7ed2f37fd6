package exchange_test

import (
	"encoding/json"
	"testing"
	"time"

	"decoflow/internal/core/application/exchange"
	"decoflow/internal/core/domain/model/kernel"
	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func lead(t *testing.T) order.Snapshot {
	t.Helper()
	o, err := order.NewLead(kernel.NewUUID(), "LEAD-0001", order.Customer{Name: "Acme"}, order.LeadInfo{}, "dana", exportedAt)
	require.NoError(t, err)
	return o.Snapshot()
}

func TestNewBundle(t *testing.T) {
	b := exchange.NewBundle([]order.Snapshot{lead(t)}, exportedAt)

	assert.Equal(t, exchange.SchemaVersion, b.Metadata.SchemaVersion)
	assert.Equal(t, 1, b.Metadata.OrderCount)
	assert.Equal(t, exchange.Application, b.Metadata.Application)
	assert.Equal(t, exportedAt, b.Metadata.ExportedAt)
	assert.Len(t, b.Schema.Stages, 12)
	assert.Equal(t, "Lead", b.Schema.Stages[0])
	assert.Equal(t, "Closed", b.Schema.Stages[11])
	assert.Contains(t, b.Schema.DecorationTypes, "ScreenPrint")
	assert.Equal(t, []string{"<8k", "8k-12k", "12k+"}, b.Schema.StitchCountTiers)
}

func TestNewBundle_NilOrdersEncodeAsEmptyArray(t *testing.T) {
	data, err := json.Marshal(exchange.NewBundle(nil, exportedAt))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"orders":[]`)
}

func TestDecode_RoundTrip(t *testing.T) {
	original := exchange.NewBundle([]order.Snapshot{lead(t)}, exportedAt)
	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := exchange.Decode(data)
	require.NoError(t, err)
	require.Len(t, decoded.Orders, 1)
	assert.Equal(t, original.Orders[0].ID, decoded.Orders[0].ID)
	assert.Equal(t, order.Lead, decoded.Orders[0].Status)
}

func TestDecode_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"metadata":`},
		{"unknown field", `{"metadata":{"schemaVersion":"1.0.0"},"orders":[],"extra":1}`},
		{"wrong type", `{"metadata":{"schemaVersion":"1.0.0","orderCount":"two"}}`},
		{"unknown stage", `{"metadata":{"schemaVersion":"1.0.0"},"orders":[{"status":"Shipping"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := exchange.Decode([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestCheckSchemaVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr error
	}{
		{"1.0.0", nil},
		{"1.4.2", nil},
		{"1", nil},
		{"2.0.0", errs.ErrVersionIsInvalid},
		{"0.9.0", errs.ErrVersionIsInvalid},
		{"banana", errs.ErrVersionIsInvalid},
		{"", errs.ErrValueIsRequired},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := exchange.CheckSchemaVersion(tt.version)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
