package order_test

import (
	"encoding/json"
	"testing"

	"decoflow/internal/core/domain/model/order"
	"decoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Number(t *testing.T) {
	for i, s := range order.Stages() {
		assert.Equal(t, i, s.Number(), s.String())

		back, err := order.StageFromNumber(i)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}

	assert.Equal(t, 0, order.Lead.Number())
	assert.Equal(t, 10, order.Closeout.Number())
	assert.Equal(t, 11, order.Closed.Number())
	assert.Equal(t, -1, order.UnknownStage.Number())

	_, err := order.StageFromNumber(12)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestStage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		stage   order.Stage
		wantErr bool
	}{
		{"lead", order.Lead, false},
		{"closed", order.Closed, false},
		{"unknown", order.UnknownStage, true},
		{"out of range", order.Stage(99), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stage.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStage_Previous(t *testing.T) {
	t.Run("should step back one stage", func(t *testing.T) {
		prev, err := order.InventoryOrder.Previous()

		require.NoError(t, err)
		assert.Equal(t, order.ArtConfirmation, prev)
	})

	t.Run("should reject lead and closed", func(t *testing.T) {
		_, err := order.Lead.Previous()
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = order.Closed.Previous()
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStage_ValidateReopenTo(t *testing.T) {
	for _, target := range order.ReopenTargets() {
		assert.NoError(t, order.Closed.ValidateReopenTo(target), target.String())
	}

	assert.ErrorIs(t, order.Closed.ValidateReopenTo(order.Lead), errs.ErrInvalidTransition)
	assert.ErrorIs(t, order.Closed.ValidateReopenTo(order.Closed), errs.ErrInvalidTransition)
	assert.ErrorIs(t, order.Production.ValidateReopenTo(order.Quote), errs.ErrInvalidTransition)
}

func TestStage_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]order.Stage{"status": order.ArtConfirmation})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"Art Confirmation"}`, string(data))

	var decoded map[string]order.Stage
	require.NoError(t, json.Unmarshal([]byte(`{"status":"inventory received"}`), &decoded))
	assert.Equal(t, order.InventoryReceived, decoded["status"])

	err = json.Unmarshal([]byte(`{"status":"Shipped"}`), &decoded)
	assert.Error(t, err)
}
