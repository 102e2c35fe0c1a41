package main

import (
	"log/slog"
	"testing"

	"anota/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementFromResult(t *testing.T) {
	result := model.MoneyResult(model.IntentAddSubscription, 0.85, model.MoneyPayload{
		Amount:         5000,
		Currency:       "ARS",
		Merchant:       "netflix",
		Description:    "pagué netflix",
		CategoryID:     "entretenimiento",
		IsSubscription: true,
	})

	m := movementFromResult(result)

	require.NotEmpty(t, m.ID)
	assert.InDelta(t, 5000.0, m.Amount, 0.001)
	assert.Equal(t, "ARS", m.Currency)
	assert.Equal(t, "netflix", m.Merchant)
	assert.Equal(t, "entretenimiento", m.CategoryID)
	assert.Equal(t, model.IntentAddSubscription, m.Intent)
	assert.True(t, m.IsSubscription)
	assert.False(t, m.Date.IsZero())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "WARN", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "garbage", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.level), "level %q", tt.level)
	}
}
