package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pricewatch-bot/internal/config"
)

func TestTraceLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   tracelog.LogLevel
		want slog.Level
	}{
		{tracelog.LogLevelError, slog.LevelError},
		{tracelog.LogLevelWarn, slog.LevelWarn},
		{tracelog.LogLevelInfo, slog.LevelInfo},
		{tracelog.LogLevelDebug, slog.LevelDebug},
		{tracelog.LogLevelTrace, slog.LevelDebug},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, traceLevel(tt.in), tt.in.String())
	}
}

func TestSlogTracer_WritesData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	slogTracer(log).Log(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{
		"sql": "SELECT 1",
	})

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "Query", m["msg"])
	assert.Equal(t, "INFO", m["level"])
	assert.Equal(t, "SELECT 1", m["sql"])
}

func TestNewPool_InvalidDSN(t *testing.T) {
	t.Parallel()

	_, err := NewPool(context.Background(), config.DatabaseConfig{DSN: "://bad"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse database DSN")
}
