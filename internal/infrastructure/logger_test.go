package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "unknown", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}

func TestRunIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRunID(ctx))

	ctx = WithRunID(ctx, "run-42")
	assert.Equal(t, "run-42", GetRunID(ctx))
}

func TestRunIDHandlerInjectsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&runIDHandler{
		Handler: slog.NewJSONHandler(&buf, nil),
	})

	ctx := WithRunID(context.Background(), "run-42")
	logger.InfoContext(ctx, "hello", slog.String("year", "2024-25"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "run-42", entry["run_id"])
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "2024-25", entry["year"])
}

func TestRunIDHandlerWithoutRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&runIDHandler{
		Handler: slog.NewJSONHandler(&buf, nil),
	})

	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "run_id")
}

func TestRunIDHandlerPreservesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&runIDHandler{
		Handler: slog.NewJSONHandler(&buf, nil),
	}).With(slog.String("component", "combiner"))

	logger.InfoContext(WithRunID(context.Background(), "run-42"), "hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "combiner", entry["component"])
	assert.Equal(t, "run-42", entry["run_id"])
}
