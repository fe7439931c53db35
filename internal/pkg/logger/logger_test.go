package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelWarn, Output: &buf})

	log.Info("dropped")
	log.Warn("kept", "id", "b-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "b-1", entry["id"])
}

func TestNewPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Pretty: true, Output: &buf})

	log.Info("hello", "id", "b-1")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "b-1")
}

func TestRequestIDIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf}).With("component", "booking")

	log.InfoContext(WithRequestID(context.Background(), "req-7"), "booking created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Equal(t, "booking", entry["component"])
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Equal(t, "abc", RequestIDFromContext(WithRequestID(context.Background(), "abc")))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
