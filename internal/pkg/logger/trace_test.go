package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	h := &ContextHandler{log.NewJSONHandler(buf, nil)}
	l := log.New(h).With("component", "test")

	l.InfoContext(WithTraceID(context.Background(), "abc"), "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "abc", record[TraceIDKey])
	require.Equal(t, "test", record["component"])
}

func TestTraceIDFromContext(t *testing.T) {
	require.Empty(t, TraceIDFromContext(context.Background()))
	require.Equal(t, "x", TraceIDFromContext(WithTraceID(context.Background(), "x")))
}
