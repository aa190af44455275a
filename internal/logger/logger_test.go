package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			l, err := NewLogger(format, level)
			require.NoError(t, err, "%s/%s", format, level)
			require.NotNil(t, l)
		}
	}

	l, err := NewLogger("text", "none")
	require.NoError(t, err)
	require.NotNil(t, l)

	_, err = NewLogger("text", "verbose")
	require.ErrorContains(t, err, "unknown log level")

	_, err = NewLogger("xml", "info")
	require.ErrorContains(t, err, "unknown log format")
}

func TestWithContextAddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &ZapLogger{zap.New(core)}

	ctx := ContextWithRequestID(context.Background(), "req-1")
	l.InfoWithContext(ctx, "hello", zap.String("word", "cat"))
	l.InfoWithContext(context.Background(), "bare")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	require.Equal(t, "cat", entries[0].ContextMap()["word"])
	require.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestWithReturnsChildLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var l Logger = &ZapLogger{zap.New(core)}

	l.With(zap.String("run", "r1")).Info("child")
	l.Info("parent")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, "r1", entries[0].ContextMap()["run"])
	require.NotContains(t, entries[1].ContextMap(), "run")
}
