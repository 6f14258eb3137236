package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "console")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New("not-a-level", "json")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := Wrap(zap.New(core))

	scoped := base.With(StringField("request_id", "req-1"))
	ctx := WithContext(context.Background(), scoped)

	base.InfoContext(ctx, "with request", UintField("stock_id", 7))
	base.ErrorContext(context.Background(), "without request", ErrorField(errors.New("boom")))
	base.DebugContext(ctx, "debug")
	base.WarnContext(ctx, "warn", IntField("attempt", 2), Field("reasons", []string{"a"}))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, uint64(7), entries[0].ContextMap()["stock_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
}

func TestFromContext_Fallback(t *testing.T) {
	fallback := NewNop()
	assert.Same(t, fallback, FromContext(context.Background(), fallback))
}
