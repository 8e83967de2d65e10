package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandlerFanOut(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h)

	log.Info("info only")
	log.Error("error everywhere")

	assert.Contains(t, a.String(), "info only")
	assert.Contains(t, a.String(), "error everywhere")
	assert.NotContains(t, b.String(), "info only", "level gating applies per destination")
	assert.Contains(t, b.String(), "error everywhere")
}

func TestMultiHandlerEnabled(t *testing.T) {
	t.Parallel()

	h := newMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo), "enabled when any destination accepts the level")
}

func TestNewWithSentryFallsBackWithoutDSN(t *testing.T) {
	t.Parallel()

	log := NewWithSentry(SentryConfig{})
	require.NotNil(t, log)
	log.Info("must not panic")
}

func TestNewNopeDiscards(t *testing.T) {
	t.Parallel()

	log := NewNope()
	log.Error("silent")
}
