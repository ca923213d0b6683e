package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink unavailable")
}

func TestMultiHandler_FansOut(t *testing.T) {
	var debug, warn bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h)

	log.Debug("Tree built", "tree.nodes", 7)
	log.Warn("Rejected human input", "move", 10)

	assert.Contains(t, debug.String(), "Tree built")
	assert.Contains(t, debug.String(), "Rejected human input")
	assert.NotContains(t, warn.String(), "Tree built")
	assert.Contains(t, warn.String(), "move=10")
}

func TestMultiHandler_Enabled(t *testing.T) {
	h := NewMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, NewMultiHandler().Enabled(context.Background(), slog.LevelError))
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewTextHandler(&b, nil),
	)
	log := slog.New(h).With("room.id", "r1").WithGroup("bot")

	log.Info("Move chosen", "move", 3)

	for _, out := range []string{a.String(), b.String()} {
		assert.Contains(t, out, "room.id=r1")
		assert.Contains(t, out, "bot.move=3")
	}
}

func TestMultiHandler_Handle_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	text := slog.NewTextHandler(&buf, nil)
	h := NewMultiHandler(failingHandler{text}, text)

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "Game started", 0)
	err := h.Handle(context.Background(), r)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: slog.LevelWarn, Output: &buf})

	log.Info("hidden")
	log.Warn("shown", "room.id", "r2")

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "room.id=r2")
}

func TestNew_OTelBridge(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: slog.LevelInfo, Output: &buf, OTel: true})

	multi, ok := log.Handler().(*MultiHandler)
	require.True(t, ok)
	assert.Len(t, multi.handlers, 2)

	log.Info("Game finished")
	assert.Contains(t, buf.String(), "Game finished")
}
