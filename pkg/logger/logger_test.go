package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")

		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("hello")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("tenant", ctxKey{}),
		logger.WithContextExtractors(nil),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "acme")
	log.With(slog.String("a", "b")).InfoContext(ctx, "hello")

	entry := decode(t, buf)
	assert.Equal(t, "acme", entry["tenant"])
	assert.Equal(t, "b", entry["a"])
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("production", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "api"), logger.WithOutput(buf))
		log.Debug("hidden")
		log.Info("shown")

		entry := decode(t, buf)
		assert.Equal(t, "production", entry["env"])
		assert.Equal(t, "api", entry["service"])
	})

	t.Run("development defaults to text and debug", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("", "api"), logger.WithOutput(buf))
		log.Debug("visible")
		assert.Contains(t, buf.String(), "env=development")
		assert.Contains(t, buf.String(), "msg=visible")
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.NewFromConfig(logger.Config{Env: "production", Service: "svc", Level: "error"}, logger.WithOutput(buf))
	log.Warn("dropped")
	assert.Empty(t, buf.String())

	log.Error("kept")
	assert.Equal(t, "svc", decode(t, buf)["service"])
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, slog.Attr{}, logger.KeyID(""))
	assert.Equal(t, "cookie", logger.CookieName("uid").Key)
	assert.Equal(t, "reason", logger.Reason("integrity").Key)
	assert.Equal(t, "component", logger.Component("store").Key)
}

func TestNop(t *testing.T) {
	t.Parallel()

	log := logger.Nop()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("nothing happens")
}

func TestWithHandler(t *testing.T) {
	t.Parallel()

	var primary, secondary bytes.Buffer
	log := logger.New(
		logger.WithOutput(&primary),
		logger.WithHandler(slog.NewJSONHandler(&secondary, &slog.HandlerOptions{Level: slog.LevelWarn})),
		logger.WithAttr(slog.String("service", "svc")),
	)

	log.Info("only primary")
	log.Warn("both")

	assert.Contains(t, primary.String(), "only primary")
	assert.Contains(t, primary.String(), "both")
	assert.NotContains(t, secondary.String(), "only primary")

	rec := decode(t, &secondary)
	assert.Equal(t, "both", rec["msg"])
	assert.Equal(t, "svc", rec["service"])
}

func TestWithSentry(t *testing.T) {
	t.Parallel()

	t.Run("empty dsn is a no-op", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithSentry(logger.SentryConfig{}))
		log.Info("hello")
		assert.NotContains(t, buf.String(), "sentry")
	})

	t.Run("invalid dsn falls back to primary output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithSentry(logger.SentryConfig{DSN: "not-a-dsn"}))
		assert.Contains(t, buf.String(), "failed to initialize sentry")

		buf.Reset()
		log.Error("still logged")
		assert.Contains(t, buf.String(), "still logged")
	})
}
