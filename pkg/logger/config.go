package logger

import (
	"log/slog"
	"strings"
)

// Config holds logger settings loaded from the environment.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"cookiekit"`
	Level   string `env:"LOG_LEVEL" envDefault:""`

	SentryDSN string `env:"SENTRY_DSN" envDefault:""`
}

// NewFromConfig builds a logger from cfg. A non-empty Level overrides the
// environment preset.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{WithEnvironment(cfg.Env, cfg.Service)}
	if lvl, ok := parseLevel(cfg.Level); ok {
		configOpts = append(configOpts, WithLevel(lvl))
	}
	if cfg.SentryDSN != "" {
		configOpts = append(configOpts, WithSentry(SentryConfig{
			DSN:         cfg.SentryDSN,
			Environment: cfg.Env,
			MinLevel:    slog.LevelWarn,
		}))
	}
	return New(append(configOpts, opts...)...)
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
