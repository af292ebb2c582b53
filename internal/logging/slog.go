// Package logging wires slog up with console and file handlers behind a
// single fan-out handler.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Manager owns the configured slog.Logger for the process.
type Manager struct {
	logger *slog.Logger
}

// NewManager creates an unconfigured logging manager.
func NewManager() *Manager {
	return &Manager{}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup initializes logging with a console handler and, when file is
// non-nil, a file handler receiving the same records.
func (m *Manager) Setup(file io.Writer, level string) {
	lvl := parseLevel(level)

	// RFC3339 timestamps on every handler
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	var handlers []slog.Handler
	handlers = append(handlers, slog.NewTextHandler(os.Stdout, opts))
	if file != nil {
		handlers = append(handlers, slog.NewTextHandler(file, opts))
	}

	m.logger = slog.New(NewMultiHandler(handlers...))
	m.logger.Info("Logging initialized", "level", level)
}

// Logger returns the configured slog.Logger, or a stdout default when
// Setup has not been called (tests mostly).
func (m *Manager) Logger() *slog.Logger {
	if m.logger == nil {
		return slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return m.logger
}
