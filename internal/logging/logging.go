// Package logging builds the zap logger used across devboard.
//
// The TUI owns the terminal, so logs go to a JSON-lines file under the data
// directory instead of stderr.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emilianohg/devboard/internal/config"
)

// ParseLevel maps a config string to a zap level. Unknown values mean info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New opens the log file and returns a logger writing to it. The returned
// cleanup flushes and closes the file.
func New(cfg *config.Config) (*zap.Logger, func(), error) {
	path, err := config.LogPath()
	if err != nil {
		return nil, nil, err
	}
	if err := config.EnsureDirectories(); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := NewWithSink(zapcore.AddSync(f), ParseLevel(cfg.LogLevel))
	cleanup := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, cleanup, nil
}

// NewWithSink builds a JSON logger writing to sink at level.
func NewWithSink(sink zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.TimeKey = "time"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	return zap.New(core).With(zap.String("app", "devboard"))
}

// Fallback returns New's logger, or a no-op logger if the file can't be
// opened. Logging must never stop the dashboard from starting.
func Fallback(cfg *config.Config) (*zap.Logger, func()) {
	logger, cleanup, err := New(cfg)
	if err != nil {
		return zap.NewNop(), func() {}
	}
	return logger, cleanup
}
