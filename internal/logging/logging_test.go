package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emilianohg/devboard/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithSink_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithSink(zapcore.AddSync(&buf), zapcore.InfoLevel)

	logger.Debug("hidden")
	logger.Info("project created", zap.String("project_id", "42"))
	require.NoError(t, logger.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "project created", entry["msg"])
	assert.Equal(t, "42", entry["project_id"])
	assert.Equal(t, "devboard", entry["app"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_CreatesLogFile(t *testing.T) {
	t.Setenv(config.HomeEnv, t.TempDir())

	logger, cleanup, err := New(config.DefaultConfig())
	require.NoError(t, err)
	logger.Info("hello")
	cleanup()

	path, err := config.LogPath()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
