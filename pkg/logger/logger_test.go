package logger

import (
	"path/filepath"
	"testing"

	"github.com/gestiparc/gestiparc/internal/common/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_StdoutJSON(t *testing.T) {
	cfg := &config.LoggerConfig{}
	logger, err := NewLogger(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, logger)

	// defaults are applied in place
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
}

func TestNewLogger_Console(t *testing.T) {
	cfg := &config.LoggerConfig{Level: "debug", Format: "console", Color: true}
	logger, err := NewLogger(cfg)
	assert.NoError(t, err)
	logger.Debug("debug message reaches console encoder")
}

func TestNewLogger_FileOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.LoggerConfig{
		Output:   "file",
		FilePath: filepath.Join(dir, "logs", "apiserver.log"),
	}
	logger, err := NewLogger(cfg)
	assert.NoError(t, err)
	logger.Info("hello")
	assert.NoError(t, logger.Sync())
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, getLogLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, getLogLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, getLogLevel("error"))
	assert.Equal(t, zapcore.FatalLevel, getLogLevel("fatal"))
	assert.Equal(t, zapcore.InfoLevel, getLogLevel("unknown"))
}

func TestNewLogger_StacktraceOption(t *testing.T) {
	cfg := &config.LoggerConfig{Stacktrace: true}
	logger, err := NewLogger(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, logger)
}
