package logger

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/calcmcp/calculator-mcp/pkg/config"
)

func TestPackageHelpersUseGlobalLogger(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Debug("debug message", "op", "add")
	Info("info message")
	Warn("warn message")
	Error("error message", "error", "boom")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "debug message", entries[0].Message)
	assert.Equal(t, "add", entries[0].ContextMap()["op"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestSetupWritesToFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	path := filepath.Join(t.TempDir(), "calc.log")
	err := Setup(config.LoggingConfig{Level: "warn", Format: "json", File: path})
	require.NoError(t, err)

	Info("dropped below level")
	Warn("kept", "a", 1.5)
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped below level")
	assert.Contains(t, string(data), `"msg":"kept"`)
	assert.Contains(t, string(data), `"a":1.5`)
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	err := Setup(config.LoggingConfig{Level: "verbose", Format: "console"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "verbose"`)
	assert.Same(t, prev, Logger)
}

func TestSetupClosesReplacedOutput(t *testing.T) {
	if _, err := os.ReadDir("/proc/self/fd"); err != nil {
		t.Skip("/proc/self/fd not available")
	}

	prev := Logger
	t.Cleanup(func() { Logger = prev })
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	dir := t.TempDir()
	require.NoError(t, Setup(config.LoggingConfig{Level: "info", Format: "json", File: filepath.Join(dir, "0.log")}))
	before := openFiles(t)

	for i := 1; i <= 5; i++ {
		require.NoError(t, Setup(config.LoggingConfig{Level: "info", Format: "json", File: filepath.Join(dir, strconv.Itoa(i)+".log")}))
	}
	assert.Equal(t, before, openFiles(t))

	Info("last")
	Sync()
	data, err := os.ReadFile(filepath.Join(dir, "5.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"last"`)
}

func openFiles(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	return len(entries)
}
