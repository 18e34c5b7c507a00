// Package logger provides the process-wide structured logger, backed by zap.
//
// DEBUG logging can be enabled by setting the CALC_DEBUG environment variable:
//
//	export CALC_DEBUG=1
//
// Logs never go to stdout: the MCP stdio transport owns it.
package logger

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calcmcp/calculator-mcp/pkg/config"
)

var (
	// Logger is the global logger instance
	Logger *zap.SugaredLogger

	// closeOutput releases the file behind Logger; a no-op for stderr.
	closeOutput = func() {}
)

func init() {
	level := "info"
	if config.DebugEnabled(os.Getenv("CALC_DEBUG")) {
		level = "debug"
	}

	l, closer, err := build(config.LoggingConfig{Level: level, Format: "console"})
	if err != nil {
		l, closer = zap.NewNop(), func() {}
	}
	Logger = l.Sugar()
	closeOutput = closer
}

// Setup replaces the global logger with one built from cfg and closes the
// output of the logger it replaces.
func Setup(cfg config.LoggingConfig) error {
	l, closer, err := build(cfg)
	if err != nil {
		return err
	}
	replace(l, closer)
	return nil
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	replace(l, func() {})
}

func replace(l *zap.Logger, closer func()) {
	_ = Logger.Sync()
	prevClose := closeOutput
	Logger = l.Sugar()
	closeOutput = closer
	prevClose()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}

func build(cfg config.LoggingConfig) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	sink, closer, err := zap.Open(out)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open log output %s", out)
	}
	errSink, _, err := zap.Open("stderr")
	if err != nil {
		closer()
		return nil, nil, errors.Wrap(err, "failed to open stderr")
	}

	core := zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(level))
	l := zap.New(core,
		zap.ErrorOutput(errSink),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	return l, closer, nil
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, keysAndValues ...any) {
	Logger.Debugw(msg, keysAndValues...)
}

// Info logs an info message
func Info(msg string, keysAndValues ...any) {
	Logger.Infow(msg, keysAndValues...)
}

// Warn logs a warning message
func Warn(msg string, keysAndValues ...any) {
	Logger.Warnw(msg, keysAndValues...)
}

// Error logs an error message
func Error(msg string, keysAndValues ...any) {
	Logger.Errorw(msg, keysAndValues...)
}
