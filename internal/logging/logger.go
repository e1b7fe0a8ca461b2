package logging

import (
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger atomic.Pointer[zap.Logger]

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "BIOLLANTE_LOG_LEVEL"

// Rotation limits for the log file
const (
	maxFileSizeMB  = 10
	maxFileBackups = 3
	maxFileAgeDays = 28
)

// Initialize creates a new console logger with the specified level.
// If level is empty, it checks BIOLLANTE_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeWithFile(level, "", true)
}

// InitializeWithFile creates a logger that writes JSON lines to a rotating
// file at path, and to stdout when console is true. An empty path disables
// the file. The full-screen wizard passes console=false so log lines never
// land on top of the UI.
func InitializeWithFile(level string, path string, console bool) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" || (path == "" && !console) {
		logger.Store(zap.NewNop())
		return nil
	}

	zapLevel := ParseLevel(level)

	var cores []zapcore.Core

	if console {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stdout),
			zapLevel,
		))
	}

	if path != "" {
		fileEncoderConfig := zap.NewProductionEncoderConfig()
		fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxFileSizeMB,
			MaxBackups: maxFileBackups,
			MaxAge:     maxFileAgeDays,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoderConfig),
			fileWriter,
			zapLevel,
		))
	}

	l := zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
	)
	logger.Store(l)

	return nil
}

// InitializeFromEnv initializes the logger from the BIOLLANTE_LOG_LEVEL
// environment variable. This is the recommended way to initialize logging
// for CLI commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// ParseLevel maps a level name to a zap level.
// Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger and returns a function restoring the
// previous one.
func SetLogger(l *zap.Logger) func() {
	prev := logger.Swap(l)
	return func() {
		if prev == nil {
			prev = zap.NewNop()
		}
		logger.Store(prev)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	// Fallback to silent logger if not initialized
	// This ensures no unexpected log output in CLI commands
	nop := zap.NewNop()
	if logger.CompareAndSwap(nil, nop) {
		return nop
	}
	return logger.Load()
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogSubmission logs a request the job accepted
func LogSubmission(endpoint string, method string, requestID string, statusCode int, duration time.Duration) {
	Info("Submission accepted",
		zap.String("endpoint", endpoint),
		zap.String("method", method),
		zap.String("request_id", requestID),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", duration),
	)
}

// LogSubmissionError logs a request that failed or was rejected
func LogSubmissionError(endpoint string, method string, err error) {
	Error("Submission failed",
		zap.String("endpoint", endpoint),
		zap.String("method", method),
		zap.Error(err),
	)
}

// LogTabChange logs a tab activation
func LogTabChange(tabID string, panelID string) {
	Debug("Tab activated",
		zap.String("tab", tabID),
		zap.String("panel", panelID),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if l := logger.Load(); l != nil {
		_ = l.Sync()
	}
}
