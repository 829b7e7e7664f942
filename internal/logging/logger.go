package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output) so the curated TUI
// output stays clean.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "PINPAD_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks PINPAD_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the PINPAD_LOG_LEVEL
// environment variable. This is the recommended way to initialize logging
// for CLI commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
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

// Mask replaces every rune of a secret with '*'. Used everywhere a PIN
// or PIN fragment would otherwise reach a log line.
func Mask(secret string) string {
	return strings.Repeat("*", len([]rune(secret)))
}

// LogSessionEvent logs a PIN session lifecycle event (started, confirmed,
// cancelled). Only the buffer length is recorded, never its content.
func LogSessionEvent(session string, event string, pinLength int) {
	Info("PIN session event",
		zap.String("session", session),
		zap.String("event", event),
		zap.Int("pin_length", pinLength),
	)
}

// LogButtonEvent logs an input event at debug level.
func LogButtonEvent(session string, button string, kind string) {
	Debug("Button event",
		zap.String("session", session),
		zap.String("button", button),
		zap.String("kind", kind),
	)
}

// LogCommit logs a resolved carousel commit. The action name for digit
// commits is just "digit" so the log stream leaks nothing about the PIN.
func LogCommit(session string, action string, longPress bool) {
	Debug("Carousel commit",
		zap.String("session", session),
		zap.String("action", action),
		zap.Bool("long_press", longPress),
	)
}

// LogConnection logs a simulator connection event
func LogConnection(remoteAddr string, event string) {
	Info("Connection event",
		zap.String("remote_addr", remoteAddr),
		zap.String("event", event),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
