// Package yalogger defines the structured logging contract used by the
// library and a logrus-backed implementation of it. The notification
// orchestrator and the transport log through this interface; the pure
// text-processing packages stay log-free and report failures through
// yaerrors instead.
//
// Example usage:
//
//	log := yalogger.NewBaseLogger(nil).NewLogger()
//	log.WithBotName("alerts").Info("notification sent")
package yalogger

import (
	"github.com/google/uuid"
)

// Config defines the configuration options for the base logger.
type Config struct {
	Level            Level
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
}

// BaseLogger is a factory for Logger instances sharing one configured sink.
type BaseLogger interface {
	// NewLogger creates a new Logger instance from the base logger.
	NewLogger() Logger
}

// Logger defines a structured logging interface with support for various log
// levels, formatting, and context-aware logging using key-value fields.
type Logger interface {
	// Info logs a message at the Info level.
	//
	// Example usage:
	//
	//   logger.Info("notification sent")
	Info(msg string)

	// Infof logs a formatted message at the Info level.
	//
	// Example usage:
	//
	//   logger.Infof("sent part %d of %d", i, n)
	Infof(format string, args ...any)

	// Trace logs a message at the Trace level (very low-level debugging).
	Trace(msg string)

	// Tracef logs a formatted message at the Trace level.
	Tracef(format string, args ...any)

	// Error logs a message at the Error level.
	//
	// Example usage:
	//
	//   logger.Error("telegram send failed")
	Error(msg string)

	// Errorf logs a formatted message at the Error level.
	Errorf(format string, args ...any)

	// Warn logs a message at the Warn level.
	//
	// Example usage:
	//
	//   logger.Warn("rate limited, backing off")
	Warn(msg string)

	// Warnf logs a formatted message at the Warn level.
	Warnf(format string, args ...any)

	// Debug logs a message at the Debug level.
	Debug(msg string)

	// Debugf logs a formatted message at the Debug level.
	Debugf(format string, args ...any)

	// Fatal logs a message at the Fatal level and terminates the application.
	Fatal(msg string)

	// Fatalf logs a formatted message at the Fatal level.
	Fatalf(format string, args ...any)

	// WithField returns a logger with a single field added to the context.
	//
	// Example usage:
	//
	//   logger.WithField("part", 2)
	WithField(key string, value any) Logger

	// WithFields returns a logger with multiple fields added to the context.
	WithFields(fields map[string]any) Logger

	// WithRequestStringID returns a logger with a string request ID in the
	// context. Useful for correlating all log lines of one notification.
	WithRequestStringID(id string) Logger

	// WithRequestUUID returns a logger with a UUID request ID in the context.
	//
	// Example usage:
	//
	//   logger.WithRequestUUID(uuid.New())
	WithRequestUUID(id uuid.UUID) Logger

	// WithRandomRequestID returns a logger with a randomly generated request
	// ID. Useful when no external ID is available.
	WithRandomRequestID() Logger

	// WithBotName returns a logger with the sending bot's name in the context.
	//
	// Example usage:
	//
	//   logger.WithBotName("alerts")
	WithBotName(name string) Logger

	// WithChatID returns a logger with the destination chat ID in the context.
	WithChatID(chatID int64) Logger

	// GetFields returns the current log context fields as a map.
	GetFields() map[string]any

	// GetField returns the value of a field from the current log context,
	// or nil if the field is not set.
	GetField(key string) any

	// DeleteField removes a field from the current log context.
	DeleteField(key string)
}
