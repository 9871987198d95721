package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// AppLogger wraps a charmbracelet logger for structured key-value logging.
// All output goes to stderr: when the server runs on the stdio transport,
// stdout belongs to the MCP protocol stream.
type AppLogger struct {
	logger *log.Logger
}

var (
	defaultLogger *AppLogger
	once          sync.Once
)

// GetDefault returns the default logger instance (singleton-like for convenience)
func GetDefault() *AppLogger {
	once.Do(func() {
		defaultLogger = NewAppLogger()
	})
	return defaultLogger
}

// Package-level convenience functions for quick logging
func Info(msg string, keyvals ...interface{}) {
	GetDefault().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	GetDefault().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	GetDefault().Error(msg, keyvals...)
}

func Debug(msg string, keyvals ...interface{}) {
	GetDefault().Debug(msg, keyvals...)
}

// ParseLevel converts a LOG_LEVEL value into a charm log level. The accepted
// names follow the server's configuration surface (DEBUG, INFO, WARNING,
// ERROR, CRITICAL), case-insensitively; WARN and FATAL are accepted as
// aliases.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return log.DebugLevel, nil
	case "INFO":
		return log.InfoLevel, nil
	case "WARNING", "WARN":
		return log.WarnLevel, nil
	case "ERROR":
		return log.ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return log.FatalLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level: %q", level)
	}
}

// NewAppLogger creates a logger at INFO level.
func NewAppLogger() *AppLogger {
	return NewAppLoggerAt(log.InfoLevel)
}

// NewAppLoggerAt creates a logger at the given level.
func NewAppLoggerAt(level log.Level) *AppLogger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "mcp-file-server",
	})
	logger.SetLevel(level)

	return &AppLogger{logger: logger}
}

// Log application events
func (al *AppLogger) Info(msg string, keyvals ...interface{}) {
	al.logger.Info(msg, keyvals...)
}

func (al *AppLogger) Warn(msg string, keyvals ...interface{}) {
	al.logger.Warn(msg, keyvals...)
}

func (al *AppLogger) Error(msg string, keyvals ...interface{}) {
	al.logger.Error(msg, keyvals...)
}

func (al *AppLogger) Debug(msg string, keyvals ...interface{}) {
	al.logger.Debug(msg, keyvals...)
}

// With returns a logger carrying additional key-value context on every entry.
func (al *AppLogger) With(keyvals ...interface{}) *AppLogger {
	return &AppLogger{logger: al.logger.With(keyvals...)}
}

// LogPerformance records how long an operation took (debug level).
func (al *AppLogger) LogPerformance(operation string, start time.Time) {
	al.logger.Debug("Performance",
		"operation", operation,
		"duration", time.Since(start),
	)
}
