package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
)

// ConsoleLogger is an implementation of Logger that writes to a console stream, stdout by default.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a console logger with the given level and format (text or json).
func NewConsoleLogger(level, format string) Logger {
	return newConsoleLogger(os.Stdout, level, format)
}

// NewConsoleLoggerTo creates a console logger writing to w, e.g. os.Stderr for CLIs whose stdout is data.
func NewConsoleLoggerTo(w io.Writer, level, format string) Logger {
	return newConsoleLogger(w, level, format)
}

func newConsoleLogger(w io.Writer, level, format string) *ConsoleLogger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &ConsoleLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Debug(msg, attrs...)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Info(msg, attrs...)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Warn(msg, attrs...)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Error(msg, attrs...)
}

// Fatal logs a fatal message and exits.
func (l *ConsoleLogger) Fatal(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Error(msg, attrs...)
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *ConsoleLogger) Panic(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Error(msg, attrs...)
	panic(msg)
}
