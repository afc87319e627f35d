package logger

import (
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// FileLogger is an implementation of Logger that writes JSON lines to a rotated file.
type FileLogger struct {
	logger *slog.Logger
}

// NewFileLogger creates a new file logger with rotation settings.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewJSONHandler(writer, opts)

	return &FileLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *FileLogger) Debug(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Debug(msg, attrs...)
}

// Info logs an informational message.
func (l *FileLogger) Info(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Info(msg, attrs...)
}

// Warn logs a warning message.
func (l *FileLogger) Warn(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Warn(msg, attrs...)
}

// Error logs an error message.
func (l *FileLogger) Error(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Error(msg, attrs...)
}

// Fatal logs a fatal message and exits.
func (l *FileLogger) Fatal(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Error(msg, attrs...)
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *FileLogger) Panic(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Error(msg, attrs...)
	panic(msg)
}
