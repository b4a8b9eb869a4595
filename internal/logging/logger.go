package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// LogFileName is the file created inside the log directory.
const LogFileName = "debug.log"

// Logger writes JSON records through log/slog. Child loggers share the
// underlying writer and are safe for concurrent use.
type Logger struct {
	logger *slog.Logger
	closer *fileCloser
}

// fileCloser is shared between a logger and its children so that closing
// any of them closes the file exactly once.
type fileCloser struct {
	mu   sync.Mutex
	file *os.File
}

// NewLogger creates a Logger that appends to {dir}/debug.log. If dir is
// empty, records go to stderr.
//
// The level controls which records are written; unrecognized levels fall
// back to INFO.
func NewLogger(dir string, level string) (*Logger, error) {
	if dir == "" {
		return NewWriterLogger(os.Stderr, level), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := NewWriterLogger(file, level)
	l.closer = &fileCloser{file: file}
	return l, nil
}

// NewWriterLogger creates a Logger that writes JSON records to w.
func NewWriterLogger(w io.Writer, level string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{logger: slog.New(handler)}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithColumn returns a child logger tagging every record with column_id.
func (l *Logger) WithColumn(columnID string) *Logger {
	return l.With("column_id", columnID)
}

// WithCategory returns a child logger tagging every record with category.
func (l *Logger) WithCategory(category string) *Logger {
	return l.With("category", category)
}

// WithComponent returns a child logger tagging every record with component.
func (l *Logger) WithComponent(component string) *Logger {
	return l.With("component", component)
}

// With returns a child logger with alternating key-value attributes.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	return &Logger{
		logger: l.logger.With(args...),
		closer: l.closer,
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// Slog exposes the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// Close syncs and closes the log file. It is a no-op for loggers that do not
// own a file.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	l.closer.mu.Lock()
	defer l.closer.mu.Unlock()

	if l.closer.file == nil {
		return nil
	}
	if err := l.closer.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := l.closer.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	l.closer.file = nil
	return nil
}

// NopLogger returns a Logger that discards all output.
func NopLogger() *Logger {
	return NewWriterLogger(io.Discard, LevelError)
}

// ParseLevel normalizes a user supplied level, returning LevelInfo for
// anything unrecognized.
func ParseLevel(level string) string {
	switch strings.ToUpper(level) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return strings.ToUpper(level)
	default:
		return LevelInfo
	}
}

// ValidLevels returns the list of valid log level strings.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}
