package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger is a levelled logger that prefixes each line with its level.
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	logger *log.Logger
}

// NewLogger creates a logger that appends to the file at filePath.
func NewLogger(filePath string) (*Logger, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		file:   file,
		logger: log.New(file, "", log.LstdFlags),
	}, nil
}

// NewWriterLogger creates a logger writing to w.
func NewWriterLogger(w io.Writer) *Logger {
	return &Logger{logger: log.New(w, "", log.LstdFlags)}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWriterLogger(io.Discard)
}

// Info logs an info message
func (l *Logger) Info(msg string) { l.print("INFO: ", msg) }

// Warn logs a warning message
func (l *Logger) Warn(msg string) { l.print("WARN: ", msg) }

// Error logs an error message
func (l *Logger) Error(msg string) { l.print("ERROR: ", msg) }

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...any) { l.Info(fmt.Sprintf(format, args...)) }

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...any) { l.Warn(fmt.Sprintf(format, args...)) }

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...any) { l.Error(fmt.Sprintf(format, args...)) }

// SetPrefix and Println are not atomic together on log.Logger.
func (l *Logger) print(prefix, msg string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetPrefix(prefix)
	l.logger.Println(msg)
}

// Close closes the log file, if any.
func (l *Logger) Close() {
	if l == nil || l.file == nil {
		return
	}
	_ = l.file.Close()
}
