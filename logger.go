package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

var levelRank = map[string]int{
	"DEBUG":   0,
	"INFO":    1,
	"WARNING": 2,
	"ERROR":   3,
}

// Logger writes leveled lines to the error stream and, when a log
// directory is set, to a daily log file
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	logDir string
	min    int
}

// NewLogger creates a new logger instance
func NewLogger(out io.Writer, cfg LoggingConfig) *Logger {
	if out == nil {
		out = os.Stderr
	}
	min, ok := levelRank[strings.ToUpper(cfg.Level)]
	if !ok {
		min = levelRank["INFO"]
	}
	return &Logger{
		out:    out,
		logDir: cfg.Dir,
		min:    min,
	}
}

// getLogFileName returns the log file name for today's date
func (l *Logger) getLogFileName() string {
	today := time.Now().Format("2006-01-02")
	return filepath.Join(l.logDir, fmt.Sprintf("launcher_%s.log", today))
}

// Log writes a message at the given level
func (l *Logger) Log(level, message string) error {
	if levelRank[level] < l.min {
		return nil
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logEntry := fmt.Sprintf("[%s] %s: %s\n", timestamp, level, message)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := io.WriteString(l.out, logEntry); err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}

	if l.logDir == "" {
		return nil
	}
	return l.appendToFile(logEntry)
}

func (l *Logger) appendToFile(logEntry string) error {
	if err := os.MkdirAll(l.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(l.getLogFileName(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(logEntry); err != nil {
		return fmt.Errorf("failed to write to log file: %w", err)
	}

	return nil
}

// Info logs an info level message
func (l *Logger) Info(message string) error {
	return l.Log("INFO", message)
}

// Error logs an error level message
func (l *Logger) Error(message string) error {
	return l.Log("ERROR", message)
}

// Warning logs a warning level message
func (l *Logger) Warning(message string) error {
	return l.Log("WARNING", message)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string) error {
	return l.Log("DEBUG", message)
}

// Panic logs a recovered panic value together with the current stack
func (l *Logger) Panic(r interface{}) error {
	return l.Error(fmt.Sprintf("PANIC: %v\n\nSTACK:\n%s", r, debug.Stack()))
}
