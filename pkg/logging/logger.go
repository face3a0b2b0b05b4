// Package logging provides structured JSONL logging for dockyard.
// Events are appended to a per-session file; nothing is ever written
// to stdout or stderr, since the TUI owns the terminal.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level orders event severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levelOrder = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Category names the subsystem an event came from.
type Category string

const (
	CategoryLayout Category = "layout"
	CategoryDock   Category = "dock"
	CategoryState  Category = "state"
	CategoryConfig Category = "config"
	CategoryApp    Category = "app"
)

// Event is one structured log record.
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Category  Category       `json:"category"`
	EventType string         `json:"type"`
	SessionID string         `json:"session_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// Logger appends events to a per-session JSONL file. All methods are
// safe on a nil receiver, so callers never guard logging sites.
type Logger struct {
	sessionID   string
	sessionFile *os.File
	mu          sync.Mutex
	minLevel    Level
}

// NewLogger opens <baseDir>/sessions/<sessionID>.jsonl for appending.
func NewLogger(baseDir, sessionID string) (*Logger, error) {
	sessionsDir := filepath.Join(baseDir, "sessions")
	if err := os.MkdirAll(sessionsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}

	sessionFile, err := os.OpenFile(
		filepath.Join(sessionsDir, sessionID+".jsonl"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0644,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open session log: %w", err)
	}

	return &Logger{
		sessionID:   sessionID,
		sessionFile: sessionFile,
		minLevel:    LevelInfo,
	}, nil
}

// SetMinLevel drops future events below level.
func (l *Logger) SetMinLevel(level Level) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// Log writes an event to the session file. Events below the minimum
// level are dropped. Safe on a nil logger.
func (l *Logger) Log(event Event) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if levelOrder[event.Level] < levelOrder[l.minLevel] {
		return nil
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.SessionID == "" {
		event.SessionID = l.sessionID
	}

	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal log event: %w", err)
	}
	line = append(line, '\n')

	if l.sessionFile != nil {
		if _, err := l.sessionFile.Write(line); err != nil {
			return fmt.Errorf("failed to write log event: %w", err)
		}
	}
	return nil
}

// Debug logs at debug level.
func (l *Logger) Debug(category Category, eventType, message string, details map[string]any) {
	l.log(LevelDebug, category, eventType, message, details)
}

// Info logs at info level.
func (l *Logger) Info(category Category, eventType, message string, details map[string]any) {
	l.log(LevelInfo, category, eventType, message, details)
}

// Warn logs at warn level.
func (l *Logger) Warn(category Category, eventType, message string, details map[string]any) {
	l.log(LevelWarn, category, eventType, message, details)
}

// Error logs at error level.
func (l *Logger) Error(category Category, eventType, message string, details map[string]any) {
	l.log(LevelError, category, eventType, message, details)
}

func (l *Logger) log(level Level, category Category, eventType, message string, details map[string]any) {
	if l == nil {
		return
	}
	_ = l.Log(Event{
		Level:     level,
		Category:  category,
		EventType: eventType,
		Message:   message,
		Details:   details,
	})
}

// Close closes the session file; later logging becomes a no-op.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sessionFile == nil {
		return nil
	}
	err := l.sessionFile.Close()
	l.sessionFile = nil
	return err
}

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// SetDefault installs the process-wide logger. A nil logger makes all
// package-level logging a no-op.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Default returns the process-wide logger, which may be nil.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Debug logs through the default logger.
func Debug(category Category, eventType, message string, details map[string]any) {
	Default().Debug(category, eventType, message, details)
}

// Info logs through the default logger.
func Info(category Category, eventType, message string, details map[string]any) {
	Default().Info(category, eventType, message, details)
}

// Warn logs through the default logger.
func Warn(category Category, eventType, message string, details map[string]any) {
	Default().Warn(category, eventType, message, details)
}

// Error logs through the default logger.
func Error(category Category, eventType, message string, details map[string]any) {
	Default().Error(category, eventType, message, details)
}
