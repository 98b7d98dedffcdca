package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/grepr/internal/filelock"
)

// FileLogger appends leveled records to a log file shared between runs.
// Each record is one line stamped with the time and a per-run ID, and every
// append happens under the file's lock, so concurrent grepr processes can log
// to the same file.
//
// Record format: "2006-01-02T15:04:05Z07:00 <run-id> [LEVEL] <message>"
type FileLogger struct {
	path     string
	runID    string
	logLevel string
}

// NewFileLogger opens (creating if needed) the log at path and writes the
// run header.
func NewFileLogger(path, logLevel string) (*FileLogger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("log file path is empty")
	}

	fl := &FileLogger{
		path:     path,
		runID:    uuid.NewString(),
		logLevel: normalizeLogLevel(logLevel),
	}

	if err := fl.append("INFO", "=== grepr run started ==="); err != nil {
		return nil, err
	}
	return fl, nil
}

// RunID returns the identifier stamped on this run's records
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

// logWithLevel writes the record if the level passes. Write failures are
// dropped; logging never fails a search.
func (fl *FileLogger) logWithLevel(level string, message string) {
	if !enabled(fl.logLevel, level) {
		return
	}
	_ = fl.append(level, message)
}

func (fl *FileLogger) append(level, message string) error {
	record := fmt.Sprintf("%s %s [%s] %s\n", time.Now().Format(time.RFC3339), fl.runID, level, message)
	if err := filelock.AppendLocked(fl.path, []byte(record)); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}
	return nil
}
