package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Logger provides leveled logging. The stdio transport owns stdout, so all
// diagnostics go to stderr (or an optional log file).
type Logger struct {
	logger   *log.Logger
	logLevel LogLevel
	logFile  *os.File
}

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

var defaultLogger *Logger

// NewLogger creates a logger writing to the given sink at the given level.
func NewLogger(out io.Writer, level LogLevel) *Logger {
	return &Logger{
		logger:   log.New(out, "", log.LstdFlags),
		logLevel: level,
	}
}

// InitLogger initializes the default logger from the environment.
func InitLogger() {
	logLevel := getEnvLogLevel("WEATHER_LOG_LEVEL", INFO)
	logFilePath := os.Getenv("WEATHER_LOG_FILE")

	if logFilePath != "" {
		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		} else if f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		} else {
			defaultLogger = NewLogger(f, logLevel)
			defaultLogger.logFile = f
			return
		}
	}

	defaultLogger = NewLogger(os.Stderr, logLevel)
}

// GetLogger returns the default logger
func GetLogger() *Logger {
	if defaultLogger == nil {
		InitLogger()
	}
	return defaultLogger
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.logLevel {
		return
	}

	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] %s", level.String(), msg)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
	os.Exit(1)
}

// Close closes the log file if opened
func (l *Logger) Close() {
	if l.logFile != nil {
		l.logFile.Close()
	}
}

// getEnvLogLevel parses log level from environment
func getEnvLogLevel(key string, defaultValue LogLevel) LogLevel {
	switch os.Getenv(key) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return defaultValue
	}
}

// ToolMetrics tracks process-wide invocation counters. Handlers may run
// concurrently, so the counters are atomic.
type ToolMetrics struct {
	ToolInvocations  atomic.Int64
	UpstreamFailures atomic.Int64
	StartTime        time.Time
}

var metrics = &ToolMetrics{
	StartTime: time.Now(),
}

// RecordToolInvocation records one tool call.
func RecordToolInvocation() {
	metrics.ToolInvocations.Add(1)
}

// RecordUpstreamFailure records one failed upstream fetch.
func RecordUpstreamFailure() {
	metrics.UpstreamFailures.Add(1)
}

// LogMetrics logs current counters.
func LogMetrics() {
	logger := GetLogger()
	logger.Info("Tool metrics - Invocations: %d, Upstream failures: %d, Uptime: %s",
		metrics.ToolInvocations.Load(),
		metrics.UpstreamFailures.Load(),
		time.Since(metrics.StartTime).Round(time.Second),
	)
}
