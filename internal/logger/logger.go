// Package logger provides structured logging for graphsh.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when the requested level cannot be parsed
const DefaultLevel = logrus.WarnLevel

// Logger wraps logrus logger
type Logger struct {
	log *logrus.Logger
}

// Entry wraps logrus entry for method chaining
type Entry struct {
	entry *logrus.Entry
	level logrus.Level
}

// New creates a new logger instance. Unknown levels fall back to warn.
func New(level string, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(output)

	logLevel, err := ParseLevel(level)
	if err != nil {
		logLevel = DefaultLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: true,
		PadLevelText:     true,
	})

	return &Logger{log: log}
}

// Discard returns a logger that writes nothing
func Discard() *Logger {
	return New("panic", io.Discard)
}

// ParseLevel parses a level name (debug, info, warn, error)
func ParseLevel(level string) (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level '%s': use debug, info, warn or error", level)
	}
	return lvl, nil
}

// Level returns the active level
func (l *Logger) Level() logrus.Level {
	return l.log.GetLevel()
}

// Debug logs a debug message
func (l *Logger) Debug() *Entry {
	return l.at(logrus.DebugLevel)
}

// Info logs an info message
func (l *Logger) Info() *Entry {
	return l.at(logrus.InfoLevel)
}

// Warn logs a warning message
func (l *Logger) Warn() *Entry {
	return l.at(logrus.WarnLevel)
}

// Error logs an error message
func (l *Logger) Error() *Entry {
	return l.at(logrus.ErrorLevel)
}

func (l *Logger) at(level logrus.Level) *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: level}
}

// Str adds a string field
func (e *Entry) Str(key, value string) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Strs adds a string list field, joined with commas
func (e *Entry) Strs(key string, values []string) *Entry {
	e.entry = e.entry.WithField(key, strings.Join(values, ","))
	return e
}

// Stringer adds a field rendered with its String method
func (e *Entry) Stringer(key string, value fmt.Stringer) *Entry {
	e.entry = e.entry.WithField(key, value.String())
	return e
}

// Int adds an int field
func (e *Entry) Int(key string, value int) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Bool adds a bool field
func (e *Entry) Bool(key string, value bool) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Err adds an error field
func (e *Entry) Err(err error) *Entry {
	if err != nil {
		e.entry = e.entry.WithError(err)
	}
	return e
}

// Dur adds a duration field (formatted in milliseconds)
func (e *Entry) Dur(key string, duration time.Duration) *Entry {
	ms := float64(duration.Microseconds()) / 1000.0
	e.entry = e.entry.WithField(key, ms)
	return e
}

// Msg logs the message with accumulated fields
func (e *Entry) Msg(msg string) {
	e.entry.Log(e.level, msg)
}

// Msgf logs a formatted message with accumulated fields
func (e *Entry) Msgf(format string, args ...any) {
	e.entry.Logf(e.level, format, args...)
}
