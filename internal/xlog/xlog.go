// Package xlog is the structured logging wrapper used by cmd/cgrtool,
// simulate, and remote. The contact package never imports it: the
// routing core never writes to stderr and never logs.
package xlog

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger wraps a *logrus.Entry to keep the logging dependency private
// to this package's callers rather than threading *logrus.Logger
// through every signature in the module.
type Logger struct {
	entry *logrus.Entry
}

// New builds a Logger at the given level ("debug", "info", "warn",
// "error"; unrecognized values fall back to "info"), JSON-formatted,
// writing to stdout.
//
// Every line carries a run_id, a fresh UUID minted once per Logger by
// New: this lets multiple concurrent cgrtool/simulate invocations
// against a shared log sink be told apart.
func New(level string) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	l.SetLevel(parseLevel(level))
	return &Logger{entry: l.WithField("run_id", uuid.New().String())}
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Debugf(format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Infof(format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Errorf(format, args...)
}

// WithField returns a derived Logger-compatible entry for structured
// key/value logging; callers format directly on the returned entry.
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	if l == nil {
		return logrus.NewEntry(logrus.New())
	}
	return l.entry.WithField(key, value)
}

// RunID returns the UUID minted for this Logger at New(), nil-safe for
// callers that want to echo it outside the log stream (e.g. a CLI
// diagnostic line).
func (l *Logger) RunID() string {
	if l == nil {
		return ""
	}
	v, ok := l.entry.Data["run_id"].(string)
	if !ok {
		return ""
	}
	return v
}
