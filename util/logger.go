// Package util provides low-level helpers shared by all other packages.
package util

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// originField is the logrus field carrying the emitting component.
const originField = "origin"

// Logger writes levelled messages to stderr with optional timestamps
// and level prefixes.  It is a thin shell over a logrus logger; loggers
// derived with Origin share the same sink and settings.
type Logger struct {
	level LogLevel
	base  *logrus.Logger
	entry *logrus.Entry
	text  *textFormatter
}

// NewLogger returns a Logger that prints messages at or below the given
// verbosity (0 = quiet, 1 = normal, 2 = verbose, 3 = debug).
func NewLogger(verbosity int) *Logger {
	text := &textFormatter{timestamps: verbosity >= 3} // auto-enable timestamps in debug mode
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetFormatter(text)
	base.SetLevel(logrusLevel(LogLevel(verbosity)))

	return &Logger{
		level: LogLevel(verbosity),
		base:  base,
		entry: logrus.NewEntry(base),
		text:  text,
	}
}

// Origin returns a logger that tags every line with the given origin.
func (l *Logger) Origin(name string) *Logger {
	cp := *l
	cp.entry = l.entry.WithField(originField, name)
	return &cp
}

// SetTimestamps enables or disables timestamp prefixes.
func (l *Logger) SetTimestamps(on bool) { l.text.timestamps = on }

// SetJSON switches between the bracketed text format and one JSON
// object per line.
func (l *Logger) SetJSON(on bool) {
	if on {
		l.base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "15:04:05.000"})
		return
	}
	l.base.SetFormatter(l.text)
}

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) { l.base.SetOutput(w) }

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Info prints when verbosity ≥ 1.  Prefixed with [INF].
func (l *Logger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warn prints when verbosity ≥ 1.  Prefixed with [WRN].
func (l *Logger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Verbose prints when verbosity ≥ 2.  Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Debug prints when verbosity ≥ 3.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) {
	l.entry.Tracef(format, args...)
}

// Error always prints regardless of verbosity.  Prefixed with [ERR].
func (l *Logger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func logrusLevel(l LogLevel) logrus.Level {
	switch {
	case l <= LogQuiet:
		return logrus.ErrorLevel
	case l == LogNormal:
		return logrus.InfoLevel
	case l == LogVerbose:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// textFormatter renders "HH:MM:SS.mmm [TAG] origin: message".
type textFormatter struct {
	timestamps bool
}

var levelTags = map[logrus.Level]string{
	logrus.PanicLevel: "ERR",
	logrus.FatalLevel: "ERR",
	logrus.ErrorLevel: "ERR",
	logrus.WarnLevel:  "WRN",
	logrus.InfoLevel:  "INF",
	logrus.DebugLevel: "VRB",
	logrus.TraceLevel: "DBG",
}

func (f *textFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if f.timestamps {
		b.WriteString(e.Time.Format("15:04:05.000"))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s] ", levelTags[e.Level])
	if origin, ok := e.Data[originField]; ok {
		fmt.Fprintf(&b, "%v: ", origin)
	}
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}
