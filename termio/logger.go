package termio

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the output format for log messages
type LogFormat int

const (
	LogFormatCircles LogFormat = iota // 🔵 🟢 🟡 🔴 🟣
	LogFormatSymbols                  // ◆ ✓ ▲ ✗ ●
	LogFormatTagged                   // [INFO] [SUCCESS] [WARN] [ERROR] [DEBUG]
	LogFormatPlain                    // No prefix
)

// ParseLogFormat maps a format name to a LogFormat.
func ParseLogFormat(name string) (LogFormat, error) {
	switch strings.ToLower(name) {
	case "circles", "":
		return LogFormatCircles, nil
	case "symbols":
		return LogFormatSymbols, nil
	case "tagged":
		return LogFormatTagged, nil
	case "plain":
		return LogFormatPlain, nil
	}
	return LogFormatCircles, fmt.Errorf("unknown log format %q", name)
}

// ANSI SGR foreground codes per level
var levelColors = map[LogLevel]string{
	LevelDebug:   "35",
	LevelInfo:    "34",
	LevelSuccess: "32",
	LevelWarning: "33",
	LevelError:   "31",
}

// Logger writes levelled, optionally coloured messages through an IOManager
type Logger struct {
	io           *IOManager
	format       LogFormat
	prefixes     map[LogLevel]string
	withTime     bool
	timeFormat   string
	errorsStderr bool
	minLevel     LogLevel
	now          func() time.Time
}

// NewLogger creates a new logger bound to the given IOManager
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:           io,
		format:       LogFormatCircles,
		prefixes:     prefixesFor(LogFormatCircles),
		timeFormat:   "15:04:05",
		errorsStderr: true,
		minLevel:     LevelInfo,
		now:          time.Now,
	}
}

func prefixesFor(format LogFormat) map[LogLevel]string {
	switch format {
	case LogFormatCircles:
		return map[LogLevel]string{
			LevelDebug:   "🟣",
			LevelInfo:    "🔵",
			LevelSuccess: "🟢",
			LevelWarning: "🟡",
			LevelError:   "🔴",
		}
	case LogFormatSymbols:
		return map[LogLevel]string{
			LevelDebug:   "●",
			LevelInfo:    "◆",
			LevelSuccess: "✓",
			LevelWarning: "▲",
			LevelError:   "✗",
		}
	case LogFormatTagged:
		return map[LogLevel]string{
			LevelDebug:   "[DEBUG]",
			LevelInfo:    "[INFO]",
			LevelSuccess: "[SUCCESS]",
			LevelWarning: "[WARN]",
			LevelError:   "[ERROR]",
		}
	default:
		return map[LogLevel]string{}
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	l.prefixes = prefixesFor(format)
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat sets the time format (Go time format string)
func (l *Logger) WithTimeFormat(format string) *Logger {
	l.timeFormat = format
	return l
}

// WithLevel drops messages below level
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// ErrorsToStderr controls whether errors and warnings go to stderr
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	fmt.Fprintln(l.selectWriter(level), l.formatMessage(level, fmt.Sprintf(format, args...)))
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	// Blank lines pass through without decoration
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	var parts []string
	if prefix := l.prefixes[level]; prefix != "" {
		parts = append(parts, prefix)
	}
	if l.withTime {
		parts = append(parts, "["+l.now().Format(l.timeFormat)+"]")
	}
	parts = append(parts, msg)

	return l.io.Colorize(strings.Join(parts, " "), levelColors[level])
}

// selectWriter chooses stdout or stderr based on log level and configuration
func (l *Logger) selectWriter(level LogLevel) io.Writer {
	if l.errorsStderr && (level == LevelError || level == LevelWarning) {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.Log(LevelDebug, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) {
	l.Log(LevelInfo, format, args...)
}

// Success logs a success message
func (l *Logger) Success(format string, args ...any) {
	l.Log(LevelSuccess, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) {
	l.Log(LevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.Log(LevelError, format, args...)
}
