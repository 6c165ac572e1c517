// Package logging provides structured logging using Go's slog package.
//
// Diagnostics are written to a caller-supplied writer (stderr in the CLI) so
// that standard output carries only rendered codepoint lines.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/FocuswithJustin/uninear/core/errors"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger *slog.Logger
)

func init() {
	// Quiet by default: warnings and errors as text on stderr.
	InitLogger(os.Stderr, LevelWarn, FormatText)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
)

// ParseLevel maps a level name (debug, info, warn, error) to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, errors.NewUnsupported("log level", name)
}

// ParseFormat maps a format name (text, json) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	}
	return FormatText, errors.NewUnsupported("log format", name)
}

// InitLogger initializes the global logger with the specified writer, level and format.
func InitLogger(w io.Writer, level Level, format Format) {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Customize timestamp format
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// RangeComputed logs the clamped codepoint window chosen for a reference character.
func RangeComputed(base, start, end rune, count int, args ...any) {
	allArgs := []any{
		"base", codepoint(base),
		"start", codepoint(start),
		"end", codepoint(end),
		"count", count,
	}
	allArgs = append(allArgs, args...)
	Debug("range_computed", allArgs...)
}

// RenderFailed logs an output failure part-way through a range.
func RenderFailed(at rune, written int, err error, args ...any) {
	allArgs := []any{
		"at", codepoint(at),
		"lines_written", written,
		"error", err.Error(),
	}
	allArgs = append(allArgs, args...)
	Error("render_failed", allArgs...)
}

func codepoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}
