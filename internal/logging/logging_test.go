package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	uerrors "github.com/FocuswithJustin/uninear/core/errors"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger

	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger

	return buf.String()
}

// captureLogOutputWithInit reinitializes the logger against a buffer so the
// InitLogger level and ReplaceAttr logic is exercised.
func captureLogOutputWithInit(level Level, format Format, f func()) string {
	var buf bytes.Buffer
	InitLogger(&buf, level, format)
	f()
	InitLogger(os.Stderr, LevelWarn, FormatText)
	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{"Debug level JSON format", LevelDebug, FormatJSON},
		{"Info level JSON format", LevelInfo, FormatJSON},
		{"Warn level Text format", LevelWarn, FormatText},
		{"Error level Text format", LevelError, FormatText},
		{"Default level (invalid value)", Level(999), FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			InitLogger(&buf, tt.level, tt.format)
			if defaultLogger == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}
	InitLogger(os.Stderr, LevelWarn, FormatText)
}

func TestInitLogger_LevelFiltering(t *testing.T) {
	output := captureLogOutputWithInit(LevelWarn, FormatText, func() {
		Debug("hidden debug")
		Info("hidden info")
		Error("shown error")
	})

	if strings.Contains(output, "hidden") {
		t.Errorf("Expected debug/info to be filtered, got %q", output)
	}
	if !strings.Contains(output, "shown error") {
		t.Errorf("Expected error in output, got %q", output)
	}
}

func TestInitLogger_Writer(t *testing.T) {
	output := captureLogOutputWithInit(LevelInfo, FormatJSON, func() {
		Info("to buffer", "key", "value")
	})

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &entry); err != nil {
		t.Fatalf("Expected one JSON log line, got %q: %v", output, err)
	}
	if entry["msg"] != "to buffer" || entry["key"] != "value" {
		t.Errorf("Unexpected log entry: %v", entry)
	}
	ts, _ := entry["time"].(string)
	if !strings.Contains(ts, "T") {
		t.Errorf("Expected RFC3339 timestamp, got %q", ts)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"trace", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, uerrors.ErrUnsupported) {
				t.Errorf("ParseLevel(%q) error = %v, want ErrUnsupported", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"yaml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func()
		level   string
		message string
	}{
		{"Debug", func() { Debug("debug message", "key", "value") }, "DEBUG", "debug message"},
		{"Info", func() { Info("info message", "key", "value") }, "INFO", "info message"},
		{"Error", func() { Error("error message", "key", "value") }, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.logFunc)
			if !strings.Contains(output, tt.level) {
				t.Errorf("Expected output to contain level %s, got %q", tt.level, output)
			}
			if !strings.Contains(output, tt.message) {
				t.Errorf("Expected output to contain message %q, got %q", tt.message, output)
			}
		})
	}
}

func TestRangeComputed(t *testing.T) {
	output := captureLogOutput(func() {
		RangeComputed('A', 0x3F, 0x43, 2)
	})

	for _, want := range []string{"range_computed", `"base":"U+0041"`, `"start":"U+003F"`, `"end":"U+0043"`, `"count":2`} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %s, got %q", want, output)
		}
	}
}

func TestRangeComputedWithArgs(t *testing.T) {
	output := captureLogOutput(func() {
		RangeComputed(0x10FFFF, 0x10FFFD, 0x10FFFF, 2, "clamped", true)
	})

	if !strings.Contains(output, `"base":"U+10FFFF"`) {
		t.Errorf("Expected wide codepoint in output, got %q", output)
	}
	if !strings.Contains(output, `"clamped":true`) {
		t.Errorf("Expected extra args in output, got %q", output)
	}
}

func TestRenderFailed(t *testing.T) {
	output := captureLogOutput(func() {
		RenderFailed(0x42, 1, uerrors.NewIO("write", "stdout", os.ErrClosed))
	})

	for _, want := range []string{"ERROR", "render_failed", `"at":"U+0042"`, `"lines_written":1`, "file already closed"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %s, got %q", want, output)
		}
	}
}

func TestInit(t *testing.T) {
	if defaultLogger == nil {
		t.Error("Expected defaultLogger to be initialized by init()")
	}
}

func TestLevelConstants(t *testing.T) {
	if LevelDebug >= LevelInfo {
		t.Error("Expected LevelDebug < LevelInfo")
	}
	if LevelInfo >= LevelWarn {
		t.Error("Expected LevelInfo < LevelWarn")
	}
	if LevelWarn >= LevelError {
		t.Error("Expected LevelWarn < LevelError")
	}
}

func TestFormatConstants(t *testing.T) {
	if FormatJSON == FormatText {
		t.Error("Expected FormatJSON != FormatText")
	}
}
