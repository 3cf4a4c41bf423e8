package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	logger := New("info", "text")
	if logger == nil {
		t.Fatal("New() returned nil")
	}
}

func TestNew_LogLevels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "invalid"}
	for _, level := range levels {
		if logger := New(level, "text"); logger == nil {
			t.Errorf("New(%s, text) returned nil", level)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		got := ParseLevel(tt.input)
		if got != tt.expected {
			t.Errorf("ParseLevel(%s) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info", "json")

	logger.Info("wrote output", "path", "sine-ass.wav", "bytes", 176444)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "wrote output" {
		t.Errorf("msg = %v, want %q", entry["msg"], "wrote output")
	}
	if entry["bytes"] != float64(176444) {
		t.Errorf("bytes = %v, want 176444", entry["bytes"])
	}
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn", "text")

	// Info should be filtered out
	logger.Info("should not appear")
	if strings.Contains(buf.String(), "should not appear") {
		t.Error("Info message should be filtered at warn level")
	}

	// Warn should appear
	logger.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Error("Warn message should appear at warn level")
	}
}
