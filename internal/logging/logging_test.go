package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"":        log.InfoLevel,
		"bogus":   log.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Level: "warn", Formatter: "logfmt"})
	logger.Debug("hidden")
	logger.Warn("rejected", "id", "abc")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "rejected") || !strings.Contains(out, "id=abc") {
		t.Fatalf("missing warn line: %q", out)
	}
}

func TestNew_WritesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "crimson.log")
	logger, closeLog, err := New(Options{Path: p, Level: "debug"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("added", "id", "x1")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "added") {
		t.Fatalf("log file missing entry: %q", b)
	}
}

func TestNew_NoPathDiscards(t *testing.T) {
	logger, closeLog, err := New(Options{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("nowhere")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
