package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"loud", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWritesRunIDToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.EnableSampling = false
	cfg.Output = path

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("started")
	log.Debug("hidden at info level")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `"run_id"`) {
		t.Errorf("expected run_id field, got %s", out)
	}
	if !strings.Contains(out, "started") {
		t.Errorf("expected info message, got %s", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Errorf("debug message leaked at info level: %s", out)
	}
}

func TestNewDevelopmentConsole(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Development = true
	cfg.Level = "debug"
	cfg.Output = filepath.Join(t.TempDir(), "dev.log")

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level enabled")
	}
}
