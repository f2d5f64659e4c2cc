package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/drscat/internal/config"
)

func TestLoggerFileSink(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "run.log")

	log, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	log.Info("building %s", "catalog")
	log.Warn("partial rows")
	if err := log.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "[INFO] building catalog") {
		t.Errorf("missing info line in %q", out)
	}
	if !strings.Contains(out, "[WARN] partial rows") {
		t.Errorf("missing warn line in %q", out)
	}
	// The file sink never carries ANSI escapes.
	if strings.Contains(out, "\033[") {
		t.Errorf("file sink contains color codes: %q", out)
	}
}

func TestLoggerDebugGated(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")

	log, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("hidden")
	log.Close()

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("debug line written without verbose")
	}
}

func TestLoggerAppends(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")

	for n := 0; n < 2; n++ {
		log, err := NewLogger(&cfg)
		if err != nil {
			t.Fatal(err)
		}
		log.Info("pass")
		log.Close()
	}

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "pass"); n != 2 {
		t.Errorf("got %d lines, want 2", n)
	}
}

func TestLoggerCloseWithoutFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	log, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := log.Close(); err != nil {
		t.Errorf("Close without file: %v", err)
	}
}
