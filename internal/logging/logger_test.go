package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/typecopy/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	var out bytes.Buffer
	l.SetOutput(&out, &out)
	l.Info("test message")
	if !strings.Contains(out.String(), "[INFO] test message") {
		t.Errorf("stdout: %q", out.String())
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	cfg.LogFile = filepath.Join(dir, "logs", "typecopy.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("[INFO] to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if bytes.Contains(b, []byte("\x1b[")) {
		t.Errorf("log file should not contain escape sequences: %q", string(b))
	}
}

func TestLogger_ErrorGoesToStderr(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	var stdout, stderr bytes.Buffer
	l.SetOutput(&stdout, &stderr)
	l.Error("boom")
	l.Warn("careful")

	if !strings.Contains(stderr.String(), "[ERROR] boom") || strings.Contains(stdout.String(), "boom") {
		t.Errorf("error routing: stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
	if !strings.Contains(stdout.String(), "[WARN] careful") {
		t.Errorf("warn routing: stdout=%q", stdout.String())
	}
}

func TestLogger_DebugOnlyWhenVerbose(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		cfg := config.DefaultConfig()
		cfg.ColorMode = config.ColorNever
		cfg.Verbose = verbose
		l, err := NewLogger(&cfg)
		if err != nil {
			t.Fatal(err)
		}
		var out bytes.Buffer
		l.SetOutput(&out, &out)
		l.Debug("details %d", 42)
		l.Close()

		got := strings.Contains(out.String(), "[DEBUG] details 42")
		if got != verbose {
			t.Errorf("verbose=%v: debug emitted=%v (%q)", verbose, got, out.String())
		}
	}
}
