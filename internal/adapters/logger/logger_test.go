package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"go.trai.ch/swan/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("toolchain resolved")

	out := buf.String()
	if !strings.Contains(out, "toolchain resolved") {
		t.Errorf("expected output to contain message, got %q", out)
	}
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level, got %q", out)
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Warn("ndk not pinned")

	if out := buf.String(); !strings.Contains(out, "level=WARN") {
		t.Errorf("expected WARN level, got %q", out)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Error(zerr.New("link failed"))

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected ERROR level, got %q", out)
	}
	if !strings.Contains(out, "link failed") {
		t.Errorf("expected error message, got %q", out)
	}
}
