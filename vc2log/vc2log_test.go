package vc2log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Warning, &buf)
	log.Debug("hidden")
	log.Info("also hidden")
	log.Warning("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected sub-threshold messages to be suppressed, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("expected shown message with key=value pair, got %q", out)
	}
}

func TestDiscardLoggerIsSilent(t *testing.T) {
	// Discard must never panic regardless of argument shape.
	Discard.Debug("msg", "odd-arg-count")
	Discard.Fatal("msg")
}
