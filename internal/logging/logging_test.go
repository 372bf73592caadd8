package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerLevel(t *testing.T) {
	if NewLogger(false).Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be disabled without verbose")
	}
	if !NewLogger(true).Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be enabled with verbose")
	}
}

func TestFromCore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromCore(core)

	logger.Warnw("Skipping malformed block", "block", "oops")

	entries := logs.FilterMessage("Skipping malformed block").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["block"]; got != "oops" {
		t.Errorf("block field = %v, want oops", got)
	}
}
