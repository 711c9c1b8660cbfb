package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if err := Init("debug", true); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !Log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected debug logging to be enabled")
	}

	if err := Init("loud", false); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}
