package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Expected level info, got %q", cfg.Log.Level)
	}
	if len(cfg.Game.Players) != 4 {
		t.Errorf("Expected 4 default players, got %v", cfg.Game.Players)
	}
	if cfg.Metrics.Namespace != "ludo" || cfg.Metrics.Address != "" {
		t.Errorf("Expected metrics off under namespace ludo, got %+v", cfg.Metrics)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `
log:
  level: debug
game:
  players: [Anna, Bjorn]
  locale: nb
journal:
  enabled: true
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Game.Locale != "nb" || !cfg.Journal.Enabled {
		t.Errorf("Expected values from the file, got %+v", cfg)
	}
	if len(cfg.Game.Players) != 2 || cfg.Game.Players[1] != "Bjorn" {
		t.Errorf("Expected [Anna Bjorn], got %v", cfg.Game.Players)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("LUDO_METRICS_ADDRESS", ":9100")
	t.Setenv("LUDO_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Metrics.Address != ":9100" {
		t.Errorf("Expected address from env, got %q", cfg.Metrics.Address)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected level from env, got %q", cfg.Log.Level)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(dir); err == nil {
		t.Error("Expected an error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		players []string
		ok      bool
	}{
		{"two", []string{"a", "b"}, true},
		{"four with vacant seat", []string{"a", "", "b", "c"}, true},
		{"one", []string{"a", ""}, false},
		{"five", []string{"a", "b", "c", "d", "e"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Game: GameConfig{Players: tt.players}}
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidPlayers) {
				t.Errorf("Expected ErrInvalidPlayers, got %v", err)
			}
		})
	}
}
