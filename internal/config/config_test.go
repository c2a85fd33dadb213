package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Editor.AutosaveInterval != DefaultAutosaveInterval {
		t.Errorf("AutosaveInterval = %d, want %d", cfg.Editor.AutosaveInterval, DefaultAutosaveInterval)
	}
	if cfg.Editor.UndoDepth != DefaultUndoDepth {
		t.Errorf("UndoDepth = %d, want %d", cfg.Editor.UndoDepth, DefaultUndoDepth)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.Logger.LogLevel, "info")
	}
}

func TestValidateResetsInvalidValues(t *testing.T) {
	cfg := &Config{}
	cfg.Editor.AutosaveInterval = -3
	cfg.Editor.UndoDepth = 0
	cfg.validate()

	if cfg.Editor.AutosaveInterval != DefaultAutosaveInterval {
		t.Errorf("AutosaveInterval = %d after validate", cfg.Editor.AutosaveInterval)
	}
	if cfg.Editor.UndoDepth != DefaultUndoDepth {
		t.Errorf("UndoDepth = %d after validate", cfg.Editor.UndoDepth)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q after validate", cfg.Logger.LogLevel)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
[logger]
log_level = "debug"
log_file = "-"

[editor]
autosave_interval = 25
undo_depth = 40
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFromFile(path)
	if err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if cfg.Logger.LogLevel != "debug" || cfg.Logger.LogFilePath != "-" {
		t.Errorf("logger section = %+v", cfg.Logger)
	}
	if cfg.Editor.AutosaveInterval != 25 || cfg.Editor.UndoDepth != 40 {
		t.Errorf("editor section = %+v", cfg.Editor)
	}
}

func TestLoadFromFileMissingIsNotAnError(t *testing.T) {
	cfg, err := loadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Errorf("missing config file returned error: %v", err)
	}
	if cfg == nil {
		t.Fatal("missing config file returned nil config")
	}
}

func TestLoadFromFileRejectsBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[[[not toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFromFile(path); err == nil {
		t.Error("malformed config parsed without error")
	}
}
