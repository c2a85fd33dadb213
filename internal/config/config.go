// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/parley-edit/parley/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	AutosaveInterval int `toml:"autosave_interval"` // key events between swap writes
	UndoDepth        int `toml:"undo_depth"`        // snapshot stack cap
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Editor: EditorConfig{
			AutosaveInterval: DefaultAutosaveInterval,
			UndoDepth:        DefaultUndoDepth,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// A missing file is not an error; the defaults simply stand.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.AutosaveInterval <= 0 {
		c.Editor.AutosaveInterval = defaults.Editor.AutosaveInterval
	}
	if c.Editor.UndoDepth <= 0 {
		c.Editor.UndoDepth = defaults.Editor.UndoDepth
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. It should be called only once, from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" {
					cfg.Logger.LogLevel = fileCfg.Logger.LogLevel
				}
				if fileCfg.Logger.LogFilePath != "" {
					cfg.Logger.LogFilePath = fileCfg.Logger.LogFilePath
				}
				if fileCfg.Editor.AutosaveInterval > 0 {
					cfg.Editor.AutosaveInterval = fileCfg.Editor.AutosaveInterval
				}
				if fileCfg.Editor.UndoDepth > 0 {
					cfg.Editor.UndoDepth = fileCfg.Editor.UndoDepth
				}
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
