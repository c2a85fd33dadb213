// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags.
// Pointers distinguish unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath   *string
	Version          *bool
	LogLevel         *string
	LogFilePath      *string
	AutosaveInterval *int
	UndoDepth        *int
}

// DefineFlags sets up the command-line flags and associates them with the Flags struct fields.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.AutosaveInterval = flag.Int("autosave-interval", 0, "Key events between autosave writes - Overrides config file")
	f.UndoDepth = flag.Int("undo-depth", 0, "Maximum undo snapshots kept - Overrides config file")
}

// ParseFlags parses the defined command-line flags into the Flags struct.
// It returns the remaining non-flag arguments (e.g., the transcript path).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil {
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "autosave-interval":
			if f.AutosaveInterval != nil && *f.AutosaveInterval > 0 {
				cfg.Editor.AutosaveInterval = *f.AutosaveInterval
			}
		case "undo-depth":
			if f.UndoDepth != nil && *f.UndoDepth > 0 {
				cfg.Editor.UndoDepth = *f.UndoDepth
			}
		}
	})
}
