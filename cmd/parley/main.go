// cmd/parley/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"

	"github.com/parley-edit/parley/internal/app"
	"github.com/parley-edit/parley/internal/config"
	"github.com/parley-edit/parley/internal/logger"
)

const version = "0.1.0"

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	// The transcript is the first non-flag argument; starting without one
	// opens an unnamed session.
	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	// --- Configuration ---
	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Printf("Warning: problem loading configuration: %v (using defaults)", err)
	}

	// --- Logger Initialization ---
	logPath := cfg.Logger.LogFilePath
	if logPath == "" {
		logPath = config.DefaultLogFileName
	}
	var logWriter io.Writer
	var logFile *os.File
	if logPath == "-" {
		logWriter = os.Stderr
	} else {
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", logPath, err)
		}
		defer logFile.Close()
		logWriter = logFile
	}

	logger.Init(cfg.Logger.Level(), logWriter)

	logger.Infof("Starting %s editor...", config.AppName)
	logger.Debugf("Log level: %s, log file: %s", cfg.Logger.Level().String(), logPath)
	logger.Debugf("Autosave interval: %d key events, undo depth: %d",
		cfg.Editor.AutosaveInterval, cfg.Editor.UndoDepth)
	if filePath != "" {
		logger.Debugf("Transcript path specified: %s", filePath)
	} else {
		logger.Debugf("No transcript specified, starting an unnamed session.")
	}

	// --- Create and Run App ---
	parleyApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := parleyApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
	os.Exit(0)
}
