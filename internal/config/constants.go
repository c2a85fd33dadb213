package config

import "time"

// Base application details
const AppName = "parley"
const ConfigDirName = "parley"
const DefaultConfigFileName = "config.toml"
const DefaultThemeFileName = "theme.toml"
const DefaultLogFileName = "parley.log"

// Display layout. Line numbers are right-aligned in a fixed gutter, the
// speaker column is left-justified, and single separator columns sit between
// the three areas. Content width is whatever the terminal has left.
const LineNumWidth = 6
const SpeakerWidth = 15
const ColSep = 1
const StatusBarHeight = 1

// Editing behavior
const DefaultAutosaveInterval = 10 // accepted key events between swap writes
const DefaultUndoDepth = 100       // snapshots kept before evicting the oldest

// Auto-merge pass limits
const MergeCap = 150      // max combined text length for a load-time merge
const MergeWrapFactor = 3 // backspace join cap = factor x content width

// Status bar
const MessageTimeout = 4 * time.Second
