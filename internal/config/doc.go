// Package config loads vimops configuration.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd/vimops)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← VIMOPS_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← .toml, .yaml, .yml or .json
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A config file looks like:
//
//	[buffer]
//	line_ending = "crlf"
//
//	[registers]
//	default = "a"
//	clipboard = true
//	clipboard_keys = "+*"
//
//	[logging]
//	level = "debug"
//
// Watch reloads a config file when it changes on disk.
package config
