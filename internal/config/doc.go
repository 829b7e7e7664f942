// Package config provides user configuration management for the pinpad tools.
//
// This package manages a YAML-based configuration file holding display and
// simulator preferences: the prompt text, the middle-button long-press
// threshold, and the simulator listen address. The configuration follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/pinpad/config.yaml or $HOME/.config/pinpad/config.yaml
//   - macOS: $HOME/.config/pinpad/config.yaml
//   - Windows: %LOCALAPPDATA%\pinpad\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores PINs or any other secret. It holds
// presentation preferences only.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.Entry.LongPressMS = 1500
//	if err := cfg.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// File operations are protected by a mutex and use an atomic
// write-then-rename, so a crash mid-save never corrupts the file.
package config
