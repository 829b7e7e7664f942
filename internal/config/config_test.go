package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Entry == nil || cfg.Entry.Prompt != DefaultPrompt {
		t.Errorf("Entry.Prompt = %+v, want %q", cfg.Entry, DefaultPrompt)
	}
	if cfg.Entry.LongPressMS != DefaultLongPressMS {
		t.Errorf("Entry.LongPressMS = %d, want %d", cfg.Entry.LongPressMS, DefaultLongPressMS)
	}
	if cfg.Sim == nil || cfg.Sim.ListenAddr != DefaultListenAddr {
		t.Errorf("Sim = %+v, want listen addr %q", cfg.Sim, DefaultListenAddr)
	}
	if !cfg.Sim.Announce {
		t.Error("Sim.Announce should default to true")
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Entry.Prompt != DefaultPrompt {
		t.Errorf("Prompt = %q, want default", cfg.Entry.Prompt)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pinpad", "config.yaml")

	cfg := NewConfig()
	cfg.Entry.Prompt = "Enter wallet PIN"
	cfg.Entry.LongPressMS = 1500
	cfg.Sim.ListenAddr = "0.0.0.0:9400"
	cfg.Sim.Announce = false
	cfg.LogLevel = "debug"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if loaded.Entry.Prompt != "Enter wallet PIN" {
		t.Errorf("Prompt = %q, want %q", loaded.Entry.Prompt, "Enter wallet PIN")
	}
	if loaded.Entry.LongPressMS != 1500 {
		t.Errorf("LongPressMS = %d, want 1500", loaded.Entry.LongPressMS)
	}
	if loaded.Sim.ListenAddr != "0.0.0.0:9400" {
		t.Errorf("ListenAddr = %q, want %q", loaded.Sim.ListenAddr, "0.0.0.0:9400")
	}
	if loaded.Sim.Announce {
		t.Error("Announce should round-trip as false")
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", loaded.LogLevel)
	}
}

func TestLoadFromRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 9\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should reject unsupported version")
	}
}

func TestLoadFromFillsOmittedSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nlog_level: warn\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Entry == nil || cfg.Entry.Prompt != DefaultPrompt {
		t.Errorf("omitted entry section not defaulted: %+v", cfg.Entry)
	}
	if cfg.Sim == nil || cfg.Sim.ListenAddr != DefaultListenAddr {
		t.Errorf("omitted sim section not defaulted: %+v", cfg.Sim)
	}
}
