package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv("VIMOPS_LINE_ENDING", "cr")
	t.Setenv("VIMOPS_DEFAULT_REGISTER", "z")
	t.Setenv("VIMOPS_CLIPBOARD", "true")
	t.Setenv("VIMOPS_LOG_LEVEL", "error")

	cfg := Default()
	if err := cfg.ApplyEnv(DefaultEnvPrefix); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Buffer.LineEnding != "cr" {
		t.Errorf("LineEnding = %q, want cr", cfg.Buffer.LineEnding)
	}
	if cfg.Registers.Default != "z" {
		t.Errorf("Default = %q, want z", cfg.Registers.Default)
	}
	if !cfg.Registers.Clipboard {
		t.Error("Clipboard = false, want true")
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Level = %q, want error", cfg.Logging.Level)
	}
}

func TestApplyEnvPrefix(t *testing.T) {
	t.Setenv("VIMOPS_LOG_LEVEL", "debug")
	t.Setenv("OTHER_LOG_LEVEL", "warn")

	cfg := Default()
	if err := cfg.ApplyEnv("OTHER_"); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestApplyEnvBadBool(t *testing.T) {
	t.Setenv("VIMOPS_CLIPBOARD", "sometimes")

	err := Default().ApplyEnv(DefaultEnvPrefix)
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("ApplyEnv error = %v, want ErrValidationFailed", err)
	}
}

func TestResolveLayers(t *testing.T) {
	path := writeFile(t, "config.toml", "[logging]\nlevel = \"debug\"\n\n[buffer]\nline_ending = \"crlf\"\n")
	t.Setenv("VIMOPS_LOG_LEVEL", "warn")

	cfg, err := Resolve(path, DefaultEnvPrefix)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want the environment to win", cfg.Logging.Level)
	}
	if cfg.Buffer.LineEnding != "crlf" {
		t.Errorf("LineEnding = %q, want crlf from the file", cfg.Buffer.LineEnding)
	}
}

func TestResolveValidatesEnv(t *testing.T) {
	t.Setenv("VIMOPS_DEFAULT_REGISTER", "")

	_, err := Resolve(filepath.Join(t.TempDir(), "none.toml"), DefaultEnvPrefix)
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("Resolve error = %v, want ErrValidationFailed", err)
	}
}

func TestResolveWithoutFile(t *testing.T) {
	cfg, err := Resolve("", "VIMOPS_TEST_UNSET_")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Registers.ClipboardKeys != "+*" {
		t.Errorf("ClipboardKeys = %q, want defaults", cfg.Registers.ClipboardKeys)
	}
}
