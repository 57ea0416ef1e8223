package config

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/logging"
	"github.com/dshills/vimops/internal/register"
)

// Config holds all vimops settings.
type Config struct {
	Buffer    BufferConfig    `toml:"buffer" yaml:"buffer" json:"buffer"`
	Registers RegistersConfig `toml:"registers" yaml:"registers" json:"registers"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging" json:"logging"`
}

// BufferConfig configures new buffers.
type BufferConfig struct {
	// LineEnding is "auto", "lf", "crlf" or "cr". Auto keeps the style
	// of the text the buffer is created from.
	LineEnding string `toml:"line_ending" yaml:"line_ending" json:"line_ending"`
}

// RegistersConfig configures the register store.
type RegistersConfig struct {
	// Default is the register used when an action names none.
	Default string `toml:"default" yaml:"default" json:"default"`

	// Clipboard routes ClipboardKeys to the system clipboard.
	Clipboard bool `toml:"clipboard" yaml:"clipboard" json:"clipboard"`

	// ClipboardKeys lists the register keys backed by the clipboard.
	ClipboardKeys string `toml:"clipboard_keys" yaml:"clipboard_keys" json:"clipboard_keys"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level" yaml:"level" json:"level"`
}

// LineEndingAuto detects the line ending from a buffer's initial text.
const LineEndingAuto = "auto"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Buffer: BufferConfig{
			LineEnding: LineEndingAuto,
		},
		Registers: RegistersConfig{
			Default:       string(register.Unnamed),
			Clipboard:     false,
			ClipboardKeys: "+*",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns the first ValidationError.
func (c *Config) Validate() error {
	if _, err := buffer.ParseLineEnding(c.Buffer.LineEnding); err != nil && !c.AutoLineEnding() {
		return &ValidationError{Field: "buffer.line_ending", Value: c.Buffer.LineEnding, Message: "want auto, lf, crlf or cr"}
	}
	if r, ok := singleRune(c.Registers.Default); !ok || !register.ValidKey(r) {
		return &ValidationError{Field: "registers.default", Value: c.Registers.Default, Message: "want one printable character"}
	}
	for _, r := range c.Registers.ClipboardKeys {
		if !register.ValidKey(r) {
			return &ValidationError{Field: "registers.clipboard_keys", Value: c.Registers.ClipboardKeys, Message: "contains an invalid register key"}
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ValidationError{Field: "logging.level", Value: c.Logging.Level, Message: "want debug, info, warn or error"}
	}
	return nil
}

// LineEnding returns the configured line ending, LF if it is auto or
// invalid.
func (c *Config) LineEnding() buffer.LineEnding {
	le, _ := buffer.ParseLineEnding(c.Buffer.LineEnding)
	return le
}

// AutoLineEnding returns true if buffers keep the line ending of their text.
func (c *Config) AutoLineEnding() bool {
	return strings.EqualFold(strings.TrimSpace(c.Buffer.LineEnding), LineEndingAuto)
}

// BufferOption returns the buffer option for the configured line ending.
func (c *Config) BufferOption() buffer.Option {
	if c.AutoLineEnding() {
		return buffer.WithDetectedLineEnding()
	}
	return buffer.WithLineEnding(c.LineEnding())
}

// DefaultRegister returns the configured default register, the unnamed
// register if it is invalid.
func (c *Config) DefaultRegister() rune {
	if r, ok := singleRune(c.Registers.Default); ok && register.ValidKey(r) {
		return r
	}
	return register.Unnamed
}

// LogLevel returns the configured log level, Info if it is invalid.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return level
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
