package dispatcher

import "github.com/dshills/vimops/internal/register"

// Config holds dispatcher configuration options.
type Config struct {
	// DefaultRegister is used by actions that name no register.
	DefaultRegister rune

	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps handler execution in panic recovery.
	RecoverFromPanic bool

	// MaxRepeatCount limits the maximum repeat count for actions.
	// Zero means no limit.
	MaxRepeatCount int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultRegister:  register.Unnamed,
		EnableMetrics:    false,
		RecoverFromPanic: true,
		MaxRepeatCount:   10000,
	}
}

// WithDefaultRegister returns a copy of the config with the default register set.
func (c Config) WithDefaultRegister(reg rune) Config {
	c.DefaultRegister = reg
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(enabled bool) Config {
	c.RecoverFromPanic = enabled
	return c
}

// WithMaxRepeatCount returns a copy of the config with the max repeat count set.
func (c Config) WithMaxRepeatCount(limit int) Config {
	c.MaxRepeatCount = limit
	return c
}
