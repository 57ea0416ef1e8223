package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultEnvPrefix is the prefix of vimops environment variables.
const DefaultEnvPrefix = "VIMOPS_"

// ApplyEnv overlays settings from environment variables:
//
//	<prefix>LINE_ENDING      buffer.line_ending
//	<prefix>DEFAULT_REGISTER registers.default
//	<prefix>CLIPBOARD        registers.clipboard (a strconv.ParseBool value)
//	<prefix>LOG_LEVEL        logging.level
//
// Empty values are treated as set. The result is not validated.
func (c *Config) ApplyEnv(prefix string) error {
	if v, ok := os.LookupEnv(prefix + "LINE_ENDING"); ok {
		c.Buffer.LineEnding = v
	}
	if v, ok := os.LookupEnv(prefix + "DEFAULT_REGISTER"); ok {
		c.Registers.Default = v
	}
	if v, ok := os.LookupEnv(prefix + "CLIPBOARD"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sCLIPBOARD: %w", prefix, &ValidationError{
				Field:   "registers.clipboard",
				Value:   v,
				Message: "want a boolean",
			})
		}
		c.Registers.Clipboard = b
	}
	if v, ok := os.LookupEnv(prefix + "LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	return nil
}
