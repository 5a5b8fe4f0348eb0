package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Output modes for command results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the settings the CLI reads from config.yaml and flags.
type Config struct {
	Output string    `json:"output" yaml:"output" mapstructure:"output" validate:"oneof=text json"`
	Prompt string    `json:"prompt" yaml:"prompt" mapstructure:"prompt"`
	Log    LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}

// LogConfig selects the logger level and formatter.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Output: OutputText,
		Prompt: "libraflow> ",
		Log: LogConfig{
			Level:  "warn",
			Format: LogFormatText,
		},
	}
}

var validate = validator.New()

// Validate checks that the Config is well-formed. Failures wrap
// ErrInvalidConfig and name every offending field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
