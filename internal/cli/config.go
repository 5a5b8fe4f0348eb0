package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/libraflow/internal/paths"
	"github.com/mesh-intelligence/libraflow/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyOutput    = "output"
	cfgKeyPrompt    = "prompt"
	cfgKeyLogLevel  = "log.level"
	cfgKeyLogFormat = "log.format"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper, then applies flag overrides and validates the result. A missing
// config.yaml is not an error.
func loadConfig(flags *rootFlags) (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyOutput, def.Output)
	v.SetDefault(cfgKeyPrompt, def.Prompt)
	v.SetDefault(cfgKeyLogLevel, def.Log.Level)
	v.SetDefault(cfgKeyLogFormat, def.Log.Format)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags.logLevel != "" {
		v.Set(cfgKeyLogLevel, flags.logLevel)
	}
	if flags.logFormat != "" {
		v.Set(cfgKeyLogFormat, flags.logFormat)
	}
	if flags.jsonMode {
		v.Set(cfgKeyOutput, types.OutputJSON)
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Output = strings.ToLower(cfg.Output)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
