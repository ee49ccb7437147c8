// Package config loads front-end configuration for the console CLI.
// Precedence, highest to lowest: CLI flags (bound into viper by cmd),
// QCON_* environment variables, a local .env file, the config file,
// built-in defaults. The engine itself takes no configuration beyond its
// constructor options; everything here is host glue.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"quakeconsole/internal/logger"
)

// Config holds the settings of the interactive console front-end.
type Config struct {
	HistorySize int    `mapstructure:"history-size"`
	Prompt      string `mapstructure:"prompt"`
	LogLevel    string `mapstructure:"log-level"`
	LogFile     string `mapstructure:"log-file"`
	// InitScript is a console script executed before the interactive
	// loop starts, the autoexec.cfg convention.
	InitScript string `mapstructure:"init-script"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		HistorySize: 100,
		Prompt:      "] ",
		LogLevel:    "info",
	}
}

// Load reads configuration into v and returns the result. configFile may
// be empty, in which case qcon.yaml is searched in the working directory
// and $HOME/.config/qcon. A missing config file is not an error; a
// malformed one is.
func Load(v *viper.Viper, configFile string) (Config, error) {
	// A local .env is applied first so QCON_* values defined there are
	// visible to viper's env lookup. Absence is fine.
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded .env file")
	}

	defaults := Defaults()
	v.SetDefault("history-size", defaults.HistorySize)
	v.SetDefault("prompt", defaults.Prompt)
	v.SetDefault("log-level", defaults.LogLevel)
	v.SetDefault("log-file", defaults.LogFile)
	v.SetDefault("init-script", defaults.InitScript)

	v.SetEnvPrefix("QCON")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("qcon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/qcon")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		logger.Debug("Loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.HistorySize < 0 {
		return Config{}, fmt.Errorf("history-size cannot be negative, got %d", cfg.HistorySize)
	}
	return cfg, nil
}
