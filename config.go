package main

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is read from STIMEOUT_* environment variables.
type Config struct {
	// LogLevel enables diagnostics on stderr. Empty disables them.
	LogLevel string `split_words:"true"`
}

func loadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("stimeout", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
