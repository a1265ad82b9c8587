// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MJE43/ball-draw-go/internal/engine"
)

// Config holds the settings that are not part of the command line.
type Config struct {
	EntropyPath     string `env:"BALLDRAW_ENTROPY_PATH" envDefault:"/dev/urandom"`
	Reseed          string `env:"BALLDRAW_RESEED" envDefault:"once"`
	RoundDivisor    int    `env:"BALLDRAW_ROUND_DIVISOR" envDefault:"4"`
	ReshuffleRounds int    `env:"BALLDRAW_RESHUFFLE_ROUNDS" envDefault:"256"`
	LogLevel        string `env:"BALLDRAW_LOG_LEVEL" envDefault:"warn"`
	LogFormat       string `env:"BALLDRAW_LOG_FORMAT" envDefault:"console"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads and validates the configuration
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot
func (c Config) Validate() error {
	var errs []error
	if c.EntropyPath == "" {
		errs = append(errs, errors.New("BALLDRAW_ENTROPY_PATH must not be empty"))
	}
	if _, err := engine.ParseReseedPolicy(c.Reseed); err != nil {
		errs = append(errs, fmt.Errorf("BALLDRAW_RESEED: %w", err))
	}
	if c.RoundDivisor < 1 {
		errs = append(errs, fmt.Errorf("BALLDRAW_ROUND_DIVISOR must be at least 1, got %d", c.RoundDivisor))
	}
	if c.ReshuffleRounds < 0 {
		errs = append(errs, fmt.Errorf("BALLDRAW_RESHUFFLE_ROUNDS must not be negative, got %d", c.ReshuffleRounds))
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("BALLDRAW_LOG_FORMAT must be console or json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// ReseedPolicy returns the validated reseed policy
func (c Config) ReseedPolicy() engine.ReseedPolicy {
	p, err := engine.ParseReseedPolicy(c.Reseed)
	if err != nil {
		return engine.ReseedOnce
	}
	return p
}
