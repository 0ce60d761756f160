package config

import (
	"errors"
	"fmt"
	"math"
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateResolver(); err != nil {
		return err
	}
	if err := c.validateChroma(); err != nil {
		return err
	}
	if err := c.validateMIDI(); err != nil {
		return err
	}
	return c.validateAPI()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	for component, level := range c.Logging.ComponentOverrides {
		if !validLevels[level] {
			return fmt.Errorf("logging.component_overrides.%s: unknown level %q", component, level)
		}
	}
	return nil
}

func (c *Config) validateResolver() error {
	if c.Resolver.MaxCandidates < 1 || c.Resolver.MaxCandidates > maxCandidatesLimit {
		return fmt.Errorf("resolver.max_candidates must be between 1 and %d", maxCandidatesLimit)
	}
	if c.Resolver.Workers < 0 {
		return errors.New("resolver.workers must be zero or positive")
	}
	return nil
}

func (c *Config) validateChroma() error {
	if math.IsNaN(c.Chroma.Threshold) || c.Chroma.Threshold < 0 || c.Chroma.Threshold > 1 {
		return errors.New("chroma.threshold must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateMIDI() error {
	if c.MIDI.Tempo <= 0 {
		return errors.New("midi.tempo must be positive")
	}
	if c.MIDI.Velocity < 1 || c.MIDI.Velocity > 127 {
		return errors.New("midi.velocity must be between 1 and 127")
	}
	if c.MIDI.DurationBeats <= 0 {
		return errors.New("midi.duration_beats must be positive")
	}
	if c.MIDI.Channel < 0 || c.MIDI.Channel > 15 {
		return errors.New("midi.channel must be between 0 and 15")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.ReadTimeoutSeconds <= 0 {
		return errors.New("api.read_timeout_seconds must be positive")
	}
	if c.API.ShutdownTimeoutSeconds <= 0 {
		return errors.New("api.shutdown_timeout_seconds must be positive")
	}
	return nil
}
