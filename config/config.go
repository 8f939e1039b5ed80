package config

import (
	"errors"
	"time"
)

type Config struct {
	// Required
	Chairs   int `toml:"chairs"`
	Students int `toml:"students"`

	// Optional
	ArrivalDelayMin time.Duration `toml:"arrival_delay_min"`
	ArrivalDelayMax time.Duration `toml:"arrival_delay_max"`
	HelpDelayMin    time.Duration `toml:"help_delay_min"`
	HelpDelayMax    time.Duration `toml:"help_delay_max"`
	Seed            int64         `toml:"seed"`
	DatabaseFile    string        `toml:"database_file"`
}

// Validate fails fast on configurations the simulation must never be
// started with. Zero chairs is deliberately valid: every student then
// balks, which is defined behavior rather than an error.
func (c *Config) Validate() error {
	if c.Chairs < 0 {
		return errors.New("chairs must not be negative")
	}
	if c.Students < 0 {
		return errors.New("students must not be negative")
	}
	for _, d := range []time.Duration{
		c.ArrivalDelayMin, c.ArrivalDelayMax,
		c.HelpDelayMin, c.HelpDelayMax,
	} {
		if d < 0 {
			return errors.New("delay bounds must not be negative")
		}
	}
	return nil
}
