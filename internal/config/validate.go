package config

import (
	"errors"
	"fmt"
	"strings"
)

const maxCapacity = 1 << 20

var (
	validScales  = []string{"five", "ten"}
	validStyles  = []string{"rounded", "light", "double", "ascii"}
	validGlyphs  = []string{"unicode", "ascii"}
	validColors  = []string{"auto", "always", "never"}
	validLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validFormats = []string{"console", "json"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Capacity <= 0 {
		return errors.New("catalog.capacity must be positive")
	}
	if c.Catalog.Capacity > maxCapacity {
		return fmt.Errorf("catalog.capacity must not exceed %d", maxCapacity)
	}
	if strings.TrimSpace(c.Catalog.DataFile) == "" {
		return errors.New("catalog.data_file must be set")
	}
	return ensureOneOf("catalog.rating_scale", c.Catalog.RatingScale, validScales)
}

func (c *Config) validateDisplay() error {
	if err := ensureOneOf("display.style", c.Display.Style, validStyles); err != nil {
		return err
	}
	if err := ensureOneOf("display.glyphs", c.Display.Glyphs, validGlyphs); err != nil {
		return err
	}
	return ensureOneOf("display.color", c.Display.Color, validColors)
}

func (c *Config) validateLogging() error {
	if err := ensureOneOf("logging.format", c.Logging.Format, validFormats); err != nil {
		return err
	}
	return ensureOneOf("logging.level", c.Logging.Level, validLevels)
}

func ensureOneOf(key, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s (got %q)", key, strings.Join(allowed, ", "), value)
}
