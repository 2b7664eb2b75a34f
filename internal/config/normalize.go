package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeDisplay()
	if err := c.normalizeArchive(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("MOVIEDB_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = resolveIn(c.Paths.DataDir, c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	if value, ok := os.LookupEnv("MOVIEDB_RATING_SCALE"); ok && strings.TrimSpace(value) != "" {
		c.Catalog.RatingScale = value
	}
	c.Catalog.RatingScale = strings.ToLower(strings.TrimSpace(c.Catalog.RatingScale))
	switch c.Catalog.RatingScale {
	case "":
		c.Catalog.RatingScale = defaultRatingScale
	case "5":
		c.Catalog.RatingScale = "five"
	case "10":
		c.Catalog.RatingScale = "ten"
	}
	if strings.TrimSpace(c.Catalog.DataFile) == "" {
		c.Catalog.DataFile = defaultDataFile
	}
	var err error
	if c.Catalog.DataFile, err = resolveIn(c.Paths.DataDir, c.Catalog.DataFile); err != nil {
		return fmt.Errorf("catalog.data_file: %w", err)
	}
	if c.Catalog.SeedFile, err = resolveIn(c.Paths.DataDir, c.Catalog.SeedFile); err != nil {
		return fmt.Errorf("catalog.seed_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeDisplay() {
	c.Display.Style = strings.ToLower(strings.TrimSpace(c.Display.Style))
	if c.Display.Style == "" {
		c.Display.Style = defaultStyle
	}
	c.Display.Glyphs = strings.ToLower(strings.TrimSpace(c.Display.Glyphs))
	if c.Display.Glyphs == "" {
		c.Display.Glyphs = defaultGlyphs
	}
	c.Display.Color = strings.ToLower(strings.TrimSpace(c.Display.Color))
	if c.Display.Color == "" {
		c.Display.Color = defaultColor
	}
}

func (c *Config) normalizeArchive() error {
	if strings.TrimSpace(c.Archive.Path) == "" {
		c.Archive.Path = defaultArchivePath
	}
	var err error
	if c.Archive.Path, err = resolveIn(c.Paths.DataDir, c.Archive.Path); err != nil {
		return fmt.Errorf("archive.path: %w", err)
	}
	if c.Archive.Keep < 0 {
		c.Archive.Keep = 0
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
