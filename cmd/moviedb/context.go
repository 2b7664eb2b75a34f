package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"moviedb/internal/archive"
	"moviedb/internal/catalog"
	"moviedb/internal/config"
	"moviedb/internal/display"
	"moviedb/internal/logging"
	"moviedb/internal/movie"
	"moviedb/internal/seed"
)

type commandContext struct {
	configFlag *string
	dataFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, dataFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		dataFlag:   dataFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.dataFlag != nil && strings.TrimSpace(*c.dataFlag) != "" {
			dataFile, err := config.ExpandPath(strings.TrimSpace(*c.dataFlag))
			if err != nil {
				c.configErr = fmt.Errorf("resolve --data: %w", err)
				return
			}
			cfg.Catalog.DataFile = dataFile
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerFor returns the process logger tagged with a run id and the command path.
func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.config)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "logging disabled: %v\n", err)
			logger = logging.NewNop()
		}
		c.logger, _ = logging.WithRunID(logger, "")
	})
	return c.logger.With(logging.String(logging.FieldCommand, cmd.CommandPath()))
}

func (c *commandContext) style(cmd *cobra.Command) display.Style {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		return display.DefaultStyle()
	}
	style := display.FromConfig(cfg.Display, shouldColorize(cmd.OutOrStdout()))
	if style.Color {
		text.EnableColors()
	}
	return style
}

func (c *commandContext) newCatalog(cfg *config.Config, logger *slog.Logger) *catalog.Catalog {
	return catalog.New(catalog.Options{
		Capacity: cfg.Catalog.Capacity,
		Scale:    cfg.Scale(),
		Logger:   logger,
	})
}

// withCatalog runs fn against the persisted catalog. The data file is locked
// for the whole call; when mutating is true and fn succeeds the catalog is
// written back.
func (c *commandContext) withCatalog(cmd *cobra.Command, mutating bool, fn func(*catalog.Catalog) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger := c.loggerFor(cmd)
	ctx := commandCtx(cmd)

	var lock *catalog.FileLock
	if mutating {
		lock, err = catalog.Lock(ctx, cfg.Catalog.DataFile)
	} else {
		lock, err = catalog.RLock(ctx, cfg.Catalog.DataFile)
	}
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	cat := c.newCatalog(cfg, logger)
	loaded, err := cat.LoadFile(cfg.Catalog.DataFile)
	if err != nil {
		return err
	}
	if !loaded && cfg.Catalog.SeedOnEmpty {
		movies, err := seedMovies(cfg, logger)
		if err != nil {
			return err
		}
		if err := cat.Replace(movies); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		logger.Info("catalog seeded", logging.Int("count", len(movies)))
	}

	if err := fn(cat); err != nil {
		return err
	}
	if !mutating {
		return nil
	}
	return cat.SaveFile(cfg.Catalog.DataFile)
}

// seedMovies returns the configured seed file contents, or the built-in
// samples when no seed file is set. Samples beyond capacity are dropped.
func seedMovies(cfg *config.Config, logger *slog.Logger) ([]movie.Movie, error) {
	scale := cfg.Scale()
	var movies []movie.Movie
	if cfg.Catalog.SeedFile != "" {
		parsed, err := seed.ParseFile(cfg.Catalog.SeedFile, scale, logger)
		if err != nil {
			return nil, err
		}
		movies = parsed
	} else {
		movies = seed.Samples(scale)
	}
	if len(movies) > cfg.Catalog.Capacity {
		logging.WarnWithContext(logger, "seed truncated to capacity", "seed_truncated",
			logging.Int("seeded", cfg.Catalog.Capacity),
			logging.Int("available", len(movies)),
			logging.String(logging.FieldErrorHint, "raise catalog.capacity to keep every seed movie"),
			logging.String(logging.FieldImpact, "some seed movies were not loaded"),
		)
		movies = movies[:cfg.Catalog.Capacity]
	}
	return movies, nil
}

func (c *commandContext) withArchive(cmd *cobra.Command, fn func(*archive.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.Archive.Enabled {
		return errors.New("archive is disabled (set archive.enabled = true)")
	}
	store, err := archive.Open(cfg, c.loggerFor(cmd))
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
