package testsupport

import (
	"path/filepath"
	"testing"

	"moviedb/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Catalog.DataFile = filepath.Join(base, "data", "catalog.bin")
	cfgVal.Archive.Path = filepath.Join(base, "data", "archive.db")
	cfgVal.Display.Color = "never"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCapacity overrides the catalog capacity.
func WithCapacity(capacity int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.Capacity = capacity
	}
}

// WithRatingScale sets catalog.rating_scale ("five" or "ten").
func WithRatingScale(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.RatingScale = name
	}
}

// WithoutSeed disables seeding an absent data file.
func WithoutSeed() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.SeedOnEmpty = false
	}
}

// WithSeedFile writes content to a seed file under the temp dir and points
// the config at it.
func WithSeedFile(content string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "seed.txt")
		WriteFile(b.t, path, content)
		b.cfg.Catalog.SeedFile = path
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
