package config

const (
	defaultConfigPath  = "~/.config/moviedb/config.toml"
	projectConfigName  = "moviedb.toml"
	defaultDataDir     = "~/.local/share/moviedb"
	defaultLogDir      = "~/.local/share/moviedb/logs"
	defaultCapacity    = 20
	defaultDataFile    = "catalog.bin"
	defaultRatingScale = "five"
	defaultStyle       = "rounded"
	defaultGlyphs      = "unicode"
	defaultColor       = "auto"
	defaultArchivePath = "archive.db"
	defaultArchiveKeep = 50
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Catalog: Catalog{
			Capacity:    defaultCapacity,
			DataFile:    defaultDataFile,
			SeedOnEmpty: true,
			RatingScale: defaultRatingScale,
		},
		Display: Display{
			Style:  defaultStyle,
			Glyphs: defaultGlyphs,
			Color:  defaultColor,
		},
		Archive: Archive{
			Enabled: true,
			Path:    defaultArchivePath,
			Keep:    defaultArchiveKeep,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
