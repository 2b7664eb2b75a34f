// Package config loads, normalizes, and validates moviedb configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MOVIEDB_DATA_DIR. Relative catalog and archive paths are resolved against
// the data directory so the rest of the program only ever sees absolute paths.
package config
