// Package logging assembles the structured slog loggers used across moviedb.
//
// It owns the console and JSON handlers, maps config level/format strings onto
// slog, fans output to stderr and the log file, and tags every record of a CLI
// invocation with a run identifier. Components obtain a child logger through
// NewComponentLogger so their lines carry a component attribute; tests use
// NewNop.
package logging
