// Package seed ingests movies from the line-oriented text format
// name|id|year|language|rating and ships the built-in sample catalog.
//
// Parsing never fails on bad content: blank lines are skipped silently and
// malformed lines are skipped with a warning so the rest of the file still
// loads. Only read errors from the underlying reader are returned.
package seed
