// Package archive keeps a history of catalog snapshots in SQLite.
//
// Each snapshot stores the catalog's movies in order together with the rating
// scale they were recorded on, so a later restore can convert ratings when
// the configured scale has changed. The database runs in WAL mode and
// retries SQLITE_BUSY with exponential backoff so concurrent CLI invocations
// do not fail on a momentary lock.
package archive
