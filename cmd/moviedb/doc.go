// Package main hosts the moviedb CLI entrypoint and command graph.
//
// Each invocation performs one catalog operation: it loads the binary data
// file (seeding it from the sample catalog or a configured seed file when the
// file does not exist yet), runs the operation, and writes the file back when
// the operation changed anything. An advisory lock next to the data file
// serializes concurrent invocations.
//
// Keep this package lean: catalog semantics live in internal/catalog and
// rendering in internal/display; commands here only parse flags and wire
// those pieces together.
package main
