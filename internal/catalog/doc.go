// Package catalog owns the ordered, capacity-bounded collection of movies and
// every query and mutation over it.
//
// There are no secondary indexes: lookups, filters and searches are linear
// scans in insertion order. Removal shift-compacts the slice so positions stay
// dense. The "top rated" and "latest" filters find the maximum with a strict
// comparison and then collect every movie equal to it, so ties are all
// reported in collection order.
//
// Persistence uses a fixed little-endian binary layout (see codec.go). Load
// decodes into a scratch slice first and only swaps it in on success, so a
// corrupt file never disturbs the in-memory catalog. A missing file is
// reported as "not loaded" rather than as an error.
package catalog
