// Package textutil provides the text comparison primitives the catalog relies
// on: Unicode case folding for language and title matching, and token
// fingerprints for ranking near-miss title suggestions.
//
// Folding uses golang.org/x/text/cases rather than strings.ToLower so that
// titles such as "Amélie" or "STRASSE"/"straße" compare the way a reader
// expects.
package textutil
