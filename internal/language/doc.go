// Package language resolves the language names users type into the names
// stored in the catalog.
//
// A query may be an ISO 639-1 code ("fr"), an ISO 639-2 code ("fra" or the
// bibliographic "fre"), or the English name in any case. Unrecognized input
// is passed through untouched so catalogs can hold languages this table does
// not know.
package language
