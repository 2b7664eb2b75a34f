// Package movie defines the catalog record and the rating scales it can be
// validated against.
//
// Construction never fails: out-of-range ids, years and ratings are clamped
// into their valid ranges. Mutation is stricter for ratings, where SetRating
// ignores values outside the scale and leaves the stored rating untouched.
// Years and ids are clamped on every path.
package movie
