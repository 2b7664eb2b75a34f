package seed

import (
	_ "embed"
	"strings"

	"moviedb/internal/logging"
	"moviedb/internal/movie"
)

//go:embed samples.txt
var samplesData string

// Samples returns the built-in catalog of twenty acclaimed films. Ratings are
// authored on the five-point scale and rescaled the same way stored movies are.
func Samples(scale movie.Scale) []movie.Movie {
	movies, _ := Parse(strings.NewReader(samplesData), movie.FivePoint, logging.NewNop())
	if scale == movie.FivePoint {
		return movies
	}
	out := make([]movie.Movie, len(movies))
	for i, m := range movies {
		out[i] = m.Rescale(scale)
	}
	return out
}
