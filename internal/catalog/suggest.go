package catalog

import (
	"sort"

	"moviedb/internal/movie"
	"moviedb/internal/textutil"
)

// minSuggestionScore is the lowest similarity worth offering as "did you mean".
const minSuggestionScore = 0.34

// Suggest ranks movies whose titles resemble query, for use when SearchName
// finds nothing. At most limit movies are returned, best first; ties keep
// collection order.
func (c *Catalog) Suggest(query string, limit int) []movie.Movie {
	if limit <= 0 {
		return nil
	}
	queryPrint := textutil.NewFingerprint(query)
	if queryPrint == nil {
		return nil
	}

	type scored struct {
		movie movie.Movie
		score float64
	}
	c.mu.RLock()
	candidates := make([]scored, 0, len(c.movies))
	for _, m := range c.movies {
		score := textutil.CosineSimilarity(queryPrint, textutil.NewFingerprint(m.Name()))
		if prefix := textutil.PrefixSimilarity(query, m.Name()); prefix > score {
			score = prefix
		}
		if score >= minSuggestionScore {
			candidates = append(candidates, scored{movie: m, score: score})
		}
	}
	c.mu.RUnlock()

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]movie.Movie, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.movie
	}
	return out
}
