package catalog

import "moviedb/internal/textutil"

// Stats summarizes the catalog contents.
type Stats struct {
	Count        int      `json:"count"`
	Capacity     int      `json:"capacity"`
	Languages    []string `json:"languages"`
	EarliestYear int      `json:"earliest_year,omitempty"`
	LatestYear   int      `json:"latest_year,omitempty"`
	MeanRating   float64  `json:"mean_rating"`
}

// Stats computes a summary in one pass. Languages are listed in order of first
// appearance, deduplicated without regard to case.
func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{Count: len(c.movies), Capacity: c.capacity}
	if len(c.movies) == 0 {
		return stats
	}
	seen := make(map[string]struct{})
	var total float64
	stats.EarliestYear = c.movies[0].Year()
	stats.LatestYear = c.movies[0].Year()
	for _, m := range c.movies {
		key := textutil.Fold(m.Language())
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			stats.Languages = append(stats.Languages, m.Language())
		}
		if m.Year() < stats.EarliestYear {
			stats.EarliestYear = m.Year()
		}
		if m.Year() > stats.LatestYear {
			stats.LatestYear = m.Year()
		}
		total += m.Rating()
	}
	stats.MeanRating = total / float64(len(c.movies))
	return stats
}
