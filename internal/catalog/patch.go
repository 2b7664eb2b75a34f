package catalog

import "moviedb/internal/movie"

// Patch lists field changes for Update. Nil fields are left unchanged.
type Patch struct {
	ID       *int
	Name     *string
	Year     *int
	Language *string
	Rating   *float64
}

// UpdateResult reports how a Patch was applied.
type UpdateResult struct {
	Movie         movie.Movie
	RatingIgnored bool
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.ID == nil && p.Name == nil && p.Year == nil && p.Language == nil && p.Rating == nil
}

func (p Patch) apply(m *movie.Movie) UpdateResult {
	var result UpdateResult
	if p.ID != nil {
		m.SetID(*p.ID)
	}
	if p.Name != nil {
		m.SetName(*p.Name)
	}
	if p.Year != nil {
		m.SetYear(*p.Year)
	}
	if p.Language != nil {
		m.SetLanguage(*p.Language)
	}
	if p.Rating != nil && !m.SetRating(*p.Rating) {
		result.RatingIgnored = true
	}
	result.Movie = *m
	return result
}
