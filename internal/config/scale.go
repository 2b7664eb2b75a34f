package config

import "moviedb/internal/movie"

// Scale returns the rating scale named by catalog.rating_scale. Validate
// rejects unknown names, so an unvalidated config falls back to five-point.
func (c *Config) Scale() movie.Scale {
	scale, err := movie.ParseScale(c.Catalog.RatingScale)
	if err != nil {
		return movie.FivePoint
	}
	return scale
}
