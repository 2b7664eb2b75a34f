package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"moviedb/internal/catalog"
	"moviedb/internal/movie"
)

type statsView struct {
	catalog.Stats
	Scale string `json:"scale"`
}

type movieView struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Year     int     `json:"year"`
	Language string  `json:"language"`
	Rating   float64 `json:"rating"`
	Scale    string  `json:"scale"`
}

func newMovieView(m movie.Movie) movieView {
	return movieView{
		ID:       m.ID(),
		Name:     m.Name(),
		Year:     m.Year(),
		Language: m.Language(),
		Rating:   m.Rating(),
		Scale:    m.Scale().Name,
	}
}

func movieViews(movies []movie.Movie) []movieView {
	views := make([]movieView, 0, len(movies))
	for _, m := range movies {
		views = append(views, newMovieView(m))
	}
	return views
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
