package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"moviedb/internal/display"
	"moviedb/internal/movie"
)

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid movie id %q", raw)
	}
	return id, nil
}

// printMovies writes movies as JSON or as a titled table.
func printMovies(cmd *cobra.Command, style display.Style, asJSON bool, title string, movies []movie.Movie) error {
	if asJSON {
		return writeJSON(cmd, movieViews(movies))
	}
	fmt.Fprintln(cmd.OutOrStdout(), display.Table(title, movies, style))
	return nil
}
