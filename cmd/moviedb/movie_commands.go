package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"moviedb/internal/catalog"
	"moviedb/internal/display"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every movie in insertion order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd, false, func(cat *catalog.Catalog) error {
				return printMovies(cmd, ctx.style(cmd), asJSON, "All Movies", cat.All())
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctx.withCatalog(cmd, false, func(cat *catalog.Catalog) error {
				m, ok := cat.Find(id)
				if !ok {
					return fmt.Errorf("movie %d: %w", id, catalog.ErrNotFound)
				}
				if asJSON {
					return writeJSON(cmd, newMovieView(m))
				}
				fmt.Fprintln(cmd.OutOrStdout(), display.Detail(m, ctx.style(cmd)))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		id       int
		name     string
		year     int
		language string
		rating   float64
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie",
		Long: `Add a movie to the catalog.

Out-of-range values are clamped: years into 1888-2030, ids to zero or more,
and ratings into the configured scale. Without --id the next free id is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd, true, func(cat *catalog.Catalog) error {
				movieID := id
				if !cmd.Flags().Changed("id") {
					movieID = cat.NextID()
				}
				m := cat.NewMovie(name, movieID, year, language, rating)
				if err := cat.Insert(m); err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), statusOK, "Added %q as movie %d", m.Name(), m.ID())
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "Movie id (default: next free id)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Movie title")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Release year")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Original language")
	cmd.Flags().Float64VarP(&rating, "rating", "r", 0, "Rating on the configured scale")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("language")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var (
		newID    int
		name     string
		year     int
		language string
		rating   float64
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a movie",
		Long: `Update fields of the first movie with the given id.

Only the flags you pass are changed. A rating outside the configured scale is
ignored and the previous rating is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var patch catalog.Patch
			flags := cmd.Flags()
			if flags.Changed("new-id") {
				patch.ID = &newID
			}
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("year") {
				patch.Year = &year
			}
			if flags.Changed("language") {
				patch.Language = &language
			}
			if flags.Changed("rating") {
				patch.Rating = &rating
			}
			if patch.Empty() {
				return errors.New("nothing to update (pass at least one of --name, --year, --language, --rating, --new-id)")
			}

			return ctx.withCatalog(cmd, true, func(cat *catalog.Catalog) error {
				result, err := cat.Update(id, patch)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if result.RatingIgnored {
					scale := cat.Scale()
					printStatus(out, statusWarn, "Rating %v is outside %s; kept %s",
						rating, scale, scale.Format(result.Movie.Rating()))
				}
				printStatus(out, statusOK, "Updated movie %d", result.Movie.ID())
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&newID, "new-id", 0, "Replace the movie id")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Movie title")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Release year")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Original language")
	cmd.Flags().Float64VarP(&rating, "rating", "r", 0, "Rating on the configured scale")
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a movie",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctx.withCatalog(cmd, true, func(cat *catalog.Catalog) error {
				if err := cat.Remove(id); err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), statusOK, "Removed movie %d", id)
				return nil
			})
		},
	}
}

func newNextIDCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "next-id",
		Short: "Print the next free movie id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd, false, func(cat *catalog.Catalog) error {
				fmt.Fprintln(cmd.OutOrStdout(), cat.NextID())
				return nil
			})
		},
	}
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd, false, func(cat *catalog.Catalog) error {
				stats := cat.Stats()
				if asJSON {
					return writeJSON(cmd, statsView{Stats: stats, Scale: cat.Scale().Name})
				}
				fmt.Fprintln(cmd.OutOrStdout(), display.StatsTable(stats, cat.Scale(), ctx.style(cmd)))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
