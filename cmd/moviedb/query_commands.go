package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moviedb/internal/catalog"
	"moviedb/internal/display"
	"moviedb/internal/language"
)

const suggestionLimit = 3

func newTopCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the highest-rated movies (ties included)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd, false, func(cat *catalog.Catalog) error {
				movies := cat.TopRated()
				title := "Top Rated"
				if len(movies) > 0 {
					scale := cat.Scale()
					title = fmt.Sprintf("Top Rated [%s/%s]", scale.Format(movies[0].Rating()), scale.Format(scale.Max))
				}
				return printMovies(cmd, ctx.style(cmd), asJSON, title, movies)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newLatestCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "List the most recent movies (ties included)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd, false, func(cat *catalog.Catalog) error {
				movies := cat.Latest()
				title := "Latest"
				if len(movies) > 0 {
					title = fmt.Sprintf("Latest [Year: %d]", movies[0].Year())
				}
				return printMovies(cmd, ctx.style(cmd), asJSON, title, movies)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newLanguageCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "lang <language>",
		Aliases: []string{"language"},
		Short:   "List movies in a language (case-insensitive)",
		Long: `List movies whose language matches, ignoring case. ISO 639 codes such as
"fr" or "jpn" are accepted in place of the language name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, known := language.Resolve(args[0])
			return ctx.withCatalog(cmd, false, func(cat *catalog.Catalog) error {
				movies := cat.ByLanguage(lang)
				if len(movies) == 0 && !known {
					printStatus(cmd.ErrOrStderr(), statusWarn, "Unrecognized language %q; codes are accepted for %s",
						lang, strings.Join(language.Known(), ", "))
				}
				title := fmt.Sprintf("Movies in %s", lang)
				if code := language.ISO2(lang); code != "" {
					title = fmt.Sprintf("Movies in %s (%s)", lang, code)
				}
				return printMovies(cmd, ctx.style(cmd), asJSON, title, movies)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var suggest bool
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Find movies whose name contains text (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return ctx.withCatalog(cmd, false, func(cat *catalog.Catalog) error {
				matches := cat.SearchName(query)
				if err := printMovies(cmd, ctx.style(cmd), asJSON, fmt.Sprintf("Search: %q", query), matches); err != nil {
					return err
				}
				if len(matches) > 0 || asJSON || !suggest {
					return nil
				}
				suggestions := cat.Suggest(query, suggestionLimit)
				if len(suggestions) == 0 {
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), display.Table("Did you mean", suggestions, ctx.style(cmd)))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&suggest, "suggest", true, "Offer similar titles when nothing matches")
	return cmd
}
