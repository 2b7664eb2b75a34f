package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"moviedb/internal/archive"
	"moviedb/internal/catalog"
	"moviedb/internal/config"
	"moviedb/internal/logging"
	"moviedb/internal/seed"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <seed-file>",
		Short: "Append movies from a name|id|year|language|rating file",
		Long: `Append movies from a seed file, one movie per line in the form

  name|id|year|language|rating

Blank lines are ignored. Malformed lines are skipped with a warning. Import
stops at the first movie that does not fit within catalog.capacity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := expandArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withCatalog(cmd, true, func(cat *catalog.Catalog) error {
				movies, err := seed.ParseFile(path, cat.Scale(), ctx.loggerFor(cmd))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				imported := 0
				for _, m := range movies {
					if err := cat.Insert(m); err != nil {
						if !errors.Is(err, catalog.ErrCapacityExceeded) {
							return err
						}
						printStatus(out, statusWarn, "Catalog full at %d movies; %d not imported", cat.Capacity(), len(movies)-imported)
						break
					}
					imported++
				}
				printStatus(out, statusOK, "Imported %d of %d movies from %s", imported, len(movies), path)
				return nil
			})
		},
	}
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as name|id|year|language|rating lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd, false, func(cat *catalog.Catalog) error {
				lines, err := seedLines(cat)
				if err != nil {
					return err
				}
				if strings.TrimSpace(output) == "" || output == "-" {
					return writeSeed(cmd.OutOrStdout(), lines)
				}
				path, err := expandArg(output)
				if err != nil {
					return err
				}
				file, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				if err := writeSeed(file, lines); err != nil {
					_ = file.Close()
					return err
				}
				if err := file.Close(); err != nil {
					return fmt.Errorf("close export file: %w", err)
				}
				printStatus(cmd.ErrOrStderr(), statusOK, "Exported %d movies to %s", cat.Len(), path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default: stdout)")
	return cmd
}

func seedLines(cat *catalog.Catalog) ([]string, error) {
	movies := cat.All()
	lines := make([]string, 0, len(movies))
	for _, m := range movies {
		line, err := seed.Format(m)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func writeSeed(w io.Writer, lines []string) error {
	buf := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(buf, line); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
	}
	return buf.Flush()
}

func newResetCommand(ctx *commandContext) *cobra.Command {
	var skipSnapshot bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the catalog with the seed file or built-in samples",
		Long: `Replace the catalog with catalog.seed_file, or with the built-in sample
catalog when no seed file is configured. When the archive is enabled the
current catalog is snapshotted first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.loggerFor(cmd)
			return ctx.withCatalog(cmd, true, func(cat *catalog.Catalog) error {
				out := cmd.OutOrStdout()
				if cfg.Archive.Enabled && !skipSnapshot && cat.Len() > 0 {
					if err := ctx.withArchive(cmd, func(store *archive.Store) error {
						snap, err := saveSnapshot(cmd, store, cfg.Archive.Keep, "before reset", cat)
						if err != nil {
							return err
						}
						printStatus(out, statusInfo, "Saved snapshot %s", shortID(snap.ID))
						return nil
					}); err != nil {
						return err
					}
				}
				movies, err := seedMovies(cfg, logger)
				if err != nil {
					return err
				}
				if err := cat.Replace(movies); err != nil {
					return err
				}
				logger.Info("catalog reset", logging.Int("count", len(movies)))
				printStatus(out, statusOK, "Catalog reset to %d movies", len(movies))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&skipSnapshot, "no-snapshot", false, "Do not archive the current catalog first")
	return cmd
}

func expandArg(raw string) (string, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return "", errors.New("path is empty")
	}
	return config.ExpandPath(path)
}
