package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"moviedb/internal/archive"
	"moviedb/internal/catalog"
	"moviedb/internal/display"
)

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Save and restore catalog snapshots",
	}
	archiveCmd.AddCommand(newArchiveSaveCommand(ctx))
	archiveCmd.AddCommand(newArchiveListCommand(ctx))
	archiveCmd.AddCommand(newArchiveRestoreCommand(ctx))
	archiveCmd.AddCommand(newArchiveDeleteCommand(ctx))
	return archiveCmd
}

func newArchiveSaveCommand(ctx *commandContext) *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Snapshot the current catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withCatalog(cmd, false, func(cat *catalog.Catalog) error {
				return ctx.withArchive(cmd, func(store *archive.Store) error {
					snap, err := saveSnapshot(cmd, store, cfg.Archive.Keep, label, cat)
					if err != nil {
						return err
					}
					printStatus(cmd.OutOrStdout(), statusOK, "Saved snapshot %s (%d movies)", shortID(snap.ID), snap.Count)
					return nil
				})
			})
		},
	}
	cmd.Flags().StringVarP(&label, "label", "m", "", "Short description of the snapshot")
	return cmd
}

func newArchiveListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withArchive(cmd, func(store *archive.Store) error {
				snapshots, err := store.List(commandCtx(cmd))
				if err != nil {
					return err
				}
				if asJSON {
					if snapshots == nil {
						snapshots = []archive.Snapshot{}
					}
					return writeJSON(cmd, snapshots)
				}
				if len(snapshots) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No snapshots")
					return nil
				}
				rows := make([][]string, 0, len(snapshots))
				for _, snap := range snapshots {
					rows = append(rows, []string{
						shortID(snap.ID),
						snap.CreatedAt.Local().Format(time.DateTime),
						strconv.Itoa(snap.Count),
						snap.Scale,
						snap.Label,
					})
				}
				headers := []string{"ID", "Created", "Movies", "Scale", "Label"}
				fmt.Fprintln(cmd.OutOrStdout(), display.Grid(headers, rows, []int{2}, ctx.style(cmd)))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newArchiveRestoreCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <snapshot-id>",
		Short: "Replace the catalog with a snapshot",
		Long: `Replace the catalog with a snapshot. The id may be abbreviated to any
unique prefix. Ratings are converted when the snapshot was taken on a
different rating scale.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(cmd, true, func(cat *catalog.Catalog) error {
				return ctx.withArchive(cmd, func(store *archive.Store) error {
					movies, err := store.Movies(commandCtx(cmd), args[0], cat.Scale())
					if err != nil {
						return err
					}
					if err := cat.Replace(movies); err != nil {
						return err
					}
					printStatus(cmd.OutOrStdout(), statusOK, "Restored %d movies from snapshot %s", len(movies), strings.TrimSpace(args[0]))
					return nil
				})
			})
		},
	}
}

func newArchiveDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <snapshot-id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withArchive(cmd, func(store *archive.Store) error {
				if err := store.Delete(commandCtx(cmd), args[0]); err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), statusOK, "Deleted snapshot %s", strings.TrimSpace(args[0]))
				return nil
			})
		},
	}
}

// saveSnapshot archives cat and prunes the archive down to keep snapshots.
func saveSnapshot(cmd *cobra.Command, store *archive.Store, keep int, label string, cat *catalog.Catalog) (archive.Snapshot, error) {
	ctx := commandCtx(cmd)
	snap, err := store.Save(ctx, label, cat.Scale(), cat.All())
	if err != nil {
		return archive.Snapshot{}, err
	}
	if _, err := store.Prune(ctx, keep); err != nil {
		return snap, fmt.Errorf("prune archive: %w", err)
	}
	return snap, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
