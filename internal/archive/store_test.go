package archive_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"moviedb/internal/archive"
	"moviedb/internal/logging"
	"moviedb/internal/movie"
	"moviedb/internal/testsupport"
)

func sampleMovies(scale movie.Scale) []movie.Movie {
	return []movie.Movie{
		movie.New("The Godfather", 2, 1972, "English", 5, scale),
		movie.New("La Haine", 7, 1995, "French", 4, scale),
		movie.New("Parasite", 4, 2019, "Korean", 5, scale),
	}
}

func TestSaveAndRestoreSnapshot(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenArchive(t, cfg)
	ctx := context.Background()

	movies := sampleMovies(movie.FivePoint)
	snap, err := store.Save(ctx, "  before cleanup ", movie.FivePoint, movies)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if snap.ID == "" || snap.Count != 3 || snap.Label != "before cleanup" || snap.Scale != "five" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	restored, err := store.Movies(ctx, snap.ID, movie.FivePoint)
	if err != nil {
		t.Fatalf("Movies: %v", err)
	}
	if len(restored) != len(movies) {
		t.Fatalf("restored %d movies, want %d", len(restored), len(movies))
	}
	for i := range movies {
		if restored[i] != movies[i] {
			t.Fatalf("movie %d = %+v, want %+v", i, restored[i], movies[i])
		}
	}
}

func TestMoviesConvertsScale(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenArchive(t, cfg)
	ctx := context.Background()

	snap, err := store.Save(ctx, "", movie.FivePoint, sampleMovies(movie.FivePoint))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	restored, err := store.Movies(ctx, snap.ID, movie.TenPoint)
	if err != nil {
		t.Fatalf("Movies: %v", err)
	}
	if restored[0].Scale() != movie.TenPoint || restored[0].Rating() != 10 {
		t.Fatalf("expected 10 on ten-point scale, got %v on %v", restored[0].Rating(), restored[0].Scale())
	}
}

func TestListNewestFirstAndPrefixLookup(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenArchive(t, cfg)
	ctx := context.Background()

	first, err := store.Save(ctx, "first", movie.FivePoint, nil)
	if err != nil {
		t.Fatalf("Save first: %v", err)
	}
	second, err := store.Save(ctx, "second", movie.FivePoint, sampleMovies(movie.FivePoint))
	if err != nil {
		t.Fatalf("Save second: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("unexpected order: %+v", list)
	}

	got, err := store.Get(ctx, second.ID[:8])
	if err != nil {
		t.Fatalf("Get by prefix: %v", err)
	}
	if got.ID != second.ID {
		t.Fatalf("prefix resolved to %s, want %s", got.ID, second.ID)
	}
}

func TestGetMissingSnapshot(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenArchive(t, cfg)

	if _, err := store.Get(context.Background(), "does-not-exist"); !errors.Is(err, archive.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
	if err := store.Delete(context.Background(), "does-not-exist"); !errors.Is(err, archive.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound from Delete, got %v", err)
	}
}

func TestDeleteAndPrune(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenArchive(t, cfg)
	ctx := context.Background()

	var ids []string
	for _, label := range []string{"a", "b", "c", "d"} {
		snap, err := store.Save(ctx, label, movie.FivePoint, sampleMovies(movie.FivePoint))
		if err != nil {
			t.Fatalf("Save %s: %v", label, err)
		}
		ids = append(ids, snap.ID)
	}

	if err := store.Delete(ctx, ids[3]); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Movies(ctx, ids[3], movie.FivePoint); !errors.Is(err, archive.ErrSnapshotNotFound) {
		t.Fatalf("deleted snapshot still readable: %v", err)
	}

	removed, err := store.Prune(ctx, 1)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 2 {
		t.Fatalf("Prune removed %d, want 2", removed)
	}
	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != ids[2] {
		t.Fatalf("expected only %s to remain, got %+v", ids[2], list)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenArchive(t, cfg)
	_ = store.Close()

	db, err := sql.Open("sqlite", cfg.Archive.Path)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_ = db.Close()

	if _, err := archive.Open(cfg, logging.NewNop()); !errors.Is(err, archive.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
