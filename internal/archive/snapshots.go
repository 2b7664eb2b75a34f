package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"moviedb/internal/logging"
	"moviedb/internal/movie"
)

var (
	// ErrSnapshotNotFound is returned when no snapshot matches the requested id.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrAmbiguousID is returned when an id prefix matches more than one snapshot.
	ErrAmbiguousID = errors.New("snapshot id prefix is ambiguous")
)

// Snapshot describes one archived copy of the catalog.
type Snapshot struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Scale     string    `json:"scale"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

const snapshotColumns = "id, label, scale, movie_count, created_at"

// timestampLayout is fixed width so created_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Save records movies, in order, as a new snapshot.
func (s *Store) Save(ctx context.Context, label string, scale movie.Scale, movies []movie.Movie) (Snapshot, error) {
	ctx = ensureContext(ctx)
	snap := Snapshot{
		ID:        uuid.NewString(),
		Label:     strings.TrimSpace(label),
		Scale:     scale.Name,
		Count:     len(movies),
		CreatedAt: s.now().UTC(),
	}

	err := retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshots (`+snapshotColumns+`) VALUES (?, ?, ?, ?, ?)`,
			snap.ID, snap.Label, snap.Scale, snap.Count, snap.CreatedAt.Format(timestampLayout),
		); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO snapshot_movies (snapshot_id, position, movie_id, name, year, language, rating) VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, m := range movies {
			m = m.Rescale(scale)
			if _, err := stmt.ExecContext(ctx, snap.ID, i, m.ID(), m.Name(), m.Year(), m.Language(), m.Rating()); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	s.logger.Info("snapshot saved",
		logging.String("snapshot_id", snap.ID),
		logging.Int("count", snap.Count),
	)
	return snap, nil
}

// List returns all snapshots, newest first.
func (s *Store) List(ctx context.Context) ([]Snapshot, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+snapshotColumns+` FROM snapshots ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// Get returns the snapshot whose id equals or uniquely starts with id.
func (s *Store) Get(ctx context.Context, id string) (Snapshot, error) {
	ctx = ensureContext(ctx)
	id = strings.TrimSpace(id)
	if id == "" {
		return Snapshot{}, ErrSnapshotNotFound
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+snapshotColumns+` FROM snapshots WHERE id = ? OR substr(id, 1, ?) = ? ORDER BY id = ? DESC LIMIT 2`,
		id, len(id), id, id)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get snapshot: %w", err)
	}
	defer rows.Close()

	var matches []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return Snapshot{}, err
		}
		matches = append(matches, snap)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, err
	}
	switch {
	case len(matches) == 0:
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	case matches[0].ID == id, len(matches) == 1:
		return matches[0], nil
	default:
		return Snapshot{}, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
	}
}

// Movies returns the movies of snapshot id in their saved order, converted
// onto scale.
func (s *Store) Movies(ctx context.Context, id string, scale movie.Scale) ([]movie.Movie, error) {
	ctx = ensureContext(ctx)
	snap, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	stored, err := movie.ParseScale(snap.Scale)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", snap.ID, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT movie_id, name, year, language, rating FROM snapshot_movies WHERE snapshot_id = ? ORDER BY position`,
		snap.ID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot movies: %w", err)
	}
	defer rows.Close()

	movies := make([]movie.Movie, 0, snap.Count)
	for rows.Next() {
		var (
			movieID  int
			name     string
			year     int
			language string
			rating   float64
		)
		if err := rows.Scan(&movieID, &name, &year, &language, &rating); err != nil {
			return nil, err
		}
		movies = append(movies, movie.New(name, movieID, year, language, rating, stored).Rescale(scale))
	}
	return movies, rows.Err()
}

// Delete removes snapshot id and its movies.
func (s *Store) Delete(ctx context.Context, id string) error {
	snap, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.deleteSnapshots(ctx, []string{snap.ID}); err != nil {
		return err
	}
	s.logger.Info("snapshot deleted", logging.String("snapshot_id", snap.ID))
	return nil
}

// Prune deletes all but the newest keep snapshots and returns how many were
// removed. keep <= 0 retains everything.
func (s *Store) Prune(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	snapshots, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(snapshots) <= keep {
		return 0, nil
	}
	ids := make([]string, 0, len(snapshots)-keep)
	for _, snap := range snapshots[keep:] {
		ids = append(ids, snap.ID)
	}
	if err := s.deleteSnapshots(ctx, ids); err != nil {
		return 0, err
	}
	s.logger.Debug("snapshots pruned", logging.Int("removed", len(ids)), logging.Int("keep", keep))
	return len(ids), nil
}

func (s *Store) deleteSnapshots(ctx context.Context, ids []string) error {
	ctx = ensureContext(ctx)
	for _, id := range ids {
		if _, err := s.execWithRetry(ctx, `DELETE FROM snapshot_movies WHERE snapshot_id = ?`, id); err != nil {
			return fmt.Errorf("delete snapshot movies: %w", err)
		}
		if _, err := s.execWithRetry(ctx, `DELETE FROM snapshots WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete snapshot: %w", err)
		}
	}
	return nil
}

func scanSnapshot(scanner interface{ Scan(dest ...any) error }) (Snapshot, error) {
	var (
		snap       Snapshot
		label      sql.NullString
		createdRaw string
	)
	if err := scanner.Scan(&snap.ID, &label, &snap.Scale, &snap.Count, &createdRaw); err != nil {
		return Snapshot{}, err
	}
	snap.Label = label.String
	if ts, err := time.Parse(timestampLayout, createdRaw); err == nil {
		snap.CreatedAt = ts
	}
	return snap, nil
}
