package catalog

import (
	"fmt"
	"log/slog"
	"sync"

	"moviedb/internal/logging"
	"moviedb/internal/movie"
	"moviedb/internal/textutil"
)

// DefaultCapacity is the catalog size used when none is configured.
const DefaultCapacity = 20

// Options configures a new Catalog.
type Options struct {
	Capacity int
	Scale    movie.Scale
	Logger   *slog.Logger
}

// Catalog is an ordered, bounded collection of movies guarded by a single lock.
type Catalog struct {
	mu       sync.RWMutex
	movies   []movie.Movie
	capacity int
	scale    movie.Scale
	logger   *slog.Logger
}

// New returns an empty catalog. A non-positive capacity falls back to
// DefaultCapacity and a zero scale to movie.FivePoint.
func New(opts Options) *Catalog {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	scale := opts.Scale
	if scale == (movie.Scale{}) {
		scale = movie.FivePoint
	}
	return &Catalog{
		capacity: capacity,
		scale:    scale,
		logger:   logging.NewComponentLogger(opts.Logger, "catalog"),
	}
}

// NewMovie constructs a movie on the catalog's rating scale.
func (c *Catalog) NewMovie(name string, id, year int, language string, rating float64) movie.Movie {
	return movie.New(name, id, year, language, rating, c.scale)
}

// Capacity returns the maximum number of movies the catalog accepts.
func (c *Catalog) Capacity() int { return c.capacity }

// Scale returns the rating scale movies are validated against.
func (c *Catalog) Scale() movie.Scale { return c.scale }

// Len returns the number of stored movies.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.movies)
}

// All returns a copy of every movie in collection order.
func (c *Catalog) All() []movie.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]movie.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Insert appends m. At capacity it returns ErrCapacityExceeded and leaves the
// catalog unchanged. Movies built on another scale are converted.
func (c *Catalog) Insert(m movie.Movie) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.movies) >= c.capacity {
		return fmt.Errorf("insert movie %d: %w (capacity %d)", m.ID(), ErrCapacityExceeded, c.capacity)
	}
	c.movies = append(c.movies, m.Rescale(c.scale))
	c.logger.Debug("movie inserted", logging.Int("movie_id", m.ID()), logging.Int("count", len(c.movies)))
	return nil
}

// Remove deletes the first movie with the given id, shifting later movies
// down one position.
func (c *Catalog) Remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("remove movie %d: %w", id, ErrNotFound)
	}
	copy(c.movies[idx:], c.movies[idx+1:])
	c.movies[len(c.movies)-1] = movie.Movie{}
	c.movies = c.movies[:len(c.movies)-1]
	c.logger.Debug("movie removed", logging.Int("movie_id", id), logging.Int("count", len(c.movies)))
	return nil
}

// Find returns a copy of the first movie with the given id.
func (c *Catalog) Find(id int) (movie.Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return movie.Movie{}, false
	}
	return c.movies[idx], true
}

// Update applies p to the first movie with the given id in place. It reports
// which requested fields were ignored by the movie's validation.
func (c *Catalog) Update(id int, p Patch) (UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return UpdateResult{}, fmt.Errorf("update movie %d: %w", id, ErrNotFound)
	}
	result := p.apply(&c.movies[idx])
	if result.RatingIgnored {
		logging.WarnWithContext(c.logger, "rating outside scale ignored", "rating_ignored",
			logging.Int("movie_id", id),
			logging.Float64("rating", *p.Rating),
			logging.String("scale", c.scale.String()),
			logging.String(logging.FieldImpact, "previous rating kept"),
			logging.String(logging.FieldErrorHint, "supply a rating within the configured scale"),
		)
	}
	return result, nil
}

// Replace swaps the catalog contents for movies, converted to the catalog's
// scale. It fails without mutating when movies exceeds capacity.
func (c *Catalog) Replace(movies []movie.Movie) error {
	if len(movies) > c.capacity {
		return fmt.Errorf("replace catalog with %d movies: %w (capacity %d)", len(movies), ErrCapacityExceeded, c.capacity)
	}
	next := make([]movie.Movie, len(movies))
	for i, m := range movies {
		next[i] = m.Rescale(c.scale)
	}
	c.mu.Lock()
	c.movies = next
	c.mu.Unlock()
	return nil
}

// NextID returns one more than the largest id present, or 1 when empty.
func (c *Catalog) NextID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	maxID := 0
	for _, m := range c.movies {
		if m.ID() > maxID {
			maxID = m.ID()
		}
	}
	return maxID + 1
}

// ByLanguage returns movies whose language matches lang, ignoring case.
func (c *Catalog) ByLanguage(lang string) []movie.Movie {
	return c.collect(func(m movie.Movie) bool { return m.MatchesLanguage(lang) })
}

// SearchName returns movies whose name contains substr, ignoring case.
func (c *Catalog) SearchName(substr string) []movie.Movie {
	return c.collect(func(m movie.Movie) bool {
		return textutil.ContainsFold(m.Name(), substr)
	})
}

// TopRated returns every movie sharing the highest rating.
func (c *Catalog) TopRated() []movie.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.movies) == 0 {
		return nil
	}
	best := c.movies[0].Rating()
	for _, m := range c.movies[1:] {
		if m.Rating() > best {
			best = m.Rating()
		}
	}
	return c.collectLocked(func(m movie.Movie) bool { return m.Rating() == best })
}

// Latest returns every movie sharing the most recent year.
func (c *Catalog) Latest() []movie.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.movies) == 0 {
		return nil
	}
	latest := c.movies[0].Year()
	for _, m := range c.movies[1:] {
		if m.Year() > latest {
			latest = m.Year()
		}
	}
	return c.collectLocked(func(m movie.Movie) bool { return m.Year() == latest })
}

func (c *Catalog) collect(match func(movie.Movie) bool) []movie.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.collectLocked(match)
}

func (c *Catalog) collectLocked(match func(movie.Movie) bool) []movie.Movie {
	var out []movie.Movie
	for _, m := range c.movies {
		if match(m) {
			out = append(out, m)
		}
	}
	return out
}

func (c *Catalog) indexOf(id int) int {
	for i, m := range c.movies {
		if m.ID() == id {
			return i
		}
	}
	return -1
}
