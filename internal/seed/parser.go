package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"moviedb/internal/logging"
	"moviedb/internal/movie"
)

// Delimiter separates fields on a seed line.
const Delimiter = "|"

const fieldCount = 5

// ErrUnencodable reports a movie whose text fields cannot survive a seed line.
var ErrUnencodable = errors.New("movie cannot be written as a seed line")

// Parse reads one movie per line from r. The last four fields are id, year,
// language and rating; everything before them is the name, so names may
// themselves contain the delimiter.
func Parse(r io.Reader, scale movie.Scale, logger *slog.Logger) ([]movie.Movie, error) {
	logger = logging.NewComponentLogger(logger, "seed")

	var movies []movie.Movie
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := parseLine(line, scale)
		if err != nil {
			logging.WarnWithContext(logger, "seed line skipped", "seed_line_invalid",
				logging.Int("line", lineNo),
				logging.String(logging.FieldErrorHint, err.Error()),
				logging.String(logging.FieldImpact, "movie not imported"),
			)
			continue
		}
		movies = append(movies, m)
	}
	if err := scanner.Err(); err != nil {
		return movies, fmt.Errorf("read seed data: %w", err)
	}
	logger.Debug("seed parsed", logging.Int("count", len(movies)), logging.Int("lines", lineNo))
	return movies, nil
}

// ParseFile parses the seed file at path.
func ParseFile(path string, scale movie.Scale, logger *slog.Logger) ([]movie.Movie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer file.Close()
	return Parse(file, scale, logger)
}

func parseLine(line string, scale movie.Scale) (movie.Movie, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) < fieldCount {
		return movie.Movie{}, fmt.Errorf("expected %d %q-separated fields, got %d", fieldCount, Delimiter, len(parts))
	}
	tail := parts[len(parts)-4:]
	name := strings.TrimSpace(strings.Join(parts[:len(parts)-4], Delimiter))

	id, err := strconv.Atoi(strings.TrimSpace(tail[0]))
	if err != nil {
		return movie.Movie{}, fmt.Errorf("invalid id %q", tail[0])
	}
	year, err := strconv.Atoi(strings.TrimSpace(tail[1]))
	if err != nil {
		return movie.Movie{}, fmt.Errorf("invalid year %q", tail[1])
	}
	language := strings.TrimSpace(tail[2])
	rating, err := strconv.ParseFloat(strings.TrimSpace(tail[3]), 64)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("invalid rating %q", tail[3])
	}
	return movie.New(name, id, year, language, rating, scale), nil
}

// Format renders m as a seed line such that Parse(Format(m)) yields m again.
// Names and languages holding line breaks or surrounding whitespace, and
// languages holding the delimiter, are rejected with ErrUnencodable.
func Format(m movie.Movie) (string, error) {
	if err := checkField("name", m.Name(), false); err != nil {
		return "", fmt.Errorf("movie %d: %w", m.ID(), err)
	}
	if err := checkField("language", m.Language(), true); err != nil {
		return "", fmt.Errorf("movie %d: %w", m.ID(), err)
	}
	return strings.Join([]string{
		m.Name(),
		strconv.Itoa(m.ID()),
		strconv.Itoa(m.Year()),
		m.Language(),
		strconv.FormatFloat(m.Rating(), 'f', -1, 64),
	}, Delimiter), nil
}

func checkField(field, value string, rejectDelimiter bool) error {
	switch {
	case strings.ContainsAny(value, "\r\n"):
		return fmt.Errorf("%w: %s contains a line break", ErrUnencodable, field)
	case strings.TrimSpace(value) != value:
		return fmt.Errorf("%w: %s has leading or trailing whitespace", ErrUnencodable, field)
	case rejectDelimiter && strings.Contains(value, Delimiter):
		return fmt.Errorf("%w: %s contains %q", ErrUnencodable, field, Delimiter)
	}
	return nil
}
