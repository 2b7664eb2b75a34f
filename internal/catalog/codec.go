package catalog

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"moviedb/internal/movie"
)

// Binary layout, little-endian:
//
//	int32 count
//	count × { int32 id, uint64 len, name, int32 year, uint64 len, language, float64 rating }
//
// Length prefixes are 64-bit, matching size_t on 64-bit hosts.

// maxFieldBytes bounds a single string field so a corrupt length prefix cannot
// trigger a huge allocation.
const maxFieldBytes = 1 << 20

var byteOrder = binary.LittleEndian

// Save writes the catalog to w in the binary layout.
func (c *Catalog) Save(w io.Writer) error {
	movies := c.All()
	if len(movies) > math.MaxInt32 {
		return fmt.Errorf("save catalog: %d movies exceed format limit", len(movies))
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, byteOrder, int32(len(movies))); err != nil {
		return fmt.Errorf("write count: %w", err)
	}
	for _, m := range movies {
		if err := writeMovie(bw, m); err != nil {
			return fmt.Errorf("write movie %d: %w", m.ID(), err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush catalog: %w", err)
	}
	return nil
}

// Load replaces the catalog contents with the movies decoded from r. On any
// decode failure the catalog is left untouched and the error wraps ErrCorrupt.
func (c *Catalog) Load(r io.Reader) error {
	br := bufio.NewReader(r)

	var count int32
	if err := binary.Read(br, byteOrder, &count); err != nil {
		return fmt.Errorf("%w: read count: %v", ErrCorrupt, err)
	}
	if count < 0 || int(count) > c.capacity {
		return fmt.Errorf("%w: declared count %d outside [0, %d]", ErrCorrupt, count, c.capacity)
	}

	movies := make([]movie.Movie, 0, count)
	for i := int32(0); i < count; i++ {
		m, err := readMovie(br, c.scale)
		if err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrCorrupt, i, err)
		}
		movies = append(movies, m)
	}

	c.mu.Lock()
	c.movies = movies
	c.mu.Unlock()
	return nil
}

func writeMovie(w io.Writer, m movie.Movie) error {
	if m.ID() > math.MaxInt32 || m.Year() > math.MaxInt32 {
		return errors.New("value exceeds int32 field")
	}
	if err := binary.Write(w, byteOrder, int32(m.ID())); err != nil {
		return err
	}
	if err := writeString(w, m.Name()); err != nil {
		return err
	}
	if err := binary.Write(w, byteOrder, int32(m.Year())); err != nil {
		return err
	}
	if err := writeString(w, m.Language()); err != nil {
		return err
	}
	return binary.Write(w, byteOrder, m.Rating())
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, byteOrder, uint64(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readMovie(r io.Reader, scale movie.Scale) (movie.Movie, error) {
	var (
		id, year int32
		rating   float64
	)
	if err := binary.Read(r, byteOrder, &id); err != nil {
		return movie.Movie{}, fmt.Errorf("id: %w", err)
	}
	name, err := readString(r)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("name: %w", err)
	}
	if err := binary.Read(r, byteOrder, &year); err != nil {
		return movie.Movie{}, fmt.Errorf("year: %w", err)
	}
	language, err := readString(r)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("language: %w", err)
	}
	if err := binary.Read(r, byteOrder, &rating); err != nil {
		return movie.Movie{}, fmt.Errorf("rating: %w", err)
	}
	return movie.New(name, int(id), int(year), language, rating, scale), nil
}

func readString(r io.Reader) (string, error) {
	var length uint64
	if err := binary.Read(r, byteOrder, &length); err != nil {
		return "", err
	}
	if length > maxFieldBytes {
		return "", fmt.Errorf("length %d exceeds %d bytes", length, maxFieldBytes)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
