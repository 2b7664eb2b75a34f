package seed_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"moviedb/internal/movie"
	"moviedb/internal/seed"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestParseSkipsBadLines(t *testing.T) {
	input := strings.Join([]string{
		"Inception|8|2010|English|5",
		"",
		"   ",
		"Missing Fields|1|2000|English",
		"Bad Year|2|twenty|English|4",
		"Bad Rating|3|1999|French|great",
		"La Haine|7|1995|French|4",
	}, "\n")
	logger, buf := captureLogger()

	movies, err := seed.Parse(strings.NewReader(input), movie.FivePoint, logger)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
	if movies[0].Name() != "Inception" || movies[1].Name() != "La Haine" {
		t.Fatalf("unexpected movies: %q, %q", movies[0].Name(), movies[1].Name())
	}
	if got := strings.Count(buf.String(), "seed line skipped"); got != 3 {
		t.Fatalf("expected 3 warnings, got %d\n%s", got, buf.String())
	}
	if !strings.Contains(buf.String(), "line=4") {
		t.Fatalf("warning should carry the line number:\n%s", buf.String())
	}
}

func TestParseNameMayContainDelimiter(t *testing.T) {
	movies, err := seed.Parse(strings.NewReader("Face|Off|42|1997|English|4\n"), movie.FivePoint, nil)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(movies))
	}
	m := movies[0]
	if m.Name() != "Face|Off" || m.ID() != 42 || m.Year() != 1997 {
		t.Fatalf("unexpected movie: %q id=%d year=%d", m.Name(), m.ID(), m.Year())
	}
}

func TestParseClampsValues(t *testing.T) {
	movies, err := seed.Parse(strings.NewReader("Future|-3|3000|English|9\r\n"), movie.FivePoint, nil)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	m := movies[0]
	if m.ID() != 0 || m.Year() != movie.MaxYear || m.Rating() != 5 {
		t.Fatalf("expected clamped values, got id=%d year=%d rating=%v", m.ID(), m.Year(), m.Rating())
	}
	if m.Language() != "English" {
		t.Fatalf("language = %q, want English", m.Language())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestParseReturnsReaderError(t *testing.T) {
	if _, err := seed.Parse(failingReader{}, movie.FivePoint, nil); err == nil {
		t.Fatal("expected reader error")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := seed.ParseFile(t.TempDir()+"/nope.txt", movie.FivePoint, nil); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		movie movie.Movie
	}{
		{name: "fractional ten-point", movie: movie.New("Dune: Part Two", 16, 2024, "English", 7.5, movie.TenPoint)},
		{name: "delimiter in name", movie: movie.New("Face|Off", 21, 1997, "English", 6, movie.TenPoint)},
		{name: "inner tab", movie: movie.New("Tab\tEnd", 22, 2001, "French", 4, movie.TenPoint)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := seed.Format(tt.movie)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			movies, err := seed.Parse(strings.NewReader(line), movie.TenPoint, nil)
			if err != nil || len(movies) != 1 {
				t.Fatalf("Parse(%q) = %v, %v", line, movies, err)
			}
			if movies[0] != tt.movie {
				t.Fatalf("round trip mismatch: %+v vs %+v", movies[0], tt.movie)
			}
		})
	}
}

func TestFormatRejectsLossyFields(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		language string
	}{
		{name: "padded name", title: "  Padded  ", language: "English"},
		{name: "newline in name", title: "Line\nBreak", language: "English"},
		{name: "carriage return in name", title: "Line\rBreak", language: "English"},
		{name: "trailing space after tab", title: "Tab\tEnd ", language: "English"},
		{name: "delimiter in language", title: "Amelie", language: "French|English"},
		{name: "newline in language", title: "Amelie", language: "French\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := movie.New(tt.title, 5, 2001, tt.language, 4, movie.FivePoint)
			line, err := seed.Format(m)
			if !errors.Is(err, seed.ErrUnencodable) {
				t.Fatalf("Format = %q, %v; want ErrUnencodable", line, err)
			}
		})
	}
}

func TestSamples(t *testing.T) {
	five := seed.Samples(movie.FivePoint)
	if len(five) != 20 {
		t.Fatalf("expected 20 samples, got %d", len(five))
	}
	for i, m := range five {
		if m.ID() != i+1 {
			t.Fatalf("sample %d has id %d", i, m.ID())
		}
	}
	if five[6].Name() != "La Haine" || five[6].Rating() != 4 {
		t.Fatalf("unexpected sample 7: %q %v", five[6].Name(), five[6].Rating())
	}

	ten := seed.Samples(movie.TenPoint)
	if ten[0].Rating() != 10 || ten[6].Rating() != 7.75 {
		t.Fatalf("ten-point samples not rescaled: %v, %v", ten[0].Rating(), ten[6].Rating())
	}
	for i := range five {
		if want := five[i].Rescale(movie.TenPoint); ten[i] != want {
			t.Fatalf("sample %d = %+v, want %+v from Rescale", i, ten[i], want)
		}
	}
	if ten[0].Scale() != movie.TenPoint {
		t.Fatalf("sample scale = %v", ten[0].Scale())
	}
}
