package display_test

import (
	"strings"
	"testing"

	"moviedb/internal/catalog"
	"moviedb/internal/config"
	"moviedb/internal/display"
	"moviedb/internal/movie"
)

func TestRatingBar(t *testing.T) {
	unicode := display.DefaultStyle()
	ascii := display.Style{Table: display.TableASCII, Glyphs: display.GlyphsASCII}

	tests := []struct {
		name   string
		rating float64
		scale  movie.Scale
		style  display.Style
		want   string
	}{
		{name: "five full", rating: 5, scale: movie.FivePoint, style: unicode, want: "★★★★★ (5/5)"},
		{name: "five partial", rating: 3, scale: movie.FivePoint, style: unicode, want: "★★★☆☆ (3/5)"},
		{name: "ascii glyphs", rating: 4, scale: movie.FivePoint, style: ascii, want: "****. (4/5)"},
		{name: "ten floors fraction", rating: 7.5, scale: movie.TenPoint, style: ascii, want: "*******... (7.5/10)"},
		{name: "ten minimum", rating: 1, scale: movie.TenPoint, style: ascii, want: "*......... (1/10)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := display.RatingBar(tt.rating, tt.scale, tt.style); got != tt.want {
				t.Fatalf("RatingBar = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRow(t *testing.T) {
	m := movie.New("La Haine", 7, 1995, "French", 4, movie.FivePoint)
	got := display.Row(m, display.Style{Glyphs: display.GlyphsASCII})
	want := []string{"7", "La Haine", "1995", "French", "****. (4/5)"}
	if len(got) != len(want) {
		t.Fatalf("row has %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTableListsMoviesWithTotal(t *testing.T) {
	movies := []movie.Movie{
		movie.New("Inception", 8, 2010, "English", 5, movie.FivePoint),
		movie.New("Intouchables", 9, 2011, "French", 4, movie.FivePoint),
	}
	out := display.Table("All Movies", movies, display.Style{Table: display.TableASCII, Glyphs: display.GlyphsASCII})

	for _, want := range []string{"All Movies", "Inception", "Intouchables", "2011", "****. (4/5)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(strings.ToUpper(out), "TOTAL") {
		t.Fatalf("table missing total footer:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("uncolored style emitted escape codes:\n%s", out)
	}
}

func TestTableEmpty(t *testing.T) {
	out := display.Table("Search", nil, display.DefaultStyle())
	if !strings.Contains(out, display.EmptyMessage) {
		t.Fatalf("expected empty message:\n%s", out)
	}
}

func TestDetailAndStats(t *testing.T) {
	m := movie.New("Oppenheimer", 19, 2023, "English", 9.5, movie.TenPoint)
	detail := display.Detail(m, display.DefaultStyle())
	for _, want := range []string{"Oppenheimer", "2023", "(9.5/10)", "ten (1-10)"} {
		if !strings.Contains(detail, want) {
			t.Fatalf("detail missing %q:\n%s", want, detail)
		}
	}

	stats := catalog.Stats{Count: 2, Capacity: 20, Languages: []string{"English", "French"}, EarliestYear: 1995, LatestYear: 2010, MeanRating: 4.5}
	out := display.StatsTable(stats, movie.FivePoint, display.DefaultStyle())
	for _, want := range []string{"2 / 20", "English, French", "1995-2010", "4.50 / 5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats missing %q:\n%s", want, out)
		}
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Display{Style: "Double", Glyphs: "ascii", Color: "auto"}
	if got := display.FromConfig(cfg, true); !got.Color || got.Table != display.TableDouble || got.Glyphs != display.GlyphsASCII {
		t.Fatalf("unexpected style for terminal: %+v", got)
	}
	if got := display.FromConfig(cfg, false); got.Color {
		t.Fatal("auto color should be off without a terminal")
	}
	cfg.Color = "always"
	if got := display.FromConfig(cfg, false); !got.Color {
		t.Fatal("always should force color")
	}
	cfg.Color = "never"
	if got := display.FromConfig(cfg, true); got.Color {
		t.Fatal("never should disable color")
	}
}

func TestGridPadsShortRows(t *testing.T) {
	out := display.Grid([]string{"ID", "Movies", "Label"}, [][]string{{"abc123", "3"}}, []int{1}, display.Style{Table: display.TableASCII})
	if !strings.Contains(out, "abc123") || !strings.Contains(out, "3") {
		t.Fatalf("grid missing cells:\n%s", out)
	}
	if got := display.Grid(nil, nil, nil, display.DefaultStyle()); got != "" {
		t.Fatalf("expected empty output without headers, got %q", got)
	}
}
