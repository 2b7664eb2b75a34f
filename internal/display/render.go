package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"moviedb/internal/catalog"
	"moviedb/internal/movie"
)

// Headers are the fixed movie columns.
var Headers = []string{"ID", "Name", "Year", "Language", "Rating"}

// EmptyMessage is shown in place of rows when nothing matched.
const EmptyMessage = "No movies found"

// RatingBar draws floor(rating) filled glyphs, pads with empty glyphs up to
// the scale maximum, and appends the numeric rating, e.g. "★★★★☆ (4/5)".
func RatingBar(rating float64, scale movie.Scale, style Style) string {
	steps := scale.Steps()
	filled := int(math.Floor(rating))
	filled = max(0, min(filled, steps))
	full, empty := style.glyphs()

	bar := style.paint(strings.Repeat(full, filled), text.FgYellow) +
		style.paint(strings.Repeat(empty, steps-filled), text.FgHiBlack)
	return fmt.Sprintf("%s (%s/%s)", bar, scale.Format(rating), scale.Format(scale.Max))
}

// Row renders m as the fixed columns in Headers order.
func Row(m movie.Movie, style Style) []string {
	return []string{
		strconv.Itoa(m.ID()),
		m.Name(),
		strconv.Itoa(m.Year()),
		m.Language(),
		RatingBar(m.Rating(), m.Scale(), style),
	}
}

// Table renders movies under title with a total footer. An empty slice
// renders a single EmptyMessage row.
func Table(title string, movies []movie.Movie, style Style) string {
	tw := table.NewWriter()
	tw.SetStyle(style.tableStyle())
	if title != "" {
		tw.SetTitle(title)
	}

	header := make(table.Row, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	if len(movies) == 0 {
		tw.AppendRow(table.Row{"", EmptyMessage, "", "", ""})
	}
	for _, m := range movies {
		cells := Row(m, style)
		row := make(table.Row, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		tw.AppendRow(row)
	}
	tw.AppendFooter(table.Row{"", "Total", "", "", len(movies)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, WidthMax: 50},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// Detail renders a single movie as a two-column field/value table.
func Detail(m movie.Movie, style Style) string {
	tw := table.NewWriter()
	tw.SetStyle(style.tableStyle())
	cells := Row(m, style)
	for i, h := range Headers {
		tw.AppendRow(table.Row{h, cells[i]})
	}
	tw.AppendRow(table.Row{"Scale", m.Scale().String()})
	return tw.Render()
}

// StatsTable renders catalog statistics.
func StatsTable(stats catalog.Stats, scale movie.Scale, style Style) string {
	tw := table.NewWriter()
	tw.SetStyle(style.tableStyle())
	tw.SetTitle("Catalog")
	tw.AppendRow(table.Row{"Movies", fmt.Sprintf("%d / %d", stats.Count, stats.Capacity)})
	if stats.Count > 0 {
		tw.AppendRow(table.Row{"Languages", strings.Join(stats.Languages, ", ")})
		tw.AppendRow(table.Row{"Years", fmt.Sprintf("%d-%d", stats.EarliestYear, stats.LatestYear)})
		tw.AppendRow(table.Row{"Mean rating", fmt.Sprintf("%.2f / %s", stats.MeanRating, scale.Format(scale.Max))})
	}
	tw.AppendRow(table.Row{"Scale", scale.String()})
	return tw.Render()
}
