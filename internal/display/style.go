package display

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"moviedb/internal/config"
)

// Table style names.
const (
	TableRounded = "rounded"
	TableLight   = "light"
	TableDouble  = "double"
	TableASCII   = "ascii"
)

// Glyph set names.
const (
	GlyphsUnicode = "unicode"
	GlyphsASCII   = "ascii"
)

// Style selects how movies are drawn.
type Style struct {
	Table  string
	Glyphs string
	Color  bool
}

// DefaultStyle is a rounded table with unicode stars and no color.
func DefaultStyle() Style {
	return Style{Table: TableRounded, Glyphs: GlyphsUnicode}
}

// FromConfig builds a Style from the [display] section. Color "auto" enables
// color only when terminal is true.
func FromConfig(cfg config.Display, terminal bool) Style {
	style := Style{
		Table:  strings.ToLower(strings.TrimSpace(cfg.Style)),
		Glyphs: strings.ToLower(strings.TrimSpace(cfg.Glyphs)),
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Color)) {
	case "always":
		style.Color = true
	case "never":
		style.Color = false
	default:
		style.Color = terminal
	}
	return style
}

func (s Style) glyphs() (filled, empty string) {
	if s.Glyphs == GlyphsASCII {
		return "*", "."
	}
	return "★", "☆"
}

func (s Style) tableStyle() table.Style {
	var st table.Style
	switch s.Table {
	case TableLight:
		st = table.StyleLight
	case TableDouble:
		st = table.StyleDouble
	case TableASCII:
		st = table.StyleDefault
	default:
		st = table.StyleRounded
	}
	if s.Color {
		st.Color.Header = text.Colors{text.Bold, text.FgHiCyan}
		st.Color.Footer = text.Colors{text.Bold}
		st.Title.Colors = text.Colors{text.Bold, text.FgHiWhite}
	}
	return st
}

func (s Style) paint(value string, colors ...text.Color) string {
	if !s.Color || value == "" {
		return value
	}
	return text.Colors(colors).Sprint(value)
}
