package movie

import "moviedb/internal/textutil"

const (
	// MinYear is the year of the first motion picture.
	MinYear = 1888
	// MaxYear bounds announced future releases.
	MaxYear = 2030
)

// Movie is one catalog entry. Fields are unexported so every mutation goes
// through the validating setters.
type Movie struct {
	id       int
	name     string
	year     int
	language string
	rating   float64
	scale    Scale
}

// New builds a Movie, clamping id, year and rating into range.
func New(name string, id, year int, language string, rating float64, scale Scale) Movie {
	return Movie{
		id:       clampID(id),
		name:     name,
		year:     ClampYear(year),
		language: language,
		rating:   scale.Clamp(rating),
		scale:    scale,
	}
}

func (m Movie) ID() int          { return m.id }
func (m Movie) Name() string     { return m.name }
func (m Movie) Year() int        { return m.year }
func (m Movie) Language() string { return m.language }
func (m Movie) Rating() float64  { return m.rating }
func (m Movie) Scale() Scale     { return m.scale }

// SetName replaces the title.
func (m *Movie) SetName(name string) { m.name = name }

// SetLanguage replaces the language.
func (m *Movie) SetLanguage(language string) { m.language = language }

// SetID replaces the id, clamping negatives to zero.
func (m *Movie) SetID(id int) { m.id = clampID(id) }

// SetYear replaces the year, clamping into [MinYear, MaxYear].
func (m *Movie) SetYear(year int) { m.year = ClampYear(year) }

// SetRating stores value when it lies on the scale and reports whether it did.
// Out-of-range values leave the rating unchanged.
func (m *Movie) SetRating(value float64) bool {
	if !m.scale.Contains(value) {
		return false
	}
	m.rating = value
	return true
}

// MatchesLanguage reports whether the movie's language equals lang, ignoring case.
func (m Movie) MatchesLanguage(lang string) bool {
	return textutil.EqualFold(m.language, lang)
}

// Rescale returns a copy of m with its rating moved onto scale.
func (m Movie) Rescale(scale Scale) Movie {
	if m.scale == scale {
		return m
	}
	out := m
	out.rating = scale.Convert(m.rating, m.scale)
	out.scale = scale
	return out
}

// ClampYear forces year into [MinYear, MaxYear].
func ClampYear(year int) int {
	switch {
	case year < MinYear:
		return MinYear
	case year > MaxYear:
		return MaxYear
	default:
		return year
	}
}

func clampID(id int) int {
	if id < 0 {
		return 0
	}
	return id
}
