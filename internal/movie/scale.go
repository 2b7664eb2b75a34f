package movie

import (
	"fmt"
	"math"
	"strings"
)

// Scale describes the valid rating range and how ratings are displayed.
type Scale struct {
	Name     string
	Min      float64
	Max      float64
	Integral bool
}

var (
	// FivePoint is the whole-star 1..5 scale.
	FivePoint = Scale{Name: "five", Min: 1, Max: 5, Integral: true}
	// TenPoint is the continuous 1.0..10.0 scale.
	TenPoint = Scale{Name: "ten", Min: 1, Max: 10}
)

// ScaleNames lists the accepted values for ParseScale.
var ScaleNames = []string{FivePoint.Name, TenPoint.Name}

// ParseScale resolves a scale by name ("five"/"5" or "ten"/"10").
func ParseScale(name string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "five", "5", "":
		return FivePoint, nil
	case "ten", "10":
		return TenPoint, nil
	default:
		return Scale{}, fmt.Errorf("unknown rating scale %q (want one of %s)", name, strings.Join(ScaleNames, ", "))
	}
}

// Contains reports whether value is an acceptable stored rating.
func (s Scale) Contains(value float64) bool {
	if math.IsNaN(value) || value < s.Min || value > s.Max {
		return false
	}
	if s.Integral && value != math.Trunc(value) {
		return false
	}
	return true
}

// Clamp forces value into the scale. NaN maps to the minimum.
func (s Scale) Clamp(value float64) float64 {
	if math.IsNaN(value) {
		return s.Min
	}
	if s.Integral {
		value = math.Round(value)
	}
	return math.Min(math.Max(value, s.Min), s.Max)
}

// Steps is the number of glyphs used to draw a full rating bar.
func (s Scale) Steps() int {
	return int(math.Ceil(s.Max))
}

// Format renders a rating without trailing zeros ("4", "7.5").
func (s Scale) Format(value float64) string {
	if s.Integral || value == math.Trunc(value) {
		return fmt.Sprintf("%d", int(value))
	}
	return fmt.Sprintf("%.1f", value)
}

// Convert maps a rating on from onto s, preserving its relative position.
func (s Scale) Convert(value float64, from Scale) float64 {
	if from == s {
		return value
	}
	span := from.Max - from.Min
	if span <= 0 {
		return s.Min
	}
	ratio := (value - from.Min) / span
	return s.Clamp(s.Min + ratio*(s.Max-s.Min))
}

func (s Scale) String() string {
	return fmt.Sprintf("%s (%s-%s)", s.Name, s.Format(s.Min), s.Format(s.Max))
}
