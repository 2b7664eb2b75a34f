package textutil

import (
	"math"
	"testing"
)

func TestEqualFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"French", "french", true},
		{"French", "FRENCH", true},
		{"French", "French", true},
		{"Français", "FRANÇAIS", true},
		{"French", "Frenchy", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := EqualFold(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Inception", "incep") {
		t.Fatal("expected incep to match Inception")
	}
	if !ContainsFold("Amélie (Le Fabuleux Destin d'Amélie Poulain)", "AMÉLIE") {
		t.Fatal("expected accented match")
	}
	if ContainsFold("Inception", "interstellar") {
		t.Fatal("unexpected match")
	}
	if !ContainsFold("anything", "") {
		t.Fatal("empty substring should match")
	}
}

func TestTokenizeDropsSingleRunes(t *testing.T) {
	got := Tokenize("Dune: Part Two (A Film)")
	want := []string{"dune", "part", "two", "film"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokenize() = %v, want %v", got, want)
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	if got := CosineSimilarity(nil, NewFingerprint("hello world")); got != 0 {
		t.Fatalf("nil fingerprint similarity = %v, want 0", got)
	}
	a := NewFingerprint("The Dark Knight")
	b := NewFingerprint("the dark knight")
	if got := CosineSimilarity(a, b); math.Abs(got-1) > 1e-9 {
		t.Fatalf("identical titles similarity = %v, want 1", got)
	}
	c := NewFingerprint("Spirited Away")
	if got := CosineSimilarity(a, c); got != 0 {
		t.Fatalf("disjoint titles similarity = %v, want 0", got)
	}
}

func TestPrefixSimilarity(t *testing.T) {
	if got := PrefixSimilarity("incep", "Inception"); got != 1 {
		t.Fatalf("PrefixSimilarity = %v, want 1", got)
	}
	if got := PrefixSimilarity("dark night", "The Dark Knight"); got != 0.5 {
		t.Fatalf("PrefixSimilarity = %v, want 0.5", got)
	}
	if got := PrefixSimilarity("", "The Dark Knight"); got != 0 {
		t.Fatalf("PrefixSimilarity empty = %v, want 0", got)
	}
}
