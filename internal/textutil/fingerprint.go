package textutil

import (
	"math"
	"strings"
	"unicode"
)

// Fingerprint is a term-frequency vector over the folded tokens of a title.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// NewFingerprint builds a fingerprint from text. Returns nil when the text
// yields no tokens.
func NewFingerprint(text string) *Fingerprint {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{tokens: counts, norm: math.Sqrt(norm)}
}

// Tokenize folds text and splits it on anything that is not a letter or digit.
// Single-rune tokens are dropped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(Fold(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	terms := fields[:0]
	for _, field := range fields {
		if len([]rune(field)) < 2 {
			continue
		}
		terms = append(terms, field)
	}
	return terms
}

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// PrefixSimilarity scores how well a partial query matches a title: the share
// of query tokens that prefix some title token. Used when a user types the
// start of a word ("incep") that full-token cosine would miss.
func PrefixSimilarity(query, title string) float64 {
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return 0
	}
	titleTokens := Tokenize(title)
	if len(titleTokens) == 0 {
		return 0
	}
	var hits int
	for _, q := range queryTokens {
		for _, t := range titleTokens {
			if strings.HasPrefix(t, q) || strings.HasPrefix(q, t) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(queryTokens))
}
