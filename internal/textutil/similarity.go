package textutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/hbollon/go-edlib"
)

// Strategy names a similarity algorithm.
type Strategy string

const (
	DamerauLevenshtein Strategy = "damerau_levenshtein"
	Levenshtein        Strategy = "levenshtein"
	TokenCosine        Strategy = "token_cosine"
)

// DefaultStrategy is used when no strategy is configured.
const DefaultStrategy = DamerauLevenshtein

// Strategies lists every supported strategy in display order.
func Strategies() []Strategy {
	return []Strategy{DamerauLevenshtein, Levenshtein, TokenCosine}
}

// ParseStrategy resolves a configured strategy name. Empty input yields the default.
func ParseStrategy(value string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if normalized == "" {
		return DefaultStrategy, nil
	}
	for _, s := range Strategies() {
		if string(s) == normalized {
			return s, nil
		}
	}
	return "", fmt.Errorf("unsupported similarity strategy %q", value)
}

// Similarity scores a and b with the given strategy. The result is in [0,1].
// Unknown strategies fall back to the default.
func Similarity(strategy Strategy, a, b string) float64 {
	switch strategy {
	case Levenshtein:
		return editSimilarity(a, b, levenshtein.ComputeDistance(a, b))
	case TokenCosine:
		return CosineSimilarity(NewFingerprint(a), NewFingerprint(b))
	default:
		return editSimilarity(a, b, edlib.DamerauLevenshteinDistance(a, b))
	}
}

// editSimilarity converts an edit distance into 1 - distance/longest.
func editSimilarity(a, b string, distance int) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	score := 1 - float64(distance)/float64(longest)
	if score < 0 {
		return 0
	}
	return score
}
