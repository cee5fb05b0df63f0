package vocab

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Vocabulary is the compiled, read-only vocabulary set for one language.
// It is safe for concurrent use.
type Vocabulary struct {
	lang    string
	phrases map[Name][]string
	tokens  map[Name][][]string
}

// Languages returns the supported base language codes, sorted.
func Languages() []string {
	langs := make([]string, 0, len(tables))
	for lang := range tables {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// BaseLanguage reduces a BCP 47 tag such as "es-ES" to its base code ("es").
func BaseLanguage(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return DefaultLanguage, nil
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", tag, err)
	}
	base, _ := parsed.Base()
	return base.String(), nil
}

// Supported reports whether a vocabulary exists for the given language tag.
func Supported(tag string) bool {
	base, err := BaseLanguage(tag)
	if err != nil {
		return false
	}
	_, ok := tables[base]
	return ok
}

// New compiles the vocabulary for the given language tag.
func New(tag string) (*Vocabulary, error) {
	base, err := BaseLanguage(tag)
	if err != nil {
		return nil, err
	}
	table, ok := tables[base]
	if !ok {
		return nil, fmt.Errorf("no vocabulary for language %q (supported: %s)", tag, strings.Join(Languages(), ", "))
	}
	v := &Vocabulary{
		lang:    base,
		phrases: make(map[Name][]string, len(table)),
		tokens:  make(map[Name][][]string, len(table)),
	}
	for name, phrases := range table {
		v.phrases[name] = slices.Clone(phrases)
		compiled := make([][]string, 0, len(phrases))
		for _, phrase := range phrases {
			if toks := Tokens(phrase); len(toks) > 0 {
				compiled = append(compiled, toks)
			}
		}
		// Longest phrases first so removal strips "spanish radio stations"
		// before the shorter "spanish radio" can leave "stations" behind.
		sort.SliceStable(compiled, func(i, j int) bool {
			return len(compiled[i]) > len(compiled[j])
		})
		v.tokens[name] = compiled
	}
	return v, nil
}

// Language returns the base language code of the vocabulary.
func (v *Vocabulary) Language() string {
	return v.lang
}

// Phrases returns the literal phrases of the named vocabulary.
func (v *Vocabulary) Phrases(name Name) []string {
	return slices.Clone(v.phrases[name])
}

// Match reports whether phrase contains any phrase of the named vocabulary.
// With exact set, the whole phrase must equal one vocabulary phrase.
func (v *Vocabulary) Match(phrase string, name Name, exact bool) bool {
	toks := Tokens(phrase)
	if len(toks) == 0 {
		return false
	}
	for _, candidate := range v.tokens[name] {
		if exact {
			if slices.Equal(toks, candidate) {
				return true
			}
			continue
		}
		if indexRun(toks, candidate, 0) >= 0 {
			return true
		}
	}
	return false
}

// Remove deletes every occurrence of the named vocabulary from phrase and
// returns the remaining words joined by single spaces. Remaining words keep
// their original spelling.
func (v *Vocabulary) Remove(phrase string, name Name) string {
	ws := words(phrase)
	if len(ws) == 0 {
		return ""
	}
	normalized := make([]string, len(ws))
	for i, w := range ws {
		normalized[i] = Normalize(w)
	}
	drop := make([]bool, len(ws))
	for _, candidate := range v.tokens[name] {
		for start := 0; ; {
			idx := indexRunMasked(normalized, drop, candidate, start)
			if idx < 0 {
				break
			}
			for i := idx; i < idx+len(candidate); i++ {
				drop[i] = true
			}
			start = idx + len(candidate)
		}
	}
	kept := make([]string, 0, len(ws))
	for i, w := range ws {
		if !drop[i] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// Normalize strips diacritics, folds case, and collapses separators so that
// "Radio ESPAÑA!" and "radio espana" compare equal.
func Normalize(s string) string {
	return strings.Join(Tokens(s), " ")
}

// Tokens returns the normalized tokens of s.
func Tokens(s string) []string {
	ws := words(s)
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		if folded := fold(w); folded != "" {
			out = append(out, folded)
		}
	}
	return out
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
	})
}

// fold builds fresh transformers per call; transform chains and casers carry
// state and must not be shared between goroutines.
func fold(word string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripper, word)
	if err != nil {
		stripped = word
	}
	return cases.Fold().String(stripped)
}

func indexRun(haystack, needle []string, start int) int {
	return indexRunMasked(haystack, nil, needle, start)
}

// indexRunMasked finds needle as a contiguous run in haystack at or after
// start, skipping positions already marked in mask.
func indexRunMasked(haystack []string, mask []bool, needle []string, start int) int {
	if len(needle) == 0 {
		return -1
	}
outer:
	for i := start; i+len(needle) <= len(haystack); i++ {
		for j, tok := range needle {
			if mask != nil && mask[i+j] {
				continue outer
			}
			if haystack[i+j] != tok {
				continue outer
			}
		}
		return i
	}
	return -1
}
