package matcher

import (
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"

	"emisora/internal/catalog"
	"emisora/internal/logging"
	"emisora/internal/media"
	"emisora/internal/textutil"
	"emisora/internal/vocab"
)

// Matcher scores catalog stations against user phrases.
type Matcher struct {
	catalog  *catalog.Catalog
	playable []catalog.Station
	vocab    *vocab.Vocabulary
	opts     Options
	logger   *slog.Logger
}

// New builds a matcher over an already-loaded catalog.
func New(cat *catalog.Catalog, voc *vocab.Vocabulary, opts Options, logger *slog.Logger) (*Matcher, error) {
	if cat == nil {
		return nil, errors.New("matcher: catalog is nil")
	}
	if voc == nil {
		return nil, errors.New("matcher: vocabulary is nil")
	}
	if opts.MaxConfidence <= 0 {
		opts.MaxConfidence = 100
	}
	if opts.Strategy == "" {
		opts.Strategy = textutil.DefaultStrategy
	}
	opts.ProviderKeywords = slices.Clone(opts.ProviderKeywords)
	return &Matcher{
		catalog:  cat,
		playable: cat.Playable(),
		vocab:    voc,
		opts:     opts,
		logger:   logging.NewComponentLogger(logger, "matcher"),
	}, nil
}

// Catalog returns the catalog the matcher was built with.
func (m *Matcher) Catalog() *catalog.Catalog {
	return m.catalog
}

// Options returns a copy of the matcher options.
func (m *Matcher) Options() Options {
	opts := m.opts
	opts.ProviderKeywords = slices.Clone(m.opts.ProviderKeywords)
	return opts
}

// Search returns the playable stations whose score reaches the minimum
// confidence, best first. Equal confidences keep catalog order. The result is
// never nil.
func (m *Matcher) Search(phrase string, intent media.Type) []media.Entry {
	base, remaining, signals := m.baseScore(phrase, intent)
	needle := strings.ToLower(remaining)

	results := make([]media.Entry, 0)
	for _, st := range m.playable {
		score := Score(base, textutil.Similarity(m.opts.Strategy, strings.ToLower(st.Name), needle))
		if score < m.opts.MinConfidence {
			continue
		}
		results = append(results, m.opts.Source.LiveRadio(st.StreamURL, st.Name, st.ImageURL, min(m.opts.MaxConfidence, score)))
	}
	slices.SortStableFunc(results, func(a, b media.Entry) int {
		return b.Confidence - a.Confidence
	})

	result := "matched"
	if len(results) == 0 {
		result = "no_match"
	}
	attrs := logging.DecisionAttrs("station_search", result, strings.Join(signals, ","))
	attrs = append(attrs,
		logging.String("phrase", phrase),
		logging.String("intent", intent.String()),
		logging.Int("base_score", base),
		logging.String("remaining_phrase", remaining),
		logging.String("strategy", string(m.opts.Strategy)),
		logging.Int("candidates", len(m.playable)),
		logging.Int("results", len(results)),
	)
	m.logger.Debug("station search scored", logging.Args(attrs...)...)
	return results
}

// Score combines a base score with a similarity in [0,1], rounding half to
// even.
func Score(base int, similarity float64) int {
	// The explicit conversion keeps the multiply and add from being fused.
	scaled := float64(similarity * 100)
	return int(math.RoundToEven(float64(base) + scaled))
}

// baseScore applies the intent signals and returns the phrase left for
// similarity scoring along with the names of the signals that fired.
func (m *Matcher) baseScore(phrase string, intent media.Type) (int, string, []string) {
	base := -m.opts.OtherIntentPenalty
	signals := []string{"other_intent"}
	if intent == media.TypeRadio {
		base = m.opts.RadioIntentBonus
		signals[0] = "radio_intent"
	}
	if m.vocab.Match(phrase, vocab.Radio, false) {
		base += m.opts.RadioKeywordBonus
		signals = append(signals, "radio_keyword")
	}
	if m.vocab.Match(phrase, vocab.Provider, false) {
		base += m.opts.ProviderBonus
		signals = append(signals, "provider_mention")
		phrase = m.vocab.Remove(phrase, vocab.Provider)
	}
	return base, phrase, signals
}

// Featured returns every playable station, unscored, as the provider's
// browse-all playlist.
func (m *Matcher) Featured() media.Playlist {
	entries := make([]media.Entry, 0, len(m.playable))
	for _, st := range m.playable {
		entries = append(entries, m.opts.Source.LiveRadio(st.StreamURL, st.Name, st.ImageURL, m.opts.EntryConfidence))
	}
	return m.opts.Source.RadioPlaylist(m.opts.PlaylistTitle, m.opts.PlaylistImage, m.opts.PlaylistConfidence, entries)
}

// MatchesProviderIntent reports whether phrase names the provider. With
// requireExact set, the whole phrase must be one provider phrase.
func (m *Matcher) MatchesProviderIntent(phrase string, requireExact bool) bool {
	return m.vocab.Match(phrase, vocab.Provider, requireExact)
}
