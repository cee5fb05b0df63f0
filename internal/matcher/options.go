package matcher

import (
	"errors"
	"fmt"
	"slices"

	"emisora/internal/config"
	"emisora/internal/media"
	"emisora/internal/textutil"
)

// Options holds the scoring weights and the attribution stamped on results.
type Options struct {
	Strategy           textutil.Strategy
	MinConfidence      int
	MaxConfidence      int
	RadioIntentBonus   int
	OtherIntentPenalty int
	RadioKeywordBonus  int
	ProviderBonus      int

	Source             media.Source
	PlaylistTitle      string
	PlaylistImage      string
	PlaylistConfidence int
	EntryConfidence    int
	ProviderKeywords   []string
}

// DefaultOptions mirrors the repository configuration defaults.
func DefaultOptions() Options {
	cfg := config.Default()
	opts, err := OptionsFromConfig(&cfg)
	if err != nil {
		panic(fmt.Sprintf("matcher: default configuration is invalid: %v", err))
	}
	return opts
}

// OptionsFromConfig converts the [matcher] and [provider] sections.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	if cfg == nil {
		return Options{}, errors.New("matcher: config is nil")
	}
	strategy, err := textutil.ParseStrategy(cfg.Matcher.Strategy)
	if err != nil {
		return Options{}, fmt.Errorf("matcher.strategy: %w", err)
	}
	return Options{
		Strategy:           strategy,
		MinConfidence:      cfg.Matcher.MinConfidence,
		MaxConfidence:      cfg.Matcher.MaxConfidence,
		RadioIntentBonus:   cfg.Matcher.RadioIntentBonus,
		OtherIntentPenalty: cfg.Matcher.OtherIntentPenalty,
		RadioKeywordBonus:  cfg.Matcher.RadioKeywordBonus,
		ProviderBonus:      cfg.Matcher.ProviderBonus,
		Source: media.Source{
			Artist:    cfg.Provider.Artist,
			SkillID:   cfg.Provider.SkillID,
			SkillIcon: cfg.Provider.SkillIcon,
		},
		PlaylistTitle:      cfg.Provider.PlaylistTitle,
		PlaylistImage:      cfg.Provider.Image,
		PlaylistConfidence: cfg.Provider.PlaylistConfidence,
		EntryConfidence:    cfg.Provider.EntryConfidence,
		ProviderKeywords:   slices.Clone(cfg.Provider.Keywords),
	}, nil
}
