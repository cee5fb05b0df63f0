package config

import (
	"errors"
	"fmt"

	"emisora/internal/textutil"
	"emisora/internal/vocab"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateMatcher(); err != nil {
		return err
	}
	if err := c.validateProvider(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Format {
	case "", "json", "sqlite":
		return nil
	default:
		return fmt.Errorf("catalog.format must be json or sqlite, got %q", c.Catalog.Format)
	}
}

func (c *Config) validateMatcher() error {
	m := c.Matcher
	if !vocab.Supported(m.Language) {
		return fmt.Errorf("matcher.language %q has no vocabulary (supported: %v)", m.Language, vocab.Languages())
	}
	if _, err := textutil.ParseStrategy(m.Strategy); err != nil {
		return fmt.Errorf("matcher.strategy: %w", err)
	}
	if err := ensureRange("matcher.min_confidence", m.MinConfidence, 0, 100); err != nil {
		return err
	}
	if err := ensureRange("matcher.max_confidence", m.MaxConfidence, m.MinConfidence, 100); err != nil {
		return err
	}
	return ensureNonNegativeMap(map[string]int{
		"matcher.radio_intent_bonus":   m.RadioIntentBonus,
		"matcher.other_intent_penalty": m.OtherIntentPenalty,
		"matcher.radio_keyword_bonus":  m.RadioKeywordBonus,
		"matcher.provider_bonus":       m.ProviderBonus,
	})
}

func (c *Config) validateProvider() error {
	if c.Provider.SkillID == "" {
		return errors.New("provider.skill_id must be set")
	}
	if c.Provider.Artist == "" {
		return errors.New("provider.artist must be set")
	}
	if err := ensureRange("provider.playlist_confidence", c.Provider.PlaylistConfidence, 0, 100); err != nil {
		return err
	}
	return ensureRange("provider.entry_confidence", c.Provider.EntryConfidence, 0, 100)
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
}

func ensureRange(key string, value, lo, hi int) error {
	if value < lo || value > hi {
		return fmt.Errorf("%s must be between %d and %d", key, lo, hi)
	}
	return nil
}

func ensureNonNegativeMap(values map[string]int) error {
	for key, value := range values {
		if value < 0 {
			return fmt.Errorf("%s must be >= 0", key)
		}
	}
	return nil
}
