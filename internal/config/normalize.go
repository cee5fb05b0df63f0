package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeMatcher()
	c.normalizeProvider()
	return c.normalizeLogging()
}

func (c *Config) normalizeCatalog() error {
	if value, ok := os.LookupEnv("EMISORA_CATALOG"); ok && strings.TrimSpace(value) != "" {
		c.Catalog.Path = value
	}
	c.Catalog.Path = strings.TrimSpace(c.Catalog.Path)
	var err error
	if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	c.Catalog.Format = strings.ToLower(strings.TrimSpace(c.Catalog.Format))
	if c.Catalog.Format == "auto" {
		c.Catalog.Format = ""
	}
	return nil
}

func (c *Config) normalizeMatcher() {
	if value, ok := os.LookupEnv("EMISORA_LANGUAGE"); ok && strings.TrimSpace(value) != "" {
		c.Matcher.Language = value
	}
	c.Matcher.Language = strings.TrimSpace(c.Matcher.Language)
	if c.Matcher.Language == "" {
		c.Matcher.Language = defaultLanguage
	}
	c.Matcher.Strategy = strings.ToLower(strings.TrimSpace(c.Matcher.Strategy))
	c.Matcher.Strategy = strings.ReplaceAll(c.Matcher.Strategy, "-", "_")
	if c.Matcher.Strategy == "" {
		c.Matcher.Strategy = defaultStrategy
	}
}

func (c *Config) normalizeProvider() {
	keywords := make([]string, 0, len(c.Provider.Keywords))
	for _, keyword := range c.Provider.Keywords {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	c.Provider.Keywords = keywords
	c.Provider.Artist = strings.TrimSpace(c.Provider.Artist)
	c.Provider.PlaylistTitle = strings.TrimSpace(c.Provider.PlaylistTitle)
	if c.Provider.PlaylistTitle == "" && c.Provider.Artist != "" {
		c.Provider.PlaylistTitle = c.Provider.Artist + " (All stations)"
	}
	c.Provider.Image = strings.TrimSpace(c.Provider.Image)
	c.Provider.SkillID = strings.TrimSpace(c.Provider.SkillID)
	c.Provider.SkillIcon = strings.TrimSpace(c.Provider.SkillIcon)
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("EMISORA_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
