package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"emisora/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("EMISORA_CATALOG", "")
	t.Setenv("EMISORA_LOG_LEVEL", "")
	t.Setenv("EMISORA_LANGUAGE", "")
}

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	clearEnv(t)
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "emisora", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Catalog.Path != "" {
		t.Fatalf("expected embedded catalog by default, got %q", cfg.Catalog.Path)
	}
	if cfg.Matcher.MinConfidence != 60 || cfg.Matcher.MaxConfidence != 100 {
		t.Fatalf("unexpected confidence bounds: %+v", cfg.Matcher)
	}
	if cfg.Matcher.RadioIntentBonus != 20 || cfg.Matcher.OtherIntentPenalty != 30 {
		t.Fatalf("unexpected intent weights: %+v", cfg.Matcher)
	}
	if cfg.Matcher.RadioKeywordBonus != 10 || cfg.Matcher.ProviderBonus != 30 {
		t.Fatalf("unexpected keyword weights: %+v", cfg.Matcher)
	}
	if cfg.Matcher.Language != "en" || cfg.Matcher.Strategy != "damerau_levenshtein" {
		t.Fatalf("unexpected matcher defaults: %+v", cfg.Matcher)
	}
	if cfg.Provider.PlaylistTitle != "Radios de España (All stations)" {
		t.Fatalf("unexpected playlist title: %q", cfg.Provider.PlaylistTitle)
	}
	if cfg.Provider.PlaylistConfidence != 100 || cfg.Provider.EntryConfidence != 90 {
		t.Fatalf("unexpected provider confidences: %+v", cfg.Provider)
	}
	if len(cfg.Provider.Keywords) != 3 || cfg.Provider.Keywords[0] != "Radio españa" {
		t.Fatalf("unexpected provider keywords: %v", cfg.Provider.Keywords)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomConfigExpandsPaths(t *testing.T) {
	clearEnv(t)
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
[catalog]
path = "~/stations.db"
format = "SQLite"

[matcher]
language = "es-ES"
strategy = "token-cosine"
min_confidence = 50

[logging]
format = "json"
level = "DEBUG"
file = "~/logs/emisora.log"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected config at %q, got %q (exists=%v)", configPath, resolved, exists)
	}
	if cfg.Catalog.Path != filepath.Join(tempHome, "stations.db") {
		t.Fatalf("unexpected catalog path: %q", cfg.Catalog.Path)
	}
	if cfg.Catalog.Format != "sqlite" {
		t.Fatalf("expected lowercased format, got %q", cfg.Catalog.Format)
	}
	if cfg.Matcher.Strategy != "token_cosine" {
		t.Fatalf("expected canonical strategy, got %q", cfg.Matcher.Strategy)
	}
	if cfg.Matcher.MinConfidence != 50 {
		t.Fatalf("expected min_confidence override, got %d", cfg.Matcher.MinConfidence)
	}
	if cfg.Matcher.ProviderBonus != 30 {
		t.Fatalf("expected untouched keys to keep defaults, got %d", cfg.Matcher.ProviderBonus)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.Logging.File != filepath.Join(tempHome, "logs", "emisora.log") {
		t.Fatalf("unexpected log file: %q", cfg.Logging.File)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	catalogPath := filepath.Join(tempHome, "radios.json")
	t.Setenv("EMISORA_CATALOG", catalogPath)
	t.Setenv("EMISORA_LOG_LEVEL", "warn")
	t.Setenv("EMISORA_LANGUAGE", "pt")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog.Path != catalogPath {
		t.Fatalf("expected catalog from env, got %q", cfg.Catalog.Path)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected level from env, got %q", cfg.Logging.Level)
	}
	if cfg.Matcher.Language != "pt" {
		t.Fatalf("expected language from env, got %q", cfg.Matcher.Language)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[matcher]\nthreshold = 10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults"},
		{
			name:    "unsupported language",
			mutate:  func(c *config.Config) { c.Matcher.Language = "de" },
			wantErr: "matcher.language",
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *config.Config) { c.Matcher.Strategy = "soundex" },
			wantErr: "matcher.strategy",
		},
		{
			name:    "min confidence above 100",
			mutate:  func(c *config.Config) { c.Matcher.MinConfidence = 101 },
			wantErr: "matcher.min_confidence",
		},
		{
			name:    "max below min",
			mutate:  func(c *config.Config) { c.Matcher.MaxConfidence = 40 },
			wantErr: "matcher.max_confidence",
		},
		{
			name:    "negative bonus",
			mutate:  func(c *config.Config) { c.Matcher.ProviderBonus = -1 },
			wantErr: "matcher.provider_bonus",
		},
		{
			name:    "missing skill id",
			mutate:  func(c *config.Config) { c.Provider.SkillID = "" },
			wantErr: "provider.skill_id",
		},
		{
			name:    "entry confidence out of range",
			mutate:  func(c *config.Config) { c.Provider.EntryConfidence = 120 },
			wantErr: "provider.entry_confidence",
		},
		{
			name:    "catalog format",
			mutate:  func(c *config.Config) { c.Catalog.Format = "csv" },
			wantErr: "catalog.format",
		},
		{
			name:    "log level",
			mutate:  func(c *config.Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	if decoded.Provider.Artist != config.Default().Provider.Artist {
		t.Fatalf("sample artist %q differs from default", decoded.Provider.Artist)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Matcher != config.Default().Matcher {
		t.Fatalf("sample matcher section differs from defaults: %+v", cfg.Matcher)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/catalog.json")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "catalog.json") {
		t.Fatalf("unexpected expansion: %q", got)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
}
