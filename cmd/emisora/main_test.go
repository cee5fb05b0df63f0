package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"emisora/internal/matcher"
	"emisora/internal/media"
)

func setupCLIEnv(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	for _, key := range []string{"EMISORA_CATALOG", "EMISORA_LOG_LEVEL", "EMISORA_LANGUAGE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	work := filepath.Join(base, "work")
	if err := os.MkdirAll(work, 0o755); err != nil {
		t.Fatalf("mkdir work: %v", err)
	}
	t.Chdir(work)
	return base
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func mustRunCLI(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("emisora %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func dataLines(out string) []string {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	return lines
}

func TestSearchPlainOutput(t *testing.T) {
	setupCLIEnv(t)
	out := mustRunCLI(t, "search", "Catalunya")
	lines := dataLines(out)
	if len(lines) != 10 {
		t.Fatalf("expected header plus 9 rows, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "Confidence\tStation\tStream" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "80\tCatalunya Ràdio\thttps://") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.HasPrefix(lines[9], "60\tCosta Blanca FM\t") {
		t.Fatalf("unexpected last row %q", lines[9])
	}
}

func TestSearchJoinsArgumentsAndHonoursIntent(t *testing.T) {
	setupCLIEnv(t)
	out := mustRunCLI(t, "search", "--intent", "music", "cadena", "ser")
	lines := dataLines(out)
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "70\tCadena SER\t") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	out = mustRunCLI(t, "search", "--intent", "other", "zzzz")
	if strings.TrimSpace(out) != "No matching stations" {
		t.Fatalf("unexpected output for no matches:\n%s", out)
	}
}

func TestSearchJSONIncludesFeaturedPlaylist(t *testing.T) {
	setupCLIEnv(t)
	out := mustRunCLI(t, "search", "--json", "--limit", "3", "spanish", "radio")
	var resp matcher.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode response: %v\n%s", err, out)
	}
	if len(resp.Playlists) != 1 || resp.Playlists[0].Len() != 31 {
		t.Fatalf("expected featured playlist with 31 entries, got %+v", resp.Playlists)
	}
	if len(resp.Entries) != 3 {
		t.Fatalf("expected limit to apply, got %d entries", len(resp.Entries))
	}
	if resp.Entries[0].MediaType != media.TypeRadio || resp.Entries[0].Length != -1 {
		t.Fatalf("unexpected entry %+v", resp.Entries[0])
	}
	if !strings.Contains(out, `"match_confidence": 60`) || !strings.Contains(out, `"playlist": [`) {
		t.Fatalf("expected wire field names in output:\n%s", out)
	}
}

func TestSearchRejectsBadFlags(t *testing.T) {
	setupCLIEnv(t)
	if _, err := runCLI(t, "search", "--intent", "hologram", "x"); err == nil {
		t.Fatal("expected error for unknown intent")
	}
	if _, err := runCLI(t, "search", "--limit", "-1", "x"); err == nil {
		t.Fatal("expected error for negative limit")
	}
	if _, err := runCLI(t, "search"); err == nil {
		t.Fatal("expected error without a phrase")
	}
}

func TestFeaturedJSON(t *testing.T) {
	setupCLIEnv(t)
	out := mustRunCLI(t, "featured", "--json")
	var pl media.Playlist
	if err := json.Unmarshal([]byte(out), &pl); err != nil {
		t.Fatalf("decode playlist: %v", err)
	}
	if pl.Title != "Radios de España (All stations)" || pl.Confidence != 100 || pl.Len() != 31 {
		t.Fatalf("unexpected playlist %+v", pl)
	}
}

func TestStationsListing(t *testing.T) {
	setupCLIEnv(t)
	out := mustRunCLI(t, "stations")
	if len(dataLines(out)) != 1+1+31 {
		t.Fatalf("expected summary, header and 31 rows:\n%s", out)
	}
	if strings.Contains(out, "rne_exterior") {
		t.Fatal("expected streamless station to be hidden")
	}
	out = mustRunCLI(t, "stations", "--all")
	if !strings.Contains(out, "rne_exterior\tRadio Exterior de España\tno") {
		t.Fatalf("expected streamless station with --all:\n%s", out)
	}
}

func TestKeywordsJSON(t *testing.T) {
	setupCLIEnv(t)
	out := mustRunCLI(t, "keywords", "--json")
	var keywords map[string][]string
	if err := json.Unmarshal([]byte(out), &keywords); err != nil {
		t.Fatalf("decode keywords: %v", err)
	}
	if len(keywords[matcher.KeywordStation]) != 32 {
		t.Fatalf("expected 32 station names, got %d", len(keywords[matcher.KeywordStation]))
	}
	if len(keywords[matcher.KeywordProvider]) != 3 {
		t.Fatalf("unexpected provider keywords %v", keywords[matcher.KeywordProvider])
	}
}

func TestCatalogConvertAndSearchFromSQLite(t *testing.T) {
	base := setupCLIEnv(t)
	dbPath := filepath.Join(base, "catalog", "stations.db")
	out := mustRunCLI(t, "catalog", "convert", "-", dbPath)
	if !strings.Contains(out, "Wrote 32 stations") {
		t.Fatalf("unexpected convert output:\n%s", out)
	}

	jsonPath := filepath.Join(base, "catalog", "stations.json")
	mustRunCLI(t, "catalog", "convert", dbPath, jsonPath)

	t.Setenv("EMISORA_CATALOG", jsonPath)
	out = mustRunCLI(t, "search", "Catalunya")
	if lines := dataLines(out); len(lines) != 10 || !strings.HasPrefix(lines[1], "80\tCatalunya Ràdio") {
		t.Fatalf("unexpected search over converted catalog:\n%s", out)
	}

	if _, err := runCLI(t, "catalog", "convert", jsonPath, jsonPath); err == nil {
		t.Fatal("expected error converting a file onto itself")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	base := setupCLIEnv(t)
	target := filepath.Join(base, "cfg", "emisora.toml")
	out := mustRunCLI(t, "config", "init", "--path", target)
	if !strings.Contains(out, target) {
		t.Fatalf("expected target path in output:\n%s", out)
	}
	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	mustRunCLI(t, "config", "init", "--path", target, "--overwrite")

	out = mustRunCLI(t, "--config", target, "config", "validate")
	if !strings.Contains(out, "Configuration valid") || strings.Contains(out, "defaults were used") {
		t.Fatalf("unexpected validate output:\n%s", out)
	}
	if !strings.Contains(out, "32 stations, 31 playable") {
		t.Fatalf("expected catalog summary:\n%s", out)
	}

	out = mustRunCLI(t, "config", "validate")
	if !strings.Contains(out, "defaults were used") {
		t.Fatalf("expected defaults notice:\n%s", out)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	base := setupCLIEnv(t)
	path := filepath.Join(base, "bad.toml")
	if err := os.WriteFile(path, []byte("[matcher]\nlanguage = \"de\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := runCLI(t, "--config", path, "search", "x"); err == nil || !strings.Contains(err.Error(), "matcher.language") {
		t.Fatalf("expected language validation error, got %v", err)
	}
}

func TestDotEnvSuppliesCatalog(t *testing.T) {
	base := setupCLIEnv(t)
	catalogPath := filepath.Join(base, "mini.json")
	catalogJSON := `{"onda": {"name": "Onda Test", "stream": "http://onda.test/live"}}`
	if err := os.WriteFile(catalogPath, []byte(catalogJSON), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if err := os.WriteFile(".env", []byte("EMISORA_CATALOG="+catalogPath+"\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	out := mustRunCLI(t, "stations")
	if !strings.Contains(out, "onda\tOnda Test\tyes") {
		t.Fatalf("expected catalog from .env:\n%s", out)
	}
}
