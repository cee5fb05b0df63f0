package media

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{"radio", TypeRadio, false},
		{" Music ", TypeMusic, false},
		{"", TypeGeneric, false},
		{"hologram", TypeGeneric, true},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseType(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLiveRadioEntry(t *testing.T) {
	src := Source{Artist: "Radios de España", SkillID: "emisora.test"}
	entry := src.LiveRadio("https://example.test/stream", "Cadena SER", "https://example.test/ser.png", 140)

	if entry.MediaType != TypeRadio || entry.Playback != PlaybackAudio {
		t.Fatalf("unexpected tags: %v/%v", entry.MediaType, entry.Playback)
	}
	if entry.Length != LiveStreamLength {
		t.Errorf("Length = %d, want %d", entry.Length, LiveStreamLength)
	}
	if entry.Confidence != 100 {
		t.Errorf("Confidence = %d, want clamp to 100", entry.Confidence)
	}
	if entry.Artist != "Radios de España" || entry.SkillID != "emisora.test" {
		t.Errorf("attribution not applied: %+v", entry)
	}
}

func TestEntryJSONFieldNames(t *testing.T) {
	entry := Source{Artist: "a", SkillID: "s"}.LiveRadio("u", "t", "", 80)
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"media_type":7`, `"playback":2`, `"match_confidence":80`, `"length":-1`, `"uri":"u"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("encoded entry %s missing %s", data, key)
		}
	}
	if strings.Contains(string(data), `"image"`) {
		t.Errorf("empty image should be omitted: %s", data)
	}
}

func TestRadioPlaylistNeverNilEntries(t *testing.T) {
	pl := Source{}.RadioPlaylist("All", "", 100, nil)
	if pl.Entries == nil {
		t.Fatal("expected empty, non-nil entries")
	}
	data, err := json.Marshal(pl)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"playlist":[]`) {
		t.Errorf("expected empty playlist array, got %s", data)
	}
}
