package media

// Entry is one playable result.
type Entry struct {
	MediaType  Type         `json:"media_type"`
	Playback   PlaybackType `json:"playback"`
	URI        string       `json:"uri"`
	Title      string       `json:"title"`
	Image      string       `json:"image,omitempty"`
	Artist     string       `json:"artist"`
	SkillID    string       `json:"skill_id"`
	SkillIcon  string       `json:"skill_icon,omitempty"`
	Confidence int          `json:"match_confidence"`
	Length     int          `json:"length"`
}

// Playlist groups entries under a single browsable title.
type Playlist struct {
	MediaType  Type         `json:"media_type"`
	Playback   PlaybackType `json:"playback"`
	Title      string       `json:"title"`
	Image      string       `json:"image,omitempty"`
	Artist     string       `json:"artist"`
	SkillID    string       `json:"skill_id"`
	SkillIcon  string       `json:"skill_icon,omitempty"`
	Confidence int          `json:"match_confidence"`
	Entries    []Entry      `json:"playlist"`
}

// Len returns the number of entries in the playlist.
func (p Playlist) Len() int {
	return len(p.Entries)
}

// Source carries the attribution stamped on every record a provider emits.
type Source struct {
	Artist    string
	SkillID   string
	SkillIcon string
}

// LiveRadio builds an audio radio entry for a live stream.
func (s Source) LiveRadio(uri, title, image string, confidence int) Entry {
	return Entry{
		MediaType:  TypeRadio,
		Playback:   PlaybackAudio,
		URI:        uri,
		Title:      title,
		Image:      image,
		Artist:     s.Artist,
		SkillID:    s.SkillID,
		SkillIcon:  s.SkillIcon,
		Confidence: ClampConfidence(confidence),
		Length:     LiveStreamLength,
	}
}

// RadioPlaylist wraps entries in a radio playlist.
func (s Source) RadioPlaylist(title, image string, confidence int, entries []Entry) Playlist {
	if entries == nil {
		entries = []Entry{}
	}
	return Playlist{
		MediaType:  TypeRadio,
		Playback:   PlaybackAudio,
		Title:      title,
		Image:      image,
		Artist:     s.Artist,
		SkillID:    s.SkillID,
		SkillIcon:  s.SkillIcon,
		Confidence: ClampConfidence(confidence),
		Entries:    entries,
	}
}

// ClampConfidence limits a confidence value to [0,100].
func ClampConfidence(value int) int {
	return min(max(value, 0), 100)
}
