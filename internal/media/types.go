package media

import (
	"fmt"
	"strings"
)

// Type classifies the content a query asks for.
type Type int

const (
	TypeGeneric   Type = 0
	TypeAudio     Type = 1
	TypeMusic     Type = 2
	TypeVideo     Type = 3
	TypeAudiobook Type = 4
	TypeGame      Type = 5
	TypePodcast   Type = 6
	TypeRadio     Type = 7
	TypeNews      Type = 8
	TypeTV        Type = 9
	TypeMovie     Type = 10
)

var typeNames = map[Type]string{
	TypeGeneric:   "generic",
	TypeAudio:     "audio",
	TypeMusic:     "music",
	TypeVideo:     "video",
	TypeAudiobook: "audiobook",
	TypeGame:      "game",
	TypePodcast:   "podcast",
	TypeRadio:     "radio",
	TypeNews:      "news",
	TypeTV:        "tv",
	TypeMovie:     "movie",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// ParseType resolves a media type name such as "radio" or "music".
func ParseType(value string) (Type, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return TypeGeneric, nil
	}
	for t, name := range typeNames {
		if name == normalized {
			return t, nil
		}
	}
	return TypeGeneric, fmt.Errorf("unknown media type %q", value)
}

// PlaybackType tells the front end how to play an entry.
type PlaybackType int

const (
	PlaybackSkill     PlaybackType = 0
	PlaybackVideo     PlaybackType = 1
	PlaybackAudio     PlaybackType = 2
	PlaybackUndefined PlaybackType = 100
)

func (p PlaybackType) String() string {
	switch p {
	case PlaybackSkill:
		return "skill"
	case PlaybackVideo:
		return "video"
	case PlaybackAudio:
		return "audio"
	default:
		return "undefined"
	}
}

// LiveStreamLength is the length sentinel for entries without a fixed duration.
const LiveStreamLength = -1
