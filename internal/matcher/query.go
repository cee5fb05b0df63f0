package matcher

import "emisora/internal/media"

// Keyword groups published to the host classifier.
const (
	KeywordStation  = "radio_station"
	KeywordProvider = "radio_streaming_provider"
)

// Query is a phrase plus the host's media type hint.
type Query struct {
	Phrase string
	Intent media.Type
}

// Response collects everything a query produced.
type Response struct {
	Playlists []media.Playlist `json:"playlists"`
	Entries   []media.Entry    `json:"entries"`
}

// Query runs the provider playlist gate and the station search. The featured
// playlist is offered when the phrase names the provider; for non-radio
// intents the phrase must be exactly a provider phrase.
func (m *Matcher) Query(q Query) Response {
	resp := Response{
		Playlists: []media.Playlist{},
		Entries:   m.Search(q.Phrase, q.Intent),
	}
	if m.MatchesProviderIntent(q.Phrase, q.Intent != media.TypeRadio) {
		resp.Playlists = append(resp.Playlists, m.Featured())
	}
	return resp
}

// Keywords returns the keyword lists to register with the host classifier:
// every station name, and the provider's own names.
func (m *Matcher) Keywords() map[string][]string {
	return map[string][]string{
		KeywordStation:  m.catalog.Names(),
		KeywordProvider: m.Options().ProviderKeywords,
	}
}
