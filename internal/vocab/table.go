package vocab

// Name identifies a vocabulary.
type Name string

const (
	// Radio holds generic words for radio listening.
	Radio Name = "radio"
	// Provider holds phrases naming the catalog provider itself.
	Provider Name = "provider"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

var tables = map[string]map[Name][]string{
	"en": {
		Radio: {
			"radio",
			"radios",
			"radio station",
			"radio stations",
			"station",
			"stations",
			"broadcast",
			"fm",
		},
		Provider: {
			"radio españa",
			"radio espanha",
			"radio espanhola",
			"radio de españa",
			"radios de españa",
			"spanish radio",
			"spanish radios",
			"spanish radio stations",
			"radio from spain",
			"radios from spain",
		},
	},
	"es": {
		Radio: {
			"radio",
			"radios",
			"emisora",
			"emisoras",
			"estación de radio",
			"cadena",
			"fm",
		},
		Provider: {
			"radio españa",
			"radio de españa",
			"radios de españa",
			"radio española",
			"radios españolas",
			"emisoras españolas",
			"emisoras de españa",
			"radio espanhola",
		},
	},
	"pt": {
		Radio: {
			"rádio",
			"rádios",
			"estação",
			"estações",
			"emissora",
			"fm",
		},
		Provider: {
			"rádio espanha",
			"rádio espanhola",
			"rádios espanholas",
			"rádio de espanha",
			"radio españa",
		},
	},
}
