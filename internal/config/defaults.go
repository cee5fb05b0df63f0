package config

const (
	defaultConfigPath         = "~/.config/emisora/config.toml"
	defaultLanguage           = "en"
	defaultStrategy           = "damerau_levenshtein"
	defaultMinConfidence      = 60
	defaultMaxConfidence      = 100
	defaultRadioIntentBonus   = 20
	defaultOtherIntentPenalty = 30
	defaultRadioKeywordBonus  = 10
	defaultProviderBonus      = 30
	defaultArtist             = "Radios de España"
	defaultPlaylistTitle      = "Radios de España (All stations)"
	defaultProviderImage      = "https://radioespaña.com/img3/LoneDJsquare400.jpg"
	defaultSkillID            = "emisora.radios-es"
	defaultPlaylistConfidence = 100
	defaultEntryConfidence    = 90
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

func defaultProviderKeywords() []string {
	return []string{"Radio españa", "Radio Espanhola", "Radio de España"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Matcher: Matcher{
			Language:           defaultLanguage,
			Strategy:           defaultStrategy,
			MinConfidence:      defaultMinConfidence,
			MaxConfidence:      defaultMaxConfidence,
			RadioIntentBonus:   defaultRadioIntentBonus,
			OtherIntentPenalty: defaultOtherIntentPenalty,
			RadioKeywordBonus:  defaultRadioKeywordBonus,
			ProviderBonus:      defaultProviderBonus,
		},
		Provider: Provider{
			Keywords:           defaultProviderKeywords(),
			Artist:             defaultArtist,
			PlaylistTitle:      defaultPlaylistTitle,
			Image:              defaultProviderImage,
			SkillID:            defaultSkillID,
			PlaylistConfidence: defaultPlaylistConfidence,
			EntryConfidence:    defaultEntryConfidence,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
