package gobhasha

import "strings"

// LanguageTags maps human-readable names to the language tags the
// translation engine accepts.
var LanguageTags = map[string]string{
	"Hindi":     "hi-IN",
	"Kannada":   "kn-IN",
	"Telugu":    "te-IN",
	"Tamil":     "ta-IN",
	"Malayalam": "ml-IN",
	"Bengali":   "bn-IN",
	"Gujarati":  "gu-IN",
	"Punjabi":   "pa-IN",
	"Marathi":   "mr-IN",
	"Odia":      "or-IN",
	"English":   "en-IN",
}

// LanguagePatterns holds the per-language script and default style
// observed to produce acceptable output. Read-only reference data.
var LanguagePatterns = map[string]LanguagePattern{
	"hi-IN": {Script: ScriptRoman, Mode: ModeCodeMixed},
	"te-IN": {Script: ScriptRoman, Mode: ModeCodeMixed},
	"ta-IN": {Script: ScriptMixed, Mode: ModeModernColloquial},
	"ml-IN": {Script: ScriptFullyNative, Mode: ModeFormal},
	"kn-IN": {Script: ScriptFullyNative, Mode: ModeFormal},
}

// MixingProfiles is the expected English-retention profile per language.
// Languages absent from this map skip the retention quality check.
var MixingProfiles = map[string]MixingProfile{
	"hi": MixingHeavy,
	"te": MixingHeavy,
	"ta": MixingModerate,
	"ml": MixingLight,
	"kn": MixingLight,
	"or": MixingLight,
}

// defaultPattern applies to languages without an explicit entry.
var defaultPattern = LanguagePattern{Script: ScriptRoman, Mode: ModeModernColloquial}

// PatternFor returns the script/style pattern for a target language tag.
func PatternFor(langTag string) LanguagePattern {
	if p, ok := LanguagePatterns[langTag]; ok {
		return p
	}
	return defaultPattern
}

// TagForName returns the language tag for a human-readable name.
// Falls back to the input if the name is unknown.
func TagForName(name string) string {
	if tag, ok := LanguageTags[name]; ok {
		return tag
	}
	return name
}

// NameForTag returns the human-readable name for a language tag.
func NameForTag(tag string) string {
	for name, t := range LanguageTags {
		if t == tag {
			return name
		}
	}
	return tag
}

// BaseLang extracts the base language code, e.g. "hi" from "hi-IN".
func BaseLang(langTag string) string {
	parts := strings.SplitN(langTag, "-", 2)
	return strings.ToLower(parts[0])
}

// NormalizeTag converts a language code to engine format ("hi_IN" → "hi-IN").
func NormalizeTag(langTag string) string {
	return strings.ReplaceAll(langTag, "_", "-")
}

// ProfileFor returns the code-mixing profile for a language tag, and
// whether one is defined.
func ProfileFor(langTag string) (MixingProfile, bool) {
	p, ok := MixingProfiles[BaseLang(langTag)]
	return p, ok
}
