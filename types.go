package gobhasha

import "time"

// StyleMode controls the register and code-mixing density of output.
type StyleMode string

const (
	// ModeModernColloquial is the casual conversational default. A
	// target language's own pattern may override it (see LanguagePatterns).
	ModeModernColloquial StyleMode = "modern-colloquial"
	// ModeFormal asks for a professional, respectful tone.
	ModeFormal StyleMode = "formal"
	// ModeClassicColloquial prioritizes word-for-word accuracy.
	ModeClassicColloquial StyleMode = "classic-colloquial"
	// ModeCodeMixed asks for heavy English-local blending.
	ModeCodeMixed StyleMode = "code-mixed"
)

// SpeakerGender is the gender hint sent to the translation engine.
type SpeakerGender string

const (
	GenderMale   SpeakerGender = "Male"
	GenderFemale SpeakerGender = "Female"
)

// ScriptPreference is how a target language's output should be written.
type ScriptPreference string

const (
	// ScriptRoman requests Roman transliteration.
	ScriptRoman ScriptPreference = "roman"
	// ScriptMixed leaves the script choice to the engine.
	ScriptMixed ScriptPreference = "mixed"
	// ScriptFullyNative requests the language's own script throughout.
	ScriptFullyNative ScriptPreference = "fully-native"
)

// MixingProfile is the expected density of English vocabulary retained
// in a language's output. It drives the language-aware quality check.
type MixingProfile string

const (
	MixingHeavy    MixingProfile = "heavy"
	MixingModerate MixingProfile = "moderate"
	MixingLight    MixingProfile = "light"
)

// LanguagePattern holds the per-language script and style defaults.
type LanguagePattern struct {
	Script ScriptPreference
	Mode   StyleMode
}

// Request describes one translation submission. It is immutable once
// built and discarded after the response is rendered.
type Request struct {
	SourceLang     string // language tag, e.g. "en-IN", or "auto" to detect
	TargetLang     string // language tag, e.g. "hi-IN"
	Text           string // raw, possibly multi-line user text
	Mode           StyleMode
	Gender         SpeakerGender
	ContextType    string // optional, e.g. "Marketing/Promotional"
	Audience       string // optional, e.g. "Young Adults (18-30)"
	FormalityLevel int    // 1 (very casual) .. 5 (very formal); 0 means unset
}

// Result is the outcome of one pipeline run. Text is always displayable:
// on provider failure it carries the error-marked message and Confidence
// is zero.
type Result struct {
	RequestID  string   // unique id for this submission
	RawText    string   // text as returned by the engine, before cleanup
	Text       string   // cleaned, restored, post-fixed translation
	Confidence float64  // heuristic score, always within [0, 1]
	Flags      []string // quality warnings, one per triggered penalty
	Advisories []string // cultural-sensitivity and logging notes
	Reviewed   bool     // whether the LLM review pass ran
	ReviewNote string   // informational note from the review path
	Cached     bool     // whether the engine response came from cache
	Elapsed    time.Duration
}

// LogRecord is one append-only row of the translation log.
type LogRecord struct {
	SourceLang string
	TargetLang string
	Input      string
	Output     string
	Timestamp  time.Time
}
