package gobhasha

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

// AutoLang asks the pipeline to detect the source language.
const AutoLang = "auto"

const minDetectionLength = 7

// DetectSourceLang guesses the source language tag of text. Detection
// is best effort: short or unrecognizable text defaults to English.
func DetectSourceLang(text string) string {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minDetectionLength {
		return "en-IN"
	}

	info := whatlanggo.Detect(trimmed)
	if info.IsReliable() {
		switch info.Lang {
		case whatlanggo.Hin:
			return "hi-IN"
		case whatlanggo.Kan:
			return "kn-IN"
		case whatlanggo.Tel:
			return "te-IN"
		case whatlanggo.Tam:
			return "ta-IN"
		case whatlanggo.Mal:
			return "ml-IN"
		case whatlanggo.Ben:
			return "bn-IN"
		case whatlanggo.Guj:
			return "gu-IN"
		case whatlanggo.Pan:
			return "pa-IN"
		case whatlanggo.Mar:
			return "mr-IN"
		case whatlanggo.Ori:
			return "or-IN"
		}
	}
	return scriptTag(trimmed)
}

// scriptTag routes on writing system when the language guess is
// unreliable or outside the supported set. Devanagari near-languages
// such as Bhojpuri and Nepali read as Hindi here; Latin and anything
// unrecognized fall back to English.
func scriptTag(text string) string {
	switch whatlanggo.DetectScript(text) {
	case unicode.Devanagari:
		return "hi-IN"
	case unicode.Bengali:
		return "bn-IN"
	case unicode.Gurmukhi:
		return "pa-IN"
	case unicode.Gujarati:
		return "gu-IN"
	case unicode.Oriya:
		return "or-IN"
	case unicode.Tamil:
		return "ta-IN"
	case unicode.Telugu:
		return "te-IN"
	case unicode.Kannada:
		return "kn-IN"
	case unicode.Malayalam:
		return "ml-IN"
	}
	return "en-IN"
}
