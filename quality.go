package gobhasha

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	residualBracketRE = regexp.MustCompile(`\[+[^\[\]]*\]+`)
	sourceTerminalRE  = regexp.MustCompile(`[.!?]+`)
	// Output side also counts the devanagari danda as a terminal.
	outputTerminalRE = regexp.MustCompile(`[.!?।]+`)
	asciiLetterRE    = regexp.MustCompile(`[A-Za-z]`)
)

// retentionBand is the acceptable English-retention ratio range for a
// code-mixing profile, with the penalty applied outside it.
var retentionBands = map[MixingProfile]struct {
	min, max, penalty float64
}{
	MixingHeavy:    {min: 0.15, max: 1.0, penalty: 0.2},
	MixingModerate: {min: 0.05, max: 0.9, penalty: 0.2},
	MixingLight:    {min: 0.0, max: 0.5, penalty: 0.3},
}

// AnalyzeQuality inspects a candidate translation against its source
// and returns human-readable quality flags plus a heuristic confidence
// score. The score starts at 1.0, loses a fixed penalty per triggered
// check and is clamped to [0, 1]. Every penalty has a matching flag.
//
// An empty candidate or one carrying the error marker short-circuits to
// a zero score with no flags.
func AnalyzeQuality(original, translated, sourceLang, targetLang string) ([]string, float64) {
	if original == "" || translated == "" || IsFailureText(translated) {
		return nil, 0.0
	}

	var flags []string
	confidence := 1.0

	if residualBracketRE.MatchString(translated) {
		confidence -= 0.3
		flags = append(flags, "brackets left around text - brand name formatting issue")
	}

	originalSentences := len(sourceTerminalRE.FindAllString(original, -1))
	translatedSentences := len(outputTerminalRE.FindAllString(translated, -1))
	if originalSentences > translatedSentences+1 {
		confidence -= 0.4
		flags = append(flags, "possible incomplete translation - missing sentences")
	}

	ratio := float64(utf8.RuneCountInString(translated)) / float64(utf8.RuneCountInString(original))
	if ratio > 3.0 {
		confidence -= 0.2
		flags = append(flags, "translation much longer than original - verify completeness")
	} else if ratio < 0.3 {
		confidence -= 0.2
		flags = append(flags, "translation much shorter than original - may be missing content")
	}

	if hasRepeatedTrigram(translated) {
		confidence -= 0.3
		flags = append(flags, "repeated phrases detected - may indicate translation error")
	}

	confidence, flags = checkPatternCompliance(original, translated, targetLang, confidence, flags)

	if profile, ok := ProfileFor(targetLang); ok {
		if band, ok := retentionBands[profile]; ok {
			if r, enough := englishRetention(translated); enough && (r < band.min || r > band.max) {
				confidence -= band.penalty
				flags = append(flags, fmt.Sprintf("english mixing outside the expected %s range for %s", profile, BaseLang(targetLang)))
			}
		}
	}

	if confidence < 0.0 {
		confidence = 0.0
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return flags, confidence
}

// ConfidenceScore returns just the heuristic score for a candidate.
func ConfidenceScore(original, translated, sourceLang, targetLang string) float64 {
	_, confidence := AnalyzeQuality(original, translated, sourceLang, targetLang)
	return confidence
}

// hasRepeatedTrigram reports whether any contiguous 3-word phrase
// occurs more than once. First hit wins; short texts are skipped.
func hasRepeatedTrigram(text string) bool {
	words := strings.Fields(text)
	if len(words) <= 4 {
		return false
	}
	for i := 0; i+2 < len(words); i++ {
		phrase := strings.Join(words[i:i+3], " ")
		if strings.Count(text, phrase) > 1 {
			return true
		}
	}
	return false
}

// checkPatternCompliance verifies that tokens the campaign style guide
// keeps in English survived the round trip in their expected casing.
func checkPatternCompliance(original, translated, targetLang string, confidence float64, flags []string) (float64, []string) {
	lowerOriginal := strings.ToLower(original)
	lang := BaseLang(targetLang)
	category := DetectContext(original)

	if category == ContextRakhi {
		if strings.Contains(lowerOriginal, "rakhi") && !strings.Contains(translated, "Rakhi") {
			confidence -= 0.2
			flags = append(flags, "festival term 'Rakhi' should be preserved in English")
		}
		if strings.Contains(lowerOriginal, "brother") && lang == "hi" && !strings.Contains(strings.ToLower(translated), "bhai") {
			confidence -= 0.1
			flags = append(flags, "missing cultural term - Hindi should use 'bhai' for brother")
		}
	}

	if category == ContextWhatsApp && strings.Contains(lowerOriginal, "whatsapp channel") && !strings.Contains(translated, "WhatsApp Channel") {
		confidence -= 0.2
		flags = append(flags, "'WhatsApp Channel' should be preserved in mixed case")
	}

	if strings.Contains(lowerOriginal, "live") && !strings.Contains(translated, "LIVE") {
		confidence -= 0.1
		flags = append(flags, "'LIVE' should be preserved in all caps")
	}

	return confidence, flags
}

// englishRetention returns the fraction of words containing ASCII
// letters. The bool is false when the text is too short to judge.
func englishRetention(text string) (float64, bool) {
	words := strings.Fields(text)
	if len(words) < 5 {
		return 0, false
	}
	english := 0
	for _, w := range words {
		if asciiLetterRE.MatchString(w) {
			english++
		}
	}
	return float64(english) / float64(len(words)), true
}
