package gobhasha

import (
	"regexp"
	"strings"
)

// Sentence-boundary patterns tried in order when the sentinel did not
// survive the round trip. Each matches a terminal run plus trailing
// space; segments are cut immediately after the terminal run.
var segmentBoundaryREs = []*regexp.Regexp{
	regexp.MustCompile(`([.!?।]+)\s+`),
	regexp.MustCompile(`([💪🚨🎧🌙💰🔥🎉👉✅])\s+`),
	regexp.MustCompile(`([?!।])\s*`),
}

// RestoreLines re-derives the original line structure in the translated
// text. Priority: split on the surviving sentinel; else re-segment on
// sentence boundaries and group to the original line count; else return
// the text unchanged. Alignment of line N to line N is best effort,
// only the overall count is targeted.
func RestoreLines(translated, original string) string {
	if strings.Contains(translated, LineSentinel) {
		return strings.Join(strings.Split(translated, LineSentinel), "\n")
	}

	originalLines := nonEmptyLines(original)
	if len(originalLines) <= 1 {
		return translated
	}

	for _, re := range segmentBoundaryREs {
		segments := splitAfter(strings.TrimSpace(translated), re)
		if len(segments) < len(originalLines) {
			continue
		}

		perGroup := len(segments) / len(originalLines)
		if perGroup < 1 {
			perGroup = 1
		}

		var result []string
		for i := 0; i < len(segments); i += perGroup {
			end := i + perGroup
			if end > len(segments) {
				end = len(segments)
			}
			result = append(result, strings.Join(segments[i:end], " "))
		}

		if len(result) >= len(originalLines) {
			return strings.Join(result[:len(originalLines)], "\n")
		}
	}

	return translated
}

// splitAfter cuts text immediately after every match of the boundary
// pattern, dropping the whitespace the pattern consumed.
func splitAfter(text string, re *regexp.Regexp) []string {
	marked := re.ReplaceAllString(text, "$1\x00")
	var segments []string
	for _, seg := range strings.Split(marked, "\x00") {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// Patterns for instruction text the engine occasionally echoes back.
var instructionLeakREs = []*regexp.Regexp{
	regexp.MustCompile(`(?im)\[INSTRUCTION:.*?\]\s*`),
	regexp.MustCompile(`(?im)\[INST:.*?\]\s*`),
	regexp.MustCompile(`(?im)\[Translate completely including:.*?\]\s*`),
	regexp.MustCompile(`(?im)\[translate from:.*?\]\s*`),
	regexp.MustCompile(`(?im)\[Context:.*?\]\s*`),
	regexp.MustCompile(`(?im)\[Apply quality patterns:.*?\]\s*`),
	regexp.MustCompile(`(?im)\[Festival context:.*?\]\s*`),
	regexp.MustCompile(`(?im)\[Apply:.*?\]\s*`),
}

// CleanInstructionLeaks strips bracket-wrapped instruction text that
// leaked from the context hints into the translation.
func CleanInstructionLeaks(text string) string {
	for _, re := range instructionLeakREs {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

var (
	// Nested wrapping like [[FRND]] or {{Team FRND}} down to the token.
	nestedBracketRE = regexp.MustCompile(`[\[{]{2,}\s*([^\[\]{}]+?)\s*[\]}]{2,}`)
	// Orphaned bracket runs left on one side, e.g. "FRND}}]]".
	trailingBracketRE = regexp.MustCompile(`([^\s\[\]{}]+)[\]}]{2,}`)
	leadingBracketRE  = regexp.MustCompile(`[\[{]{2,}([^\s\[\]{}]+)`)
)

// CollapseBrandBrackets removes layered bracket wrapping around brand
// tokens, leaving the bare token. Idempotent: a second pass is a no-op.
func CollapseBrandBrackets(text string) string {
	for {
		cleaned := nestedBracketRE.ReplaceAllString(text, "$1")
		cleaned = trailingBracketRE.ReplaceAllString(cleaned, "$1")
		cleaned = leadingBracketRE.ReplaceAllString(cleaned, "$1")
		if cleaned == text {
			return cleaned
		}
		text = cleaned
	}
}

var spaceRunRE = regexp.MustCompile(`[ \t]{2,}`)

// TidyWhitespace collapses runs of spaces and trims each line, keeping
// the line structure produced by RestoreLines.
func TidyWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRunRE.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
