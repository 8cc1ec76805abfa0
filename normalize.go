package gobhasha

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// LineSentinel marks original line boundaries across the API round
// trip. The engine tends to pass it through verbatim; its non-word
// shape keeps it clear of the preserved-term matcher.
const LineSentinel = " <LINEBREAK> "

// JoinLines flattens multi-line input into a single line, joining the
// non-empty trimmed lines with LineSentinel. All-blank input yields "".
func JoinLines(text string) string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, LineSentinel)
}

// nonEmptyLines returns the trimmed non-empty lines of the original input.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// TagPreservedTerms wraps whole-word occurrences of each term in
// triple brackets so the engine treats them as opaque tokens.
// Matching is case-insensitive; embedded occurrences ("FRNDship" for
// term "FRND") are left alone.
func TagPreservedTerms(text string, terms []string) string {
	for _, term := range terms {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			continue
		}
		text = re.ReplaceAllString(text, "[[["+term+"]]]")
	}
	return text
}

var preservedTagRE = regexp.MustCompile(`\[\[\[(.*?)\]\]\]`)

// UntagPreservedTerms removes the triple-bracket wrapping after
// translation, leaving the bare term.
func UntagPreservedTerms(text string) string {
	return preservedTagRE.ReplaceAllString(text, "$1")
}

// LoadPreservedTerms reads a preserved-terms file, one term per line,
// skipping blanks. A missing file is not an error: the term list is
// simply empty.
func LoadPreservedTerms(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if term := strings.TrimSpace(scanner.Text()); term != "" {
			terms = append(terms, term)
		}
	}
	return terms, scanner.Err()
}
