package hansard

import (
	"regexp"
	"strings"
)

var runOfBlanks = regexp.MustCompile(`[ \t]+`)

// Normalize collapses runs of spaces and tabs to a single space and trims
// trailing blanks from each line. Newlines are preserved: the section
// locator and splitter depend on line structure.
func Normalize(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(runOfBlanks.ReplaceAllString(line, " "), " ")
	}
	return strings.Join(lines, "\n")
}
