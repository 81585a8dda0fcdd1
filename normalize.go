package helpchunk

import (
	"regexp"
	"strings"
)

// blankRunRe matches two or more consecutive newlines.
var blankRunRe = regexp.MustCompile(`\n{2,}`)

// NormalizeText canonicalizes whitespace in converted Markdown.
// Every line is trimmed of leading and trailing whitespace, then runs of
// blank lines are collapsed into a single blank line. Applying it twice
// yields the same result as applying it once.
func NormalizeText(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return blankRunRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
}
