package docgen

import (
	"regexp"
	"strings"
)

var headingPrefix = regexp.MustCompile(`^#+ ?`)

// NormalizeDocstring demotes heading markers inside a raw docstring so that
// docstring-authored headings cannot out-rank the document's own hierarchy
// (file = #, declaration = ##, method = ###). Any leading run of '#'
// characters, optionally followed by one space, becomes "#### ". The
// transform operates per line and is idempotent. An absent docstring
// normalizes to the empty string.
func NormalizeDocstring(doc string) string {
	if doc == "" {
		return ""
	}
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = headingPrefix.ReplaceAllString(line, "#### ")
	}
	return strings.Join(lines, "\n")
}
