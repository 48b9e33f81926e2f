package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	separatorPattern = regexp.MustCompile(`[\s_/+&]+`)
	invalidPattern   = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRunPattern = regexp.MustCompile(`-{2,}`)
)

// deaccenter decomposes text (NFKD) and drops the combining marks, so
// "Lancôme" and "Lancome" slugify identically.
var deaccenter = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Slugify converts arbitrary text into a lowercase hyphen-joined slug
// containing only [a-z0-9-]. Whitespace, underscores, slashes, ampersands,
// and plus signs collapse into single hyphens; any other character becomes a
// hyphen before hyphen runs are collapsed and trimmed. Empty input yields an
// empty slug. Slugify is idempotent.
func Slugify(text string) string {
	if stripped, _, err := transform.String(deaccenter, text); err == nil {
		text = stripped
	}
	text = strings.ToLower(strings.TrimSpace(text))
	text = separatorPattern.ReplaceAllString(text, "-")
	text = invalidPattern.ReplaceAllString(text, "-")
	text = hyphenRunPattern.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}
