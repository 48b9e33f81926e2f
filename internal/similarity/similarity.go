// Package similarity scores token-set overlap between slugs, used to
// associate catalog handles with image-group names.
package similarity

import (
	"regexp"

	"scentid/internal/textnorm"
)

// DefaultThreshold is the Jaccard score above which two slugs are treated as
// referring to the same product group. Partial overlaps below it are surfaced
// for manual review instead of being merged.
const DefaultThreshold = 0.6

// boilerplatePrefixes are catalog naming prefixes that carry no identity and
// are stripped before tokenizing.
var boilerplatePrefixes = []*regexp.Regexp{
	regexp.MustCompile(`^combo-de-\d+-perfumes?-`),
	regexp.MustCompile(`^combo-\d+-perfumes?-`),
	regexp.MustCompile(`^combo-\d+-parfums?-`),
}

// Set is a set of slug tokens.
type Set map[string]struct{}

// TokenSet normalizes text to a slug, strips boilerplate prefixes, and splits
// the remainder on hyphens. Empty input yields an empty set.
func TokenSet(text string) Set {
	slug := textnorm.Slugify(text)
	for _, prefix := range boilerplatePrefixes {
		slug = prefix.ReplaceAllString(slug, "")
	}
	set := make(Set)
	start := 0
	for i := 0; i <= len(slug); i++ {
		if i == len(slug) || slug[i] == '-' {
			if i > start {
				set[slug[start:i]] = struct{}{}
			}
			start = i + 1
		}
	}
	return set
}

// Jaccard returns |A∩B| / |A∪B|. Defined as 0.0 when either set is empty.
func Jaccard(a, b Set) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// IsMatch reports whether two texts tokenize to sets whose Jaccard score
// exceeds threshold. A threshold <= 0 falls back to DefaultThreshold.
func IsMatch(a, b string, threshold float64) bool {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return Jaccard(TokenSet(a), TokenSet(b)) > threshold
}
