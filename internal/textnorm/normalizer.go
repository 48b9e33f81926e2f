package textnorm

import (
	"regexp"
	"sort"
	"strings"
)

// Tables holds the brand lookup data a Normalizer is built from. Synonym keys
// are matched against the slugified input; Known entries are canonical brand
// names matched as prefixes or suffixes of product strings.
type Tables struct {
	Synonyms map[string]string
	Known    []string
}

// DefaultTables returns the brand tables used by the fragrance catalog.
func DefaultTables() Tables {
	return Tables{
		Synonyms: map[string]string{
			"ysl":                "Yves Saint Laurent",
			"yves-saint-laurent": "Yves Saint Laurent",
			"viktor-rolf":        "Viktor Rolf",
			"lancome":            "Lancome",
			"chloe":              "Chloe",
			"boss":               "Hugo Boss",
			"bvlgari":            "Bvlgari",
		},
		Known: []string{
			"Chanel", "Dior", "Carolina Herrera", "Yves Saint Laurent", "Versace",
			"Paco Rabanne", "Jean Paul Gaultier", "Lancome", "Giorgio Armani",
			"Hugo Boss", "Chloe", "Viktor Rolf", "Bvlgari", "Ferrari", "Azzaro",
			"Burberry", "Prada", "Gucci", "Tom Ford", "Givenchy",
		},
	}
}

// Normalizer resolves brand names against an immutable synonym table and
// known-brand list.
type Normalizer struct {
	synonyms map[string]string
	known    []string
}

// New constructs a Normalizer from the provided tables. The known-brand list
// is sorted longest first so a short brand never shadows a longer one
// ("Boss" vs "Hugo Boss"). Nil or empty tables produce a Normalizer that
// passes brands through unchanged.
func New(tables Tables) *Normalizer {
	synonyms := make(map[string]string, len(tables.Synonyms))
	for key, value := range tables.Synonyms {
		synonyms[Slugify(key)] = value
	}
	known := make([]string, 0, len(tables.Known))
	for _, brand := range tables.Known {
		if brand = strings.TrimSpace(brand); brand != "" {
			known = append(known, brand)
		}
	}
	sort.SliceStable(known, func(i, j int) bool {
		return len(known[i]) > len(known[j])
	})
	return &Normalizer{synonyms: synonyms, known: known}
}

// Default returns a Normalizer built from DefaultTables.
func Default() *Normalizer {
	return New(DefaultTables())
}

// CanonicalBrand maps a raw brand string to its canonical name via the
// synonym table. Unmapped input is returned trimmed but otherwise unchanged.
func (n *Normalizer) CanonicalBrand(raw string) string {
	if canonical, ok := n.synonyms[Slugify(raw)]; ok {
		return canonical
	}
	return strings.TrimSpace(raw)
}

var byBrandPattern = regexp.MustCompile(`(?i)\s+by\s+(.+)$`)

// SplitNameBrand extracts a product name and brand from a combined string
// such as "Sauvage by Dior" or "Dior Sauvage". The explicit "by" form wins;
// otherwise the longest known brand matching as a prefix or suffix is used.
// A brand occurring only mid-string is not detected: the whole input comes
// back as the name with an empty brand. Never fails.
func (n *Normalizer) SplitNameBrand(item string) (name, brand string) {
	trimmed := strings.TrimSpace(item)
	spaced := strings.TrimSpace(strings.ReplaceAll(trimmed, "&", " & "))

	if loc := byBrandPattern.FindStringSubmatchIndex(spaced); loc != nil {
		brand = n.CanonicalBrand(spaced[loc[2]:loc[3]])
		name = strings.TrimSpace(spaced[:loc[0]])
		return name, brand
	}

	for _, known := range n.known {
		if matchesPrefix(spaced, known) {
			name = strings.Trim(spaced[len(known):], " -")
			if name == "" {
				name = known
			}
			return name, known
		}
		if matchesSuffix(spaced, known) {
			name = strings.Trim(spaced[:len(spaced)-len(known)], " -")
			if name == "" {
				name = known
			}
			return name, known
		}
	}

	return trimmed, ""
}

// DescriptiveBase builds a combined slug from a list of item strings, one
// "name[-brand]" segment per item. Items that slugify to nothing are dropped;
// an empty result means no item was usable.
func (n *Normalizer) DescriptiveBase(items []string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name, brand := n.SplitNameBrand(item)
		part := Slugify(name)
		if brand != "" {
			if brandSlug := Slugify(n.CanonicalBrand(brand)); brandSlug != "" {
				part += "-" + brandSlug
			}
		}
		if part != "" && part != "-" {
			parts = append(parts, strings.Trim(part, "-"))
		}
	}
	return strings.Join(parts, "-")
}

func matchesPrefix(s, brand string) bool {
	if len(s) < len(brand) || !strings.EqualFold(s[:len(brand)], brand) {
		return false
	}
	return len(s) == len(brand) || boundary(s[len(brand)])
}

func matchesSuffix(s, brand string) bool {
	if len(s) < len(brand) || !strings.EqualFold(s[len(s)-len(brand):], brand) {
		return false
	}
	return len(s) == len(brand) || boundary(s[len(s)-len(brand)-1])
}

func boundary(c byte) bool {
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}
