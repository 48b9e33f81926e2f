package resolver

import (
	"strings"

	"scentid/internal/analysis"
	"scentid/internal/catalog"
	"scentid/internal/similarity"
	"scentid/internal/textnorm"
)

// handleCutoff is the composite score a record must exceed to be considered
// the same product as a mention.
const handleCutoff = 0.5

const (
	scoreStrong  = 0.8
	scorePartial = 0.4
)

// ResolveHandle finds the catalog record an analysis result refers to. The
// composite score rewards canonical brand equality and title containment at
// 0.8 each, with 0.4 partial credit for token overlap; only scores above the
// cutoff match, and ties keep the first-seen record so repeated runs are
// stable.
func (r *Resolver) ResolveHandle(result analysis.Result, records []catalog.Record) (*catalog.Record, float64, bool) {
	principal, ok := result.Principal()
	if !ok {
		return nil, 0, false
	}

	var best *catalog.Record
	bestScore := 0.0
	for i := range records {
		score := r.scoreRecord(principal, &records[i])
		if score > bestScore {
			best = &records[i]
			bestScore = score
		}
	}
	if best == nil || bestScore <= handleCutoff {
		return nil, bestScore, false
	}
	return best, bestScore, true
}

func (r *Resolver) scoreRecord(mention analysis.Mention, record *catalog.Record) float64 {
	return r.nameScore(mention, record) + r.brandScore(mention, record)
}

// nameScore rewards title containment in either direction at 0.8: "Black
// Opium" matches both "Black Opium Eau de Parfum" and a bare "Opium" listing.
// A single shared token earns 0.4 partial credit.
func (r *Resolver) nameScore(mention analysis.Mention, record *catalog.Record) float64 {
	nameSlug := textnorm.Slugify(mention.Name)
	titleSlug := textnorm.Slugify(record.Title)
	if nameSlug == "" || titleSlug == "" {
		return 0
	}
	if strings.Contains(titleSlug, nameSlug) || strings.Contains(nameSlug, titleSlug) {
		return scoreStrong
	}
	for token := range similarity.TokenSet(mention.Name) {
		if strings.Contains(titleSlug, token) {
			return scorePartial
		}
	}
	return 0
}

// brandScore rewards canonical equality with the brand list or primary brand
// at 0.8; a mention brand that is merely a fragment of a listed brand earns
// 0.4 partial credit.
func (r *Resolver) brandScore(mention analysis.Mention, record *catalog.Record) float64 {
	brandSlug := textnorm.Slugify(r.norm.CanonicalBrand(mention.Brand))
	if brandSlug == "" {
		return 0
	}
	recordBrandSlug := func(raw string) string {
		return textnorm.Slugify(r.norm.CanonicalBrand(raw))
	}
	if recordBrandSlug(record.PrimaryBrand) == brandSlug {
		return scoreStrong
	}
	for _, brand := range record.Brands {
		if recordBrandSlug(brand) == brandSlug {
			return scoreStrong
		}
	}
	for _, brand := range record.Brands {
		if strings.Contains(recordBrandSlug(brand), brandSlug) {
			return scorePartial
		}
	}
	return 0
}
