package resolver

import (
	"context"
	"fmt"

	"scentid/internal/assets"
	"scentid/internal/logging"
	"scentid/internal/phash"
)

// CrossrefOptions tunes the duplicate cross-reference pass.
type CrossrefOptions struct {
	// ExactOnly disables the perceptual pass; only byte-identical duplicates
	// are matched.
	ExactOnly bool
	// Threshold overrides the configured acceptance distance when positive.
	Threshold int
	// HighDistance overrides the configured high-confidence distance when
	// positive.
	HighDistance int
}

// fingerprinted pairs a descriptive asset with its perceptual hash.
type fingerprinted struct {
	asset assets.Asset
	fp    phash.Fingerprint
}

// Crossref matches numbered exports against descriptively named images in
// dir. Exact content-hash duplicates are matched first and always accepted;
// the remaining numbered assets go through a minimum-distance perceptual pass
// banded by confidence. Below-threshold best candidates are reported on the
// entry, never applied.
func (r *Resolver) Crossref(ctx context.Context, dir string, opts CrossrefOptions) (*Plan, error) {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = r.cfg.Matching.PhashThreshold
	}
	high := opts.HighDistance
	if high <= 0 {
		high = r.cfg.Matching.HighConfidenceDistance
	}

	all, err := assets.Scan(dir)
	if err != nil {
		return nil, Wrap(ErrScan, "crossref", "scan image directory", err)
	}
	numbered, descriptive := assets.Partition(all)

	plan := &Plan{Dir: dir}
	if len(numbered) == 0 {
		return plan, nil
	}

	exactIndex := r.hashIndex(descriptive)
	var candidates []fingerprinted
	if !opts.ExactOnly {
		candidates = r.fingerprintAll(descriptive)
	}

	claimed := make(claims)
	for _, asset := range numbered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry := r.crossrefOne(asset, exactIndex, candidates, opts.ExactOnly, threshold, high, dir, claimed)
		if entry.Renameable() {
			claimed.take(entry.Target)
		}
		plan.Entries = append(plan.Entries, entry)
	}

	r.logger.Info("crossref plan computed",
		logging.String("dir", dir),
		logging.Int("numbered", len(numbered)),
		logging.Int("descriptive", len(descriptive)),
		logging.Int("proposed", plan.Proposed()),
		logging.Int("skipped", plan.Skipped()))
	return plan, nil
}

func (r *Resolver) crossrefOne(asset assets.Asset, exactIndex map[string][]assets.Asset, candidates []fingerprinted, exactOnly bool, threshold, high int, dir string, claimed claims) Entry {
	entry := Entry{Source: asset.Name}

	if match, ok := r.exactMatch(asset, exactIndex); ok {
		entry.ExactMatch = true
		entry.Confidence = phash.ConfidenceHigh.String()
		return r.finishRename(entry, dir, asset, match.Stem()+asset.Ext, claimed)
	}
	if exactOnly {
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = "no exact duplicate among descriptive images"
		return entry
	}

	fp := r.hasher.FromFile(asset.Path)
	if !fp.Valid() {
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = "image could not be decoded"
		return entry
	}

	best, bestDistance := closestCandidate(fp, candidates)
	if bestDistance > phash.MaxDistance || best.Name == "" {
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = "no descriptive images to compare against"
		return entry
	}

	entry.Distance = bestDistance
	confidence := phash.Classify(bestDistance, high, threshold)
	entry.Confidence = confidence.String()
	if confidence == phash.ConfidenceNone {
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = fmt.Sprintf("no reliable match (best candidate %s at distance %d)", best.Name, bestDistance)
		return entry
	}
	return r.finishRename(entry, dir, asset, best.Stem()+asset.Ext, claimed)
}

// exactMatch looks the asset's content hash up in the descriptive index. On a
// hash tie the longest descriptive name wins: it carries the most identity.
func (r *Resolver) exactMatch(asset assets.Asset, index map[string][]assets.Asset) (assets.Asset, bool) {
	hash, err := asset.ContentHash()
	if err != nil {
		r.logger.Warn("skipping unreadable image",
			logging.String("path", asset.Path), logging.Error(err))
		return assets.Asset{}, false
	}
	matches := index[hash]
	if len(matches) == 0 {
		return assets.Asset{}, false
	}
	best := matches[0]
	for _, candidate := range matches[1:] {
		if len(candidate.Stem()) > len(best.Stem()) {
			best = candidate
		}
	}
	return best, true
}

func (r *Resolver) finishRename(entry Entry, dir string, asset assets.Asset, desired string, claimed claims) Entry {
	if desired == asset.Name {
		entry.Disposition = DispositionSkipExists
		entry.Target = desired
		return entry
	}
	target, disposition, err := resolveTarget(dir, asset.Name, desired, claimed)
	if err != nil {
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = err.Error()
		return entry
	}
	entry.Target = target
	entry.Disposition = disposition
	return entry
}

func (r *Resolver) hashIndex(descriptive []assets.Asset) map[string][]assets.Asset {
	index := make(map[string][]assets.Asset, len(descriptive))
	for _, asset := range descriptive {
		hash, err := asset.ContentHash()
		if err != nil {
			r.logger.Warn("skipping unreadable image",
				logging.String("path", asset.Path), logging.Error(err))
			continue
		}
		index[hash] = append(index[hash], asset)
	}
	return index
}

func (r *Resolver) fingerprintAll(descriptive []assets.Asset) []fingerprinted {
	list := make([]fingerprinted, 0, len(descriptive))
	for _, asset := range descriptive {
		fp := r.hasher.FromFile(asset.Path)
		if !fp.Valid() {
			r.logger.Debug("descriptive image has no perceptual identity",
				logging.String("path", asset.Path))
			continue
		}
		list = append(list, fingerprinted{asset: asset, fp: fp})
	}
	return list
}

func closestCandidate(fp phash.Fingerprint, candidates []fingerprinted) (assets.Asset, int) {
	best := assets.Asset{}
	bestDistance := phash.MaxDistance + 1
	for _, candidate := range candidates {
		if d := phash.Distance(fp, candidate.fp); d < bestDistance {
			best = candidate.asset
			bestDistance = d
		}
	}
	return best, bestDistance
}
