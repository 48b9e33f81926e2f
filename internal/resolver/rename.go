package resolver

import (
	"context"
	"path/filepath"
	"strings"

	"scentid/internal/analysis"
	"scentid/internal/assets"
	"scentid/internal/catalog"
	"scentid/internal/logging"
	"scentid/internal/similarity"
	"scentid/internal/textnorm"
)

// mainSuffix is the storefront convention marking a product's primary image.
const mainSuffix = "-main"

// PlanFromAnalysis derives rename targets from analysis results: the
// principal mention's "name---brand" slug plus the main-image suffix. Results
// whose file is missing, whose mentions were all filtered out, or whose
// mention slugifies to nothing become skip-invalid entries.
func (r *Resolver) PlanFromAnalysis(ctx context.Context, dir string, results []analysis.Result) (*Plan, error) {
	all, err := assets.Scan(dir)
	if err != nil {
		return nil, Wrap(ErrScan, "rename", "scan image directory", err)
	}
	_, descriptive := assets.Partition(all)

	plan := &Plan{Dir: dir}
	claimed := make(claims)

	for _, result := range results {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry := r.planOneFromAnalysis(dir, result, descriptive, claimed)
		if entry.Renameable() {
			claimed.take(entry.Target)
		}
		plan.Entries = append(plan.Entries, entry)
	}

	r.logger.Info("analysis rename plan computed",
		logging.String("dir", dir),
		logging.Int("results", len(results)),
		logging.Int("proposed", plan.Proposed()),
		logging.Int("skipped", plan.Skipped()))
	return plan, nil
}

func (r *Resolver) planOneFromAnalysis(dir string, result analysis.Result, descriptive []assets.Asset, claimed claims) Entry {
	entry := Entry{Source: result.Filename}

	asset, ok := assets.Find(dir, result.Filename)
	if !ok {
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = "file not found in image directory"
		return entry
	}

	principal, ok := result.Principal()
	if !ok {
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = "no usable product mention"
		return entry
	}

	base := r.deriveBaseFor(asset, result, principal)
	if base == "" {
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = "mention slugifies to an empty name"
		return entry
	}

	if existing, ok := r.similarExisting(asset, base, descriptive); ok {
		entry.Disposition = DispositionSkipExists
		entry.Target = existing.Name
		entry.Reason = "a similarly named image already exists"
		return entry
	}

	return r.finishRename(entry, dir, asset, base+mainSuffix+asset.Ext, claimed)
}

// similarExisting reports whether a descriptive image other than the source
// already carries a name token-similar to the derived base, in which case the
// rename would only manufacture a near-duplicate.
func (r *Resolver) similarExisting(source assets.Asset, base string, descriptive []assets.Asset) (assets.Asset, bool) {
	for _, candidate := range descriptive {
		if candidate.Name == source.Name {
			continue
		}
		stem := strings.TrimSuffix(candidate.Stem(), mainSuffix)
		if similarity.IsMatch(base, stem, r.cfg.Matching.JaccardThreshold) {
			return candidate, true
		}
	}
	return assets.Asset{}, false
}

// deriveBaseFor picks the filename base for one result. Multi-fragrance kit
// placeholders are named after every identified product; everything else is
// named after the principal mention alone.
func (r *Resolver) deriveBaseFor(asset assets.Asset, result analysis.Result, principal analysis.Mention) string {
	if asset.Combo() && len(result.Mentions) > 1 {
		items := make([]string, 0, len(result.Mentions))
		for _, m := range result.Mentions {
			item := m.Name
			if m.Brand != "" {
				item += " by " + m.Brand
			}
			items = append(items, item)
		}
		if base := r.norm.DescriptiveBase(items); base != "" {
			return base
		}
	}
	return r.DeriveBase(principal)
}

// DeriveBase builds the filename base for a mention: the slug of
// "name---brand" with the brand canonicalized first, or of the name alone
// when no brand was identified.
func (r *Resolver) DeriveBase(mention analysis.Mention) string {
	name := strings.TrimSpace(mention.Name)
	brand := r.norm.CanonicalBrand(mention.Brand)
	if brand == "" {
		return textnorm.Slugify(name)
	}
	return textnorm.Slugify(name + "---" + brand)
}

// PlanFromHandles renames numbered exports referenced by catalog records to
// handle-derived names: a record whose main image is "7-main.png" gains
// "<handle>-main.png". The record id is carried on the entry so the caller
// can update the catalog after a successful apply.
func (r *Resolver) PlanFromHandles(ctx context.Context, dir string, records []catalog.Record) (*Plan, error) {
	plan := &Plan{Dir: dir}
	claimed := make(claims)

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry := r.planOneFromHandle(dir, record, claimed)
		if entry.Renameable() {
			claimed.take(entry.Target)
		}
		plan.Entries = append(plan.Entries, entry)
	}

	r.logger.Info("handle rename plan computed",
		logging.String("dir", dir),
		logging.Int("records", len(records)),
		logging.Int("proposed", plan.Proposed()),
		logging.Int("skipped", plan.Skipped()))
	return plan, nil
}

func (r *Resolver) planOneFromHandle(dir string, record catalog.Record, claimed claims) Entry {
	entry := Entry{RecordID: record.ID}

	ref, ok := record.MainImage()
	if !ok {
		entry.Source = record.Handle
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = "record has no main image"
		return entry
	}
	entry.Source = filepath.Base(ref)

	asset, ok := assets.Find(dir, entry.Source)
	if !ok {
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = "file not found in image directory"
		return entry
	}
	if !asset.Numbered() {
		entry.Disposition = DispositionSkipExists
		entry.Target = asset.Name
		entry.Reason = "image already carries a descriptive name"
		return entry
	}

	base := textnorm.Slugify(record.Handle)
	if base == "" {
		entry.Disposition = DispositionSkipInvalid
		entry.Reason = "record handle slugifies to nothing"
		return entry
	}

	return r.finishRename(entry, dir, asset, base+mainSuffix+asset.Ext, claimed)
}
