// Package assets discovers image files in a catalog directory and classifies
// them as numbered exports or descriptively named images.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"scentid/internal/fileutil"
)

// allowedExts are the image extensions the engine handles.
var allowedExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
	".avif": {},
}

// numberedPattern matches generically named exports: plain "7-main" or
// combo placeholders such as "kit-of-3-fragrances-7-main".
var numberedPattern = regexp.MustCompile(`(?i)^(kit-of-\d+-fragrances-)?\d+-main$`)

// comboPattern matches multi-fragrance kit placeholders.
var comboPattern = regexp.MustCompile(`(?i)^kit-of-\d+-fragrances-\d+-main$`)

// Asset is one image file discovered in the scan directory.
type Asset struct {
	Path string // absolute or scan-relative path
	Name string // base filename including extension
	Ext  string // lowercase extension including the dot
}

// Stem returns the filename without its extension.
func (a Asset) Stem() string {
	return strings.TrimSuffix(a.Name, filepath.Ext(a.Name))
}

// Numbered reports whether the asset carries a generic numbered name rather
// than a descriptive one.
func (a Asset) Numbered() bool {
	return numberedPattern.MatchString(a.Stem())
}

// Combo reports whether the asset is a multi-fragrance kit placeholder, which
// is named after every identified product rather than the principal one.
func (a Asset) Combo() bool {
	return comboPattern.MatchString(a.Stem())
}

// ContentHash returns the asset's SHA-256 content hash.
func (a Asset) ContentHash() (string, error) {
	return fileutil.HashFile(a.Path)
}

// Scan lists the image files directly inside dir, sorted by name. It never
// descends into subdirectories; the engine does not create or manage
// directory trees.
func Scan(dir string) ([]Asset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan image dir: %w", err)
	}

	list := make([]Asset, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := allowedExts[ext]; !ok {
			continue
		}
		list = append(list, Asset{
			Path: filepath.Join(dir, name),
			Name: name,
			Ext:  ext,
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// Partition splits assets into numbered and descriptive groups, preserving
// order within each group.
func Partition(list []Asset) (numbered, descriptive []Asset) {
	for _, asset := range list {
		if asset.Numbered() {
			numbered = append(numbered, asset)
		} else {
			descriptive = append(descriptive, asset)
		}
	}
	return numbered, descriptive
}

// Find returns the asset with the given base name, if present in dir.
func Find(dir, name string) (Asset, bool) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Asset{}, false
	}
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExts[ext]; !ok {
		return Asset{}, false
	}
	return Asset{Path: path, Name: name, Ext: ext}, true
}
