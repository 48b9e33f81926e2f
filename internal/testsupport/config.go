// Package testsupport provides per-test configuration and image fixtures.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"scentid/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The images directory is created so rename tests can populate it directly.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ImagesDir = filepath.Join(base, "images")
	cfg.Paths.AnalysisDir = filepath.Join(base, "analysis")
	cfg.Paths.ReportDir = filepath.Join(base, "reports")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.CatalogDB = filepath.Join(base, "catalog.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	for _, dir := range []string{cfg.Paths.ImagesDir, cfg.Paths.AnalysisDir, cfg.Paths.ReportDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("create test dir %s: %v", dir, err)
		}
	}
	return &cfg
}

// WithPhashThreshold overrides the perceptual acceptance distance.
func WithPhashThreshold(threshold int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Matching.PhashThreshold = threshold
	}
}
