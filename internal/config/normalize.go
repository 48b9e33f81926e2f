package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		name     string
		value    *string
		fallback string
	}{
		{"paths.images_dir", &c.Paths.ImagesDir, defaultImagesDir},
		{"paths.analysis_dir", &c.Paths.AnalysisDir, defaultAnalysisDir},
		{"paths.report_dir", &c.Paths.ReportDir, defaultReportDir},
		{"paths.log_dir", &c.Paths.LogDir, defaultLogDir},
		{"paths.catalog_db", &c.Paths.CatalogDB, defaultCatalogDB},
	}
	for _, field := range fields {
		if strings.TrimSpace(*field.value) == "" {
			*field.value = field.fallback
		}
		expanded, err := ExpandPath(*field.value)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizeMatching() {
	if c.Matching.PhashThreshold == 0 {
		c.Matching.PhashThreshold = defaultPhashThreshold
	}
	if c.Matching.HighConfidenceDistance == 0 {
		c.Matching.HighConfidenceDistance = defaultHighConfidenceDistance
	}
	if c.Matching.JaccardThreshold == 0 {
		c.Matching.JaccardThreshold = defaultJaccardThreshold
	}
	if c.Matching.HashSize == 0 {
		c.Matching.HashSize = defaultHashSize
	}
}

func (c *Config) normalizeLogging() {
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaultLogFormat
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
}
