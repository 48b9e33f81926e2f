package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.ImagesDir) == "" {
		return errors.New("paths.images_dir must be set")
	}
	if strings.TrimSpace(c.Paths.CatalogDB) == "" {
		return errors.New("paths.catalog_db must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.PhashThreshold < 0 || c.Matching.PhashThreshold > 64 {
		return errors.New("matching.phash_threshold must be between 0 and 64")
	}
	if c.Matching.HighConfidenceDistance < 0 || c.Matching.HighConfidenceDistance > c.Matching.PhashThreshold {
		return errors.New("matching.high_confidence_distance must be between 0 and matching.phash_threshold")
	}
	if c.Matching.JaccardThreshold < 0 || c.Matching.JaccardThreshold > 1 {
		return errors.New("matching.jaccard_threshold must be between 0 and 1")
	}
	if c.Matching.HashSize < 1 || c.Matching.HashSize*c.Matching.HashSize > 64 {
		return errors.New("matching.hash_size must be between 1 and 8")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
