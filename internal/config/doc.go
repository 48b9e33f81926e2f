// Package config loads, normalizes, and validates scentid's TOML
// configuration.
//
// Configuration sections by subsystem:
//   - Paths: image/analysis/report directories, log dir, catalog database
//   - Matching: perceptual-hash and Jaccard acceptance thresholds
//   - Brands: synonym table and known-brand list overrides
//   - Logging: log format and level
//
// Load applies defaults, expands ~ in every path field, and validates the
// result, so the rest of the program never sees a half-formed Config.
package config
