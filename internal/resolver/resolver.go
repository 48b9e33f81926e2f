package resolver

import (
	"log/slog"

	"scentid/internal/config"
	"scentid/internal/logging"
	"scentid/internal/phash"
	"scentid/internal/textnorm"
)

// Resolver computes rename and catalog-match plans for an image directory.
type Resolver struct {
	cfg    *config.Config
	norm   *textnorm.Normalizer
	hasher *phash.Hasher
	logger *slog.Logger
}

// New constructs a Resolver. Config brand tables extend the built-in
// defaults; they never replace them.
func New(cfg *config.Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	tables := textnorm.DefaultTables()
	for key, value := range cfg.Brands.Synonyms {
		tables.Synonyms[key] = value
	}
	tables.Known = append(tables.Known, cfg.Brands.Known...)

	return &Resolver{
		cfg:    cfg,
		norm:   textnorm.New(tables),
		hasher: phash.NewHasher(cfg.Matching.HashSize),
		logger: logger.With(logging.String("component", "resolver")),
	}
}
