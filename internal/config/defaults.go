package config

const (
	defaultImagesDir   = "~/.local/share/scentid/images"
	defaultAnalysisDir = "~/.local/share/scentid/analysis"
	defaultReportDir   = "~/.local/share/scentid/reports"
	defaultLogDir      = "~/.local/share/scentid/logs"
	defaultCatalogDB   = "~/.local/share/scentid/catalog.db"

	defaultPhashThreshold         = 10
	defaultHighConfidenceDistance = 5
	defaultJaccardThreshold       = 0.6
	defaultHashSize               = 8

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ImagesDir:   defaultImagesDir,
			AnalysisDir: defaultAnalysisDir,
			ReportDir:   defaultReportDir,
			LogDir:      defaultLogDir,
			CatalogDB:   defaultCatalogDB,
		},
		Matching: Matching{
			PhashThreshold:         defaultPhashThreshold,
			HighConfidenceDistance: defaultHighConfidenceDistance,
			JaccardThreshold:       defaultJaccardThreshold,
			HashSize:               defaultHashSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
