package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scentid/internal/config"
	"scentid/internal/testsupport"
)

// setupCLIConfig writes a config file wired to per-test temp directories and
// returns it with its path.
func setupCLIConfig(t *testing.T) (*config.Config, string) {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf(
		"[paths]\nimages_dir = %q\nanalysis_dir = %q\nreport_dir = %q\nlog_dir = %q\ncatalog_db = %q\n",
		cfg.Paths.ImagesDir,
		cfg.Paths.AnalysisDir,
		cfg.Paths.ReportDir,
		cfg.Paths.LogDir,
		cfg.Paths.CatalogDB,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return cfg, path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
