// Package report serializes batch outcomes to JSON for audit.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"scentid/internal/resolver"
)

// Summary aggregates per-entry outcomes of one batch.
type Summary struct {
	Total    int `json:"total"`
	Proposed int `json:"proposed"`
	Applied  int `json:"applied"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
}

// Report is the persisted record of one resolver batch.
type Report struct {
	ID        string           `json:"id"`
	Mode      string           `json:"mode"`
	Timestamp time.Time        `json:"timestamp"`
	Dir       string           `json:"dir"`
	Summary   Summary          `json:"summary"`
	Entries   []resolver.Entry `json:"entries"`
}

// FromPlan builds a report for a computed (and possibly applied) plan. Mode
// names the command that produced it ("crossref", "rename", ...).
func FromPlan(mode string, plan *resolver.Plan) *Report {
	return &Report{
		ID:        uuid.NewString(),
		Mode:      mode,
		Timestamp: time.Now().UTC(),
		Dir:       plan.Dir,
		Summary: Summary{
			Total:    len(plan.Entries),
			Proposed: plan.Proposed(),
			Applied:  plan.Applied(),
			Failed:   plan.Failed(),
			Skipped:  plan.Skipped(),
		},
		Entries: plan.Entries,
	}
}

// WriteFile persists the report under dir and returns the written path. The
// filename embeds mode, timestamp, and a short id so batches never clobber
// each other.
func (r *Report) WriteFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure report dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s-%s.json", r.Mode, r.Timestamp.Format("20060102-150405"), shortID(r.ID))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
