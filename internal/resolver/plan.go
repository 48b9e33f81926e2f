package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Disposition describes what the resolver decided for one plan entry.
type Disposition string

const (
	// DispositionApply marks a rename ready to be applied.
	DispositionApply Disposition = "apply"
	// DispositionSkipExists marks an asset already carrying its target name.
	DispositionSkipExists Disposition = "skip-exists"
	// DispositionSkipInvalid marks an asset with no usable identity; the file
	// is left untouched and the reason is recorded.
	DispositionSkipInvalid Disposition = "skip-invalid"
	// DispositionCollision marks a rename whose desired name was taken and
	// was suffixed to a free one.
	DispositionCollision Disposition = "collision-resolved"
)

// Entry is one asset's outcome within a plan.
type Entry struct {
	Source      string      `json:"source"`
	Target      string      `json:"target,omitempty"`
	Disposition Disposition `json:"disposition"`
	Confidence  string      `json:"confidence,omitempty"`
	Distance    int         `json:"distance,omitempty"`
	ExactMatch  bool        `json:"exact_match,omitempty"`
	Reason      string      `json:"reason,omitempty"`
	RecordID    int64       `json:"record_id,omitempty"`
	Applied     bool        `json:"applied,omitempty"`
	ApplyError  string      `json:"apply_error,omitempty"`
}

// Renameable reports whether the entry proposes a filesystem change.
func (e Entry) Renameable() bool {
	return e.Disposition == DispositionApply || e.Disposition == DispositionCollision
}

// Plan is a computed batch of entries for one image directory. No two entries
// share a final target name.
type Plan struct {
	Dir     string  `json:"dir"`
	Entries []Entry `json:"entries"`
}

// Proposed counts entries that propose a rename.
func (p *Plan) Proposed() int {
	count := 0
	for _, entry := range p.Entries {
		if entry.Renameable() {
			count++
		}
	}
	return count
}

// Skipped counts entries left untouched.
func (p *Plan) Skipped() int {
	count := 0
	for _, entry := range p.Entries {
		if entry.Disposition == DispositionSkipExists || entry.Disposition == DispositionSkipInvalid {
			count++
		}
	}
	return count
}

// Applied counts entries whose rename succeeded.
func (p *Plan) Applied() int {
	count := 0
	for _, entry := range p.Entries {
		if entry.Applied {
			count++
		}
	}
	return count
}

// Failed counts entries whose rename was attempted and failed.
func (p *Plan) Failed() int {
	count := 0
	for _, entry := range p.Entries {
		if entry.ApplyError != "" {
			count++
		}
	}
	return count
}

// claims tracks target names already assigned earlier in the same plan, so
// collision resolution sees both the disk state and pending renames.
type claims map[string]struct{}

func (c claims) take(name string) { c[name] = struct{}{} }

func (c claims) taken(name string) bool {
	_, ok := c[name]
	return ok
}

// maxCollisionSuffix bounds the suffix search; a directory holding this many
// same-named variants is malformed input.
const maxCollisionSuffix = 10000

// resolveTarget picks a collision-free final name for desired within dir.
// Names already on disk (other than source itself) and names claimed earlier
// in the plan both count as taken; numeric suffixes -2, -3, ... are inserted
// before the extension until a free name is found.
func resolveTarget(dir, source, desired string, claimed claims) (string, Disposition, error) {
	if !nameTaken(dir, source, desired, claimed) {
		return desired, DispositionApply, nil
	}

	ext := filepath.Ext(desired)
	stem := strings.TrimSuffix(desired, ext)
	for n := 2; n <= maxCollisionSuffix; n++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if !nameTaken(dir, source, candidate, claimed) {
			return candidate, DispositionCollision, nil
		}
	}
	return "", DispositionSkipInvalid, fmt.Errorf("no free name for %s after %d attempts", desired, maxCollisionSuffix)
}

func nameTaken(dir, source, name string, claimed claims) bool {
	if claimed.taken(name) {
		return true
	}
	if name == source {
		return false
	}
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
