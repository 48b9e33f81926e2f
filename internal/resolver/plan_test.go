package resolver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveTargetFreeName(t *testing.T) {
	dir := t.TempDir()
	target, disposition, err := resolveTarget(dir, "7-main.png", "chanel-n5-main.png", make(claims))
	if err != nil {
		t.Fatalf("resolveTarget: %v", err)
	}
	if target != "chanel-n5-main.png" || disposition != DispositionApply {
		t.Errorf("got %q/%q, want free name applied", target, disposition)
	}
}

func TestResolveTargetDiskCollision(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "chanel-n5-main.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	target, disposition, err := resolveTarget(dir, "7-main.png", "chanel-n5-main.png", make(claims))
	if err != nil {
		t.Fatalf("resolveTarget: %v", err)
	}
	if target != "chanel-n5-main-2.png" || disposition != DispositionCollision {
		t.Errorf("got %q/%q, want -2 suffix", target, disposition)
	}
}

func TestResolveTargetClaimCollision(t *testing.T) {
	dir := t.TempDir()
	claimed := make(claims)
	claimed.take("chanel-n5-main.png")
	claimed.take("chanel-n5-main-2.png")

	target, disposition, err := resolveTarget(dir, "7-main.png", "chanel-n5-main.png", claimed)
	if err != nil {
		t.Fatalf("resolveTarget: %v", err)
	}
	if target != "chanel-n5-main-3.png" || disposition != DispositionCollision {
		t.Errorf("got %q/%q, want -3 suffix", target, disposition)
	}
}

func TestResolveTargetSourceIsNotACollision(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sauvage-dior-main.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Renaming a file to its own name is handled upstream as skip-exists; the
	// allocator itself must not treat the source as a conflicting neighbor.
	target, disposition, err := resolveTarget(dir, "sauvage-dior-main.png", "sauvage-dior-main.png", make(claims))
	if err != nil {
		t.Fatalf("resolveTarget: %v", err)
	}
	if target != "sauvage-dior-main.png" || disposition != DispositionApply {
		t.Errorf("got %q/%q", target, disposition)
	}
}

func TestPlanCounters(t *testing.T) {
	plan := &Plan{Entries: []Entry{
		{Disposition: DispositionApply, Applied: true},
		{Disposition: DispositionCollision, ApplyError: "permission denied"},
		{Disposition: DispositionSkipExists},
		{Disposition: DispositionSkipInvalid},
	}}

	if got := plan.Proposed(); got != 2 {
		t.Errorf("Proposed = %d, want 2", got)
	}
	if got := plan.Skipped(); got != 2 {
		t.Errorf("Skipped = %d, want 2", got)
	}
	if got := plan.Applied(); got != 1 {
		t.Errorf("Applied = %d, want 1", got)
	}
	if got := plan.Failed(); got != 1 {
		t.Errorf("Failed = %d, want 1", got)
	}
}
