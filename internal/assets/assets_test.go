package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestScanFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-main.png")
	writeFile(t, dir, "a-main.jpg")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "c-main.webp")
	writeFile(t, dir, "d-main.avif")
	if err := os.Mkdir(filepath.Join(dir, "thumbs"), 0o755); err != nil {
		t.Fatal(err)
	}

	list, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{"a-main.jpg", "b-main.png", "c-main.webp", "d-main.avif"}
	if len(list) != len(want) {
		t.Fatalf("got %d assets, want %d: %+v", len(list), len(want), list)
	}
	for i, name := range want {
		if list[i].Name != name {
			t.Errorf("asset[%d] = %q, want %q", i, list[i].Name, name)
		}
	}
}

func TestScanMissingDir(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestNumbered(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"7-main.png", true},
		{"123-main.jpg", true},
		{"kit-of-3-fragrances-7-main.png", true},
		{"KIT-OF-3-FRAGRANCES-12-MAIN.PNG", true},
		{"kit-of-5-fragrances-2-main.webp", true},
		{"black-opium-yves-saint-laurent-main.png", false},
		{"sauvage-dior-main.jpg", false},
		{"7-gallery.png", false},
		{"main.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := Asset{Name: tt.name, Ext: filepath.Ext(tt.name)}
			if got := asset.Numbered(); got != tt.want {
				t.Errorf("Numbered(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestCombo(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"kit-of-3-fragrances-7-main.png", true},
		{"KIT-OF-5-FRAGRANCES-1-MAIN.JPG", true},
		{"7-main.png", false},
		{"sauvage-dior-main.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := Asset{Name: tt.name, Ext: filepath.Ext(tt.name)}
			if got := asset.Combo(); got != tt.want {
				t.Errorf("Combo(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "7-main.png")
	writeFile(t, dir, "kit-of-3-fragrances-2-main.png")
	writeFile(t, dir, "sauvage-dior-main.png")

	list, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	numbered, descriptive := Partition(list)

	if len(numbered) != 2 {
		t.Errorf("got %d numbered, want 2: %+v", len(numbered), numbered)
	}
	if len(descriptive) != 1 || descriptive[0].Name != "sauvage-dior-main.png" {
		t.Errorf("descriptive = %+v", descriptive)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sauvage-dior-main.png")
	writeFile(t, dir, "notes.txt")

	if asset, ok := Find(dir, "sauvage-dior-main.png"); !ok || asset.Ext != ".png" {
		t.Errorf("Find existing = (%+v, %v)", asset, ok)
	}
	if _, ok := Find(dir, "absent.png"); ok {
		t.Error("Find should miss absent file")
	}
	if _, ok := Find(dir, "notes.txt"); ok {
		t.Error("Find should reject non-image extension")
	}
}

func TestContentHash(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a-main.png")

	asset, ok := Find(dir, "a-main.png")
	if !ok {
		t.Fatal("asset not found")
	}
	hash, err := asset.ContentHash()
	if err != nil {
		t.Fatalf("ContentHash: %v", err)
	}
	if hash == "" {
		t.Error("empty hash")
	}
}
