package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const sampleProductsJSON = `{
  "products": [
    {
      "id": 4001,
      "handle": "black-opium",
      "title": "Black Opium Eau de Parfum",
      "description": "Coffee and vanilla.",
      "images": {"main": ["images/1-main.png"], "gallery": ["images/1-alt.png"]},
      "brands": ["Yves Saint Laurent"],
      "primary_brand": "Yves Saint Laurent"
    },
    {
      "id": 4002,
      "handle": "sauvage",
      "title": "Sauvage",
      "images": {"main": []},
      "brands": ["Dior"],
      "primary_brand": "Dior"
    }
  ]
}`

func TestImportJSON(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(sampleProductsJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	count, err := store.ImportJSON(context.Background(), path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if count != 2 {
		t.Errorf("imported %d records, want 2", count)
	}

	record, err := store.GetByHandle(context.Background(), "black-opium")
	if err != nil {
		t.Fatal(err)
	}
	if record.Title != "Black Opium Eau de Parfum" {
		t.Errorf("title = %q", record.Title)
	}
	if main, _ := record.MainImage(); main != "images/1-main.png" {
		t.Errorf("main image = %q", main)
	}
	if record.ID == 4001 {
		t.Error("source ids should not be carried into the store")
	}
}

func TestImportJSONRejectsMissingHandle(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(`{"products":[{"title":"No Handle"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.ImportJSON(context.Background(), path); err == nil {
		t.Error("expected error for product without handle")
	}
}

func TestExportRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	source := filepath.Join(dir, "in.json")
	if err := os.WriteFile(source, []byte(sampleProductsJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.ImportJSON(ctx, source); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "out", "products.json")
	count, err := store.ExportJSON(ctx, target)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if count != 2 {
		t.Errorf("exported %d records, want 2", count)
	}

	second := newTestStore(t)
	if _, err := second.ImportJSON(ctx, target); err != nil {
		t.Fatalf("re-import of export: %v", err)
	}
	records, err := second.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("round trip lost records: got %d", len(records))
	}
}
