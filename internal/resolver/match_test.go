package resolver

import (
	"testing"

	"scentid/internal/analysis"
	"scentid/internal/catalog"
	"scentid/internal/testsupport"
)

func resultFor(name, brand string) analysis.Result {
	return analysis.Result{
		Filename: "x.png",
		Mentions: []analysis.Mention{{Name: name, Brand: brand, Role: analysis.RolePrincipal}},
	}
}

func TestResolveHandle(t *testing.T) {
	r := New(testsupport.NewConfig(t), nil)

	records := []catalog.Record{
		{ID: 1, Handle: "sauvage", Title: "Sauvage Eau de Toilette", PrimaryBrand: "Dior"},
		{ID: 2, Handle: "black-opium", Title: "Black Opium Eau de Parfum", PrimaryBrand: "Yves Saint Laurent"},
		{ID: 3, Handle: "scandal", Title: "Scandal", Brands: []string{"Jean Paul Gaultier"}},
	}

	tests := []struct {
		name       string
		result     analysis.Result
		wantHandle string
		wantOK     bool
	}{
		{"title and brand", resultFor("Black Opium", "YSL"), "black-opium", true},
		{"brand list match", resultFor("Scandal", "Jean Paul Gaultier"), "scandal", true},
		{"title only still above cutoff", resultFor("Sauvage", "Unknown House"), "sauvage", true},
		{"brand equality alone exceeds cutoff", resultFor("Completely Different", "Dior"), "sauvage", true},
		{"partial name credit alone is below cutoff", resultFor("Opium Extract", ""), "", false},
		{"nothing matches", resultFor("Aventus", "Creed"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, score, ok := r.ResolveHandle(tt.result, records)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v score = %v", ok, score)
			}
			if ok && record.Handle != tt.wantHandle {
				t.Errorf("handle = %q, want %q", record.Handle, tt.wantHandle)
			}
		})
	}
}

func TestResolveHandleTieKeepsFirstSeen(t *testing.T) {
	r := New(testsupport.NewConfig(t), nil)

	records := []catalog.Record{
		{ID: 1, Handle: "n5-classic", Title: "N5", PrimaryBrand: "Chanel"},
		{ID: 2, Handle: "n5-reissue", Title: "N5", PrimaryBrand: "Chanel"},
	}

	record, _, ok := r.ResolveHandle(resultFor("N5", "Chanel"), records)
	if !ok {
		t.Fatal("expected a match")
	}
	if record.Handle != "n5-classic" {
		t.Errorf("tie broke to %q, want first-seen record", record.Handle)
	}
}

func TestResolveHandleNoPrincipal(t *testing.T) {
	r := New(testsupport.NewConfig(t), nil)
	if _, _, ok := r.ResolveHandle(analysis.Result{Filename: "x.png"}, nil); ok {
		t.Error("result without mentions must not match")
	}
}
