package textnorm

import (
	"regexp"
	"testing"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Black Opium", "black-opium"},
		{"diacritics", "Lancôme Idôle", "lancome-idole"},
		{"ampersand", "Viktor & Rolf", "viktor-rolf"},
		{"slash and plus", "Day/Night + Travel", "day-night-travel"},
		{"underscores", "la_vie_est_belle", "la-vie-est-belle"},
		{"symbols", "N°5 Chanel", "n-5-chanel"},
		{"hyphen runs", "kit -- of  3", "kit-of-3"},
		{"leading trailing", "  -Sauvage- ", "sauvage"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if got != "" && !slugShape.MatchString(got) {
				t.Errorf("Slugify(%q) = %q, not a valid slug", tt.input, got)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Black Opium", "Lancôme", "Viktor & Rolf", "N°5", "a  b--c", ""}
	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestCanonicalBrand(t *testing.T) {
	n := Default()

	tests := []struct {
		input string
		want  string
	}{
		{"ysl", "Yves Saint Laurent"},
		{"YSL", "Yves Saint Laurent"},
		{"Lancôme", "Lancome"},
		{"lancome", "Lancome"},
		{"Viktor & Rolf", "Viktor Rolf"},
		{"Boss", "Hugo Boss"},
		{"Chloé", "Chloe"},
		{"Dior", "Dior"},
		{"  Unknown House  ", "Unknown House"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := n.CanonicalBrand(tt.input); got != tt.want {
			t.Errorf("CanonicalBrand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitNameBrand(t *testing.T) {
	n := Default()

	tests := []struct {
		name      string
		input     string
		wantName  string
		wantBrand string
	}{
		{"explicit by", "Sauvage by Dior", "Sauvage", "Dior"},
		{"by with synonym", "Libre by YSL", "Libre", "Yves Saint Laurent"},
		{"brand prefix", "Dior Sauvage", "Sauvage", "Dior"},
		{"brand suffix", "Good Girl Carolina Herrera", "Good Girl", "Carolina Herrera"},
		{"long brand wins over short", "Boss Bottled Hugo Boss", "Boss Bottled", "Hugo Boss"},
		{"multiword prefix", "Jean Paul Gaultier Scandal", "Scandal", "Jean Paul Gaultier"},
		{"brand only", "Chanel", "Chanel", "Chanel"},
		{"no known brand", "Mystery Essence", "Mystery Essence", ""},
		{"brand in middle not detected", "Eau de Dior Fraiche", "Eau de Dior Fraiche", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotBrand := n.SplitNameBrand(tt.input)
			if gotName != tt.wantName || gotBrand != tt.wantBrand {
				t.Errorf("SplitNameBrand(%q) = (%q, %q), want (%q, %q)",
					tt.input, gotName, gotBrand, tt.wantName, tt.wantBrand)
			}
		})
	}
}

func TestSplitNameBrandIsolatedTables(t *testing.T) {
	n := New(Tables{
		Synonyms: map[string]string{"acme perfumes": "Acme"},
		Known:    []string{"Acme"},
	})

	name, brand := n.SplitNameBrand("Acme Thunder")
	if name != "Thunder" || brand != "Acme" {
		t.Errorf("SplitNameBrand = (%q, %q), want (Thunder, Acme)", name, brand)
	}

	// The fixture tables must not know the default brands.
	name, brand = n.SplitNameBrand("Dior Sauvage")
	if brand != "" || name != "Dior Sauvage" {
		t.Errorf("SplitNameBrand = (%q, %q), want (Dior Sauvage, \"\")", name, brand)
	}
}

func TestDescriptiveBase(t *testing.T) {
	n := Default()

	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{
			name:  "three items",
			items: []string{"Black Opium by YSL", "Miss Dior by Dior", "N°5 by Chanel"},
			want:  "black-opium-yves-saint-laurent-miss-dior-dior-n-5-chanel",
		},
		{
			name:  "item without brand",
			items: []string{"Mystery Essence"},
			want:  "mystery-essence",
		},
		{
			name:  "unusable items dropped",
			items: []string{"", "!!!", "Sauvage by Dior"},
			want:  "sauvage-dior",
		},
		{
			name:  "nothing usable",
			items: []string{"", "   "},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.DescriptiveBase(tt.items); got != tt.want {
				t.Errorf("DescriptiveBase(%v) = %q, want %q", tt.items, got, tt.want)
			}
		})
	}
}
