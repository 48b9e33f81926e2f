package similarity

import (
	"math"
	"testing"
)

func TestJaccardIdentity(t *testing.T) {
	set := TokenSet("black-opium-yves-saint-laurent")
	if got := Jaccard(set, set); got != 1.0 {
		t.Errorf("Jaccard(A, A) = %v, want 1.0", got)
	}
}

func TestJaccardEmpty(t *testing.T) {
	full := TokenSet("sauvage-dior")
	empty := Set{}

	if got := Jaccard(full, empty); got != 0.0 {
		t.Errorf("Jaccard(A, empty) = %v, want 0.0", got)
	}
	if got := Jaccard(empty, full); got != 0.0 {
		t.Errorf("Jaccard(empty, A) = %v, want 0.0", got)
	}
	if got := Jaccard(empty, empty); got != 0.0 {
		t.Errorf("Jaccard(empty, empty) = %v, want 0.0", got)
	}
}

func TestJaccardSymmetric(t *testing.T) {
	a := TokenSet("bleu-de-chanel")
	b := TokenSet("chanel-bleu-intense")

	if ab, ba := Jaccard(a, b), Jaccard(b, a); ab != ba {
		t.Errorf("Jaccard not symmetric: %v != %v", ab, ba)
	}
}

func TestJaccardPartial(t *testing.T) {
	a := TokenSet("black-opium-ysl")
	b := TokenSet("black-opium-intense")

	got := Jaccard(a, b)
	want := 2.0 / 4.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Jaccard = %v, want %v", got, want)
	}
}

func TestTokenSetStripsBoilerplate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"combo prefix", "combo-3-perfumes-sauvage-dior", []string{"sauvage", "dior"}},
		{"combo de prefix", "combo-de-3-perfumes-bleu-chanel", []string{"bleu", "chanel"}},
		{"parfums prefix", "combo-2-parfums-invictus", []string{"invictus"}},
		{"no prefix", "miss-dior", []string{"miss", "dior"}},
		{"raw text normalized", "Miss Dior & Co", []string{"miss", "dior", "co"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenSet(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("TokenSet(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for _, token := range tt.want {
				if _, ok := got[token]; !ok {
					t.Errorf("TokenSet(%q) missing token %q", tt.input, token)
				}
			}
		})
	}
}

func TestIsMatch(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		threshold float64
		want      bool
	}{
		{"identical", "sauvage-dior", "sauvage-dior", 0, true},
		{"prefix folded", "combo-3-perfumes-sauvage-dior", "sauvage-dior", 0, true},
		{"disjoint", "sauvage-dior", "bleu-chanel", 0, false},
		{"below threshold", "black-opium-ysl", "black-opium-intense", 0, false},
		{"custom threshold accepts", "black-opium-ysl", "black-opium-intense", 0.4, true},
		{"empty never matches", "", "sauvage-dior", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMatch(tt.a, tt.b, tt.threshold); got != tt.want {
				t.Errorf("IsMatch(%q, %q, %v) = %v, want %v", tt.a, tt.b, tt.threshold, got, tt.want)
			}
		})
	}
}
