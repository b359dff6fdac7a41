package utils

import "testing"

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		threshold float64
		want      bool
	}{
		{"Exact match", "cotonou", "cotonou", 0.75, true},
		{"Partial commune name", "calavi", "abomey-calavi", 0.5, true},
		{"Different cities", "paris", "cotonou", 0.75, false},
		{"Case and accents ignored", "Sèmè-Kpodji", "seme-kpodji", 0.9, true},
		{"Empty left", "", "cotonou", 0.1, false},
		{"Empty right", "cotonou", "", 0.1, false},
		{"Both empty", "", "", 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FuzzyMatch(tt.a, tt.b, tt.threshold); got != tt.want {
				t.Errorf("FuzzyMatch(%q, %q, %v) = %v, want %v", tt.a, tt.b, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestSimilarityRatio(t *testing.T) {
	if got := SimilarityRatio("cotonou", "cotonou"); got != 1.0 {
		t.Errorf("identical strings should score 1.0, got %v", got)
	}

	partial := SimilarityRatio("calavi", "abomey-calavi")
	if partial <= 0.5 || partial >= 1.0 {
		t.Errorf("partial name should score between 0.5 and 1.0, got %v", partial)
	}

	unrelated := SimilarityRatio("paris", "cotonou")
	if unrelated >= 0.5 {
		t.Errorf("unrelated names should score below 0.5, got %v", unrelated)
	}

	if SimilarityRatio("", "cotonou") != 0 {
		t.Error("empty input should score 0")
	}
}
