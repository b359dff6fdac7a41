package service

import "testing"

func TestGetSynonyms(t *testing.T) {
	t.Run("Concert maps to the music group", func(t *testing.T) {
		synonyms := GetSynonyms("concert")
		for _, want := range []string{"concert", "musique", "live"} {
			if !containsString(synonyms, want) {
				t.Errorf("GetSynonyms(\"concert\") = %v, missing %q", synonyms, want)
			}
		}
	})

	t.Run("Football maps to the sport group", func(t *testing.T) {
		synonyms := GetSynonyms("football")
		if !containsString(synonyms, "foot") && !containsString(synonyms, "football") {
			t.Errorf("GetSynonyms(\"football\") = %v, expected foot or football", synonyms)
		}
	})

	t.Run("Accents are ignored", func(t *testing.T) {
		synonyms := GetSynonyms("Théâtre")
		if !containsString(synonyms, "culture") {
			t.Errorf("GetSynonyms(\"Théâtre\") = %v, missing culture", synonyms)
		}
	})

	t.Run("Unknown term maps to itself", func(t *testing.T) {
		synonyms := GetSynonyms("xyz123")
		if len(synonyms) < 1 || !containsString(synonyms, "xyz123") {
			t.Errorf("GetSynonyms(\"xyz123\") = %v, want singleton with the term", synonyms)
		}
	})

	t.Run("Empty term", func(t *testing.T) {
		if synonyms := GetSynonyms(" "); synonyms != nil {
			t.Errorf("GetSynonyms(\" \") = %v, want nil", synonyms)
		}
	})
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string // any of these is acceptable
	}{
		{"Jazz concert", "Concert de jazz à Cotonou", []string{"musique"}},
		{"DJ night", "Soirée DJ au club", []string{"musique", "soiree"}},
		{"Football match", "Match de football", []string{"sport"}},
		{"Marathon", "Marathon de Cotonou", []string{"sport"}},
		{"Art exhibition", "Exposition d'art contemporain", []string{"culture"}},
		{"Theatre", "Pièce de théâtre", []string{"culture"}},
		{"No category", "Événement spécial", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectCategory(tt.text)
			if !containsString(tt.want, got) {
				t.Errorf("DetectCategory(%q) = %q, want one of %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectCategoryWordBoundaries(t *testing.T) {
	// "art" must not fire inside longer words.
	if got := DetectCategory("Rencontre au quartier Zongo"); got != "" {
		t.Errorf("DetectCategory should not match keywords inside words, got %q", got)
	}
}
