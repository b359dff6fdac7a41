package service

import (
	"strings"
	"unicode"

	"agenda/internal/utils"
)

// categoryGroup maps a canonical category to the keywords and colloquial
// variants that imply it. Upstream extraction produces open strings, not a
// closed enum, so matching goes through this table instead of requiring an
// exact label. Order matters: DetectCategory returns the first group hit.
type categoryGroup struct {
	Name     string
	Keywords []string
}

var categoryGroups = []categoryGroup{
	{"musique", []string{"musique", "concert", "live", "jazz", "dj", "afrobeat", "rap", "slam", "chorale", "orchestre"}},
	{"sport", []string{"sport", "football", "foot", "basketball", "basket", "match", "marathon", "course", "tournoi", "competition"}},
	{"culture", []string{"culture", "exposition", "art", "theatre", "spectacle", "danse", "cinema", "film", "vernissage", "musee", "patrimoine"}},
	{"festival", []string{"festival"}},
	{"soiree", []string{"soiree", "fete", "club", "afterwork", "networking", "gala"}},
	{"conference", []string{"conference", "seminaire", "formation", "atelier", "workshop", "masterclass"}},
	{"gastronomie", []string{"gastronomie", "cuisine", "degustation", "marche", "brunch"}},
	{"famille", []string{"famille", "enfants", "jeunesse", "education"}},
	{"business", []string{"business", "entrepreneuriat", "startup", "tech", "innovation"}},
	{"religion", []string{"religion", "spiritualite", "ceremonie", "culte"}},
	{"bien-etre", []string{"bien-etre", "yoga", "fitness", "beaute", "mode", "lifestyle"}},
}

// GetSynonyms returns the set of terms equivalent to the given one: the term
// itself, its canonical category and the other keywords of that category.
// Unknown terms map to a singleton containing just themselves.
func GetSynonyms(term string) []string {
	norm := utils.Normalize(term)
	if norm == "" {
		return nil
	}

	for _, group := range categoryGroups {
		for _, kw := range group.Keywords {
			if kw == norm {
				out := make([]string, 0, len(group.Keywords)+1)
				out = append(out, group.Keywords...)
				if group.Name != norm && !containsString(out, group.Name) {
					out = append(out, group.Name)
				}
				return out
			}
		}
	}

	return []string{norm}
}

// DetectCategory scans free text for known category keywords and returns the
// canonical category of the first match, or "" when nothing is recognized.
func DetectCategory(text string) string {
	tokens := tokenSet(text)
	if len(tokens) == 0 {
		return ""
	}

	for _, group := range categoryGroups {
		for _, kw := range group.Keywords {
			if _, ok := tokens[kw]; ok {
				return group.Name
			}
		}
	}

	return ""
}

// tokenSet splits normalized text into word tokens. Splitting on non-letter
// runes keeps short keywords like "art" from matching inside longer words.
func tokenSet(text string) map[string]struct{} {
	fields := strings.FieldsFunc(utils.Normalize(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-'
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
		// "bien-etre" stays whole, but its halves are tokens too.
		if strings.Contains(f, "-") {
			for _, part := range strings.Split(f, "-") {
				if part != "" {
					set[part] = struct{}{}
				}
			}
		}
	}
	return set
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
