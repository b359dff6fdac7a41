package utils

import "strings"

// FuzzyMatch reports whether the similarity ratio between a and b reaches the
// given threshold. Inputs are normalized first; an empty input never matches,
// whatever the threshold.
func FuzzyMatch(a, b string, threshold float64) bool {
	a = Normalize(a)
	b = Normalize(b)
	if a == "" || b == "" {
		return false
	}
	return SimilarityRatio(a, b) >= threshold
}

// SimilarityRatio scores string similarity in [0, 1]. Identical strings score
// 1.0. When one string contains the other ("calavi" in "abomey-calavi") the
// score is 2*len(short)/(len(a)+len(b)), which keeps partial place names
// above typical thresholds; otherwise it is the normalized edit distance
// 1 - lev/maxlen, which tolerates typos but keeps distinct city names apart.
func SimilarityRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}

	ra := []rune(a)
	rb := []rune(b)

	short := len(ra)
	if len(rb) < short {
		short = len(rb)
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 2.0 * float64(short) / float64(len(ra)+len(rb))
	}

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	return 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
}

// levenshtein computes the edit distance with a single-row DP.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr := make([]int, len(b)+1)
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev = curr
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
