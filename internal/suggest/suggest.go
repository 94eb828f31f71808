package suggest

import (
	"strings"
	"unicode"
)

// DefaultThreshold is the minimum similarity for Closest to report a match.
const DefaultThreshold = 0.7

// Distance returns the edit distance between a and b, counted in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag, row[i] = row[i], next
		}
	}

	return row[len(ra)]
}

// Similarity scores two identifiers between 0 and 1 after normalizing them.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)

	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(na, nb))/float64(longest)
}

// Normalize lowercases s and drops '_', '-' and spaces.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Closest returns the candidate most similar to name, provided it scores at
// least threshold. Exact matches are never suggested. Ties keep the earliest
// candidate.
func Closest(name string, candidates []string, threshold float64) (string, bool) {
	best, bestScore := "", threshold
	found := false

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score > bestScore || (!found && score == bestScore) {
			best, bestScore, found = c, score, true
		}
	}

	return best, found
}
