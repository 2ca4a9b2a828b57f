// Package fuzzy finds the closest registered flag name for a mistyped one,
// powering the "did you mean" hints on unknown-flag errors.
package fuzzy

import "strings"

// minInputLength is the shortest input worth suggesting for; one-letter
// typos match too many candidates to be useful.
const minInputLength = 2

// FindBestFlag returns the candidate closest to input within maxDistance
// edits, or "" when nothing qualifies. Ties prefer the candidate sharing
// the longest prefix with the input, then the shorter edit distance.
func FindBestFlag(input string, candidates []string, maxDistance int) string {
	if len(input) < minInputLength {
		return ""
	}
	input = strings.ToLower(input)

	best := ""
	bestDistance := maxDistance + 1
	bestPrefix := -1

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		d := levenshtein(input, lower, maxDistance)
		if d > maxDistance {
			continue
		}
		p := commonPrefix(input, lower)
		if p > bestPrefix || (p == bestPrefix && d < bestDistance) {
			best, bestDistance, bestPrefix = candidate, d, p
		}
	}
	return best
}

// levenshtein computes the edit distance between a and b, bailing out with
// maxDistance+1 as soon as the result is guaranteed to exceed maxDistance.
func levenshtein(a, b string, maxDistance int) int {
	if abs(len(a)-len(b)) > maxDistance {
		return maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = minOf(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > maxDistance {
			return maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minOf(a, b, c int) int {
	return min(a, min(b, c))
}
