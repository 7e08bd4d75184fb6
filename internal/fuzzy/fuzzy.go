// Package fuzzy provides fuzzy matching of option keys
// Used by argv.Options.Suggest and the argvdump "did you mean" hint
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidate option keys by edit distance to an input key
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2,
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest finds the best matching string from candidates.
// Returns empty string if no good match found.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches finds all matching strings from candidates, sorted by quality.
// Leading dashes are ignored so "-name" can match "--name".
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	in := []rune(strings.ToLower(strings.TrimLeft(input, "-")))
	if len(in) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		c := []rune(strings.ToLower(strings.TrimLeft(candidate, "-")))

		distance := m.levenshteinDistance(in, c)
		if distance > m.maxDistance {
			continue
		}
		// Same body with a different dash prefix counts as distance 1
		if distance == 0 {
			if input == candidate {
				continue
			}
			distance = 1
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    m.calculateScore(in, c, distance),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// calculateScore computes a match quality score (0.0 to 1.0)
// Factors: edit distance, length difference, prefix matching
func (m *Matcher) calculateScore(input, candidate []rune, distance int) float64 {
	maxLen := max(len(input), len(candidate))
	if maxLen == 0 {
		return 1.0
	}

	editScore := 1.0 - (float64(distance) / float64(maxLen))

	prefixBonus := 0.0
	if prefixLen := commonPrefixLength(input, candidate); prefixLen > 0 {
		prefixBonus = float64(prefixLen) / float64(min(len(input), len(candidate))) * 0.3
	}

	lengthDiff := abs(len(input) - len(candidate))
	lengthBonus := (1.0 - float64(lengthDiff)/float64(maxLen)) * 0.2

	return min(editScore+prefixBonus+lengthBonus, 1.0)
}

// levenshteinDistance calculates edit distance between two rune slices,
// stopping early once the distance exceeds maxDistance
func (m *Matcher) levenshteinDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	previousRow := make([]int, len(a)+1)
	currentRow := make([]int, len(a)+1)
	for i := range previousRow {
		previousRow[i] = i
	}

	for i := 1; i <= len(b); i++ {
		currentRow[0] = i
		minInRow := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			currentRow[j] = min(
				currentRow[j-1]+1,
				previousRow[j]+1,
				previousRow[j-1]+cost,
			)
			minInRow = min(minInRow, currentRow[j])
		}

		if minInRow > m.maxDistance {
			return m.maxDistance + 1
		}
		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(a)]
}

func commonPrefixLength(a, b []rune) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindBestOption finds the best matching option key
func FindBestOption(input string, keys []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, keys)
}

// FindSuggestions returns up to maxSuggestions candidate keys, best first
func FindSuggestions(input string, candidates []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)

	suggestions := make([]string, 0, min(len(matches), maxSuggestions))
	for i, match := range matches {
		if i >= maxSuggestions {
			break
		}
		suggestions = append(suggestions, match.Value)
	}
	return suggestions
}
