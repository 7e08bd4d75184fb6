package argv

import (
	"github.com/dzonerzy/go-argv/internal/intern"
)

// Normalize expands clustered short options into one option per rune.
//
// A token is clustered when it is a single dash followed by at least two word
// runes; every rune after the dash then becomes its own "-<rune>" token, so
// "-lar" turns into "-l", "-a", "-r" and "-ab=c" into "-a", "-b", "-=", "-c".
// Long options ("--name"), single short options ("-x") and positionals pass
// through unchanged. The input slice is not modified.
func Normalize(tokens []string) []string {
	return appendNormalized(make([]string, 0, len(tokens)), tokens)
}

// appendNormalized appends the normalized form of tokens to dst.
func appendNormalized(dst, tokens []string) []string {
	for _, tok := range tokens {
		if !isClustered(tok) {
			dst = append(dst, tok)
			continue
		}
		for _, r := range tok[1:] {
			dst = append(dst, intern.InternShort(r))
		}
	}
	return dst
}

// expandedLen returns how many tokens tok becomes after normalization.
func expandedLen(tok string) int {
	if !isClustered(tok) {
		return 1
	}
	n := 0
	for range tok[1:] {
		n++
	}
	return n
}
