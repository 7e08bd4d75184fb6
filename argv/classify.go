package argv

import (
	"unicode"
	"unicode/utf8"
)

// IsOption reports whether token is an option, i.e. starts with a dash.
// Anything after the leading dash is irrelevant: "-", "--" and "-5" are all
// options. The empty string is not.
func IsOption(token string) bool {
	return len(token) > 0 && token[0] == '-'
}

// isWordRune matches the \w class: letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isClustered reports whether token is one dash followed by at least two
// word runes. Whatever follows those two runes is not inspected.
func isClustered(token string) bool {
	if len(token) < 3 || token[0] != '-' {
		return false
	}
	rest := token[1:]
	for range 2 {
		r, size := utf8.DecodeRuneInString(rest)
		if !isWordRune(r) {
			return false
		}
		rest = rest[size:]
	}
	return true
}

// stripAppSuffix removes the first ".<word runes>" run from token.
// ok is false when token has no such run.
func stripAppSuffix(token string) (app string, ok bool) {
	for i := 0; i < len(token); i++ {
		if token[i] != '.' {
			continue
		}
		end := i + 1
		for end < len(token) {
			r, size := utf8.DecodeRuneInString(token[end:])
			if !isWordRune(r) {
				break
			}
			end += size
		}
		if end > i+1 {
			return token[:i] + token[end:], true
		}
	}
	return token, false
}
