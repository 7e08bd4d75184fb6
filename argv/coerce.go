package argv

import (
	"strconv"
	"strings"
)

// Coerce converts an option value to its best-fit scalar.
//
//   - one or more ASCII digits: Int ("42" -> 42, "007" -> 7)
//   - digits, a dot and exactly one digit: Float ("3.1" -> 3.1)
//   - anything else: String, unchanged
//
// "3.14" is deliberately left as a String; only a single fractional digit is
// recognised. One trailing newline is tolerated by both numeric forms. Digit
// runs too large for int64 fall back to String. Coerce never fails.
func Coerce(token string) Value {
	body := strings.TrimSuffix(token, "\n")

	if isDigits(body) {
		if n, err := strconv.ParseInt(body, 10, 64); err == nil {
			return IntValue(n)
		}
		return StringValue(token)
	}

	if isShortDecimal(body) {
		if f, err := strconv.ParseFloat(body, 64); err == nil {
			return FloatValue(f)
		}
	}

	return StringValue(token)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isShortDecimal matches \d+\.\d
func isShortDecimal(s string) bool {
	n := len(s)
	if n < 3 || s[n-2] != '.' {
		return false
	}
	return isDigits(s[:n-2]) && isDigits(s[n-1:])
}
