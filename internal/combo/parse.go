package combo

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseFactor reads a factor the way a lenient numeric text field does:
// leading whitespace is skipped and the longest decimal prefix is used, so
// "1.2", " 1.2" and "1.2kN" all give 1.2. It reports false for empty,
// unparseable, infinite or zero input. Malformed text is never an error,
// it simply contributes nothing.
func ParseFactor(raw string) (float64, bool) {
	prefix := numericPrefix(raw, true)
	if prefix == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f == 0 {
		return 0, false
	}
	return f, true
}

// ParseStart reads a combination start number from free-form text. The
// leading integer prefix is used ("101.5" gives 101). Blank, non-numeric,
// out of range and zero input all give fallback.
func ParseStart(raw string, fallback int) int {
	prefix := numericPrefix(raw, false)
	if prefix == "" {
		return fallback
	}
	n, err := strconv.Atoi(prefix)
	if err != nil || n == 0 {
		return fallback
	}
	return n
}

// numericPrefix returns the longest leading run of raw (after whitespace)
// that forms a decimal number. With fractional unset only an optionally
// signed integer is accepted.
func numericPrefix(raw string, fractional bool) string {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i - intStart

	if !fractional {
		if digits == 0 {
			return ""
		}
		return s[:i]
	}

	// Fraction
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if digits > 0 || j > i+1 {
			digits += j - i - 1
			i = j
		}
	}
	if digits == 0 {
		return ""
	}

	// Exponent, only when followed by at least one digit
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
