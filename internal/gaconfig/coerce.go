package gaconfig

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// decimalLiteral matches a complete decimal numeric literal:
// optional sign, digits with optional fraction (or a bare fraction), optional exponent.
var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// ParseNumeric reports whether s is, in full, a numeric literal and returns its value.
//
// Rules:
//   - surrounding whitespace is ignored, but an empty or blank value is not a number
//   - decimal literals may carry a sign, a fraction and an exponent ("1e3" is 1000)
//   - unsigned 0x / 0o / 0b integer literals are accepted
//   - partial matches ("12px", "1_000") are rejected
//   - literals that do not produce a finite value are rejected
func ParseNumeric(s string) (float64, bool) {
	t := strings.TrimFunc(s, isFormSpace)
	if t == "" {
		return 0, false
	}

	if len(t) > 2 && t[0] == '0' {
		base := 0
		switch t[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := t[2:]
			if strings.ContainsAny(digits, "_+-") {
				return 0, false
			}
			n, err := strconv.ParseUint(digits, base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}

	if !decimalLiteral.MatchString(t) {
		return 0, false
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Coerce returns the numeric value of s when s is a numeric literal,
// otherwise s unchanged.
func Coerce(s string) any {
	if f, ok := ParseNumeric(s); ok {
		return f
	}
	return s
}

// isFormSpace matches the whitespace a browser strips when converting a
// string to a number, including the byte-order mark.
func isFormSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
