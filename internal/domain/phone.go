package domain

import "strings"

// phoneDigits is the number of digits required after the leading "+".
const phoneDigits = 11

// NormalizePhone reduces a raw phone string to its canonical form by removing
// every character that is not a digit, keeping a single leading "+".
// The operation preserves digit order and is idempotent.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(phoneDigits + 1)
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone reports whether canonical is a "+" followed by exactly 11
// digits and nothing else.
func IsValidPhone(canonical string) bool {
	if len(canonical) != phoneDigits+1 || canonical[0] != '+' {
		return false
	}
	for _, r := range canonical[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
