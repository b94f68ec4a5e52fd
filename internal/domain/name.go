package domain

import "strings"

// ParseFullName splits a full name into its first and last name components.
// Blank tokens are discarded before counting. A single token yields an empty
// last name. Anything other than one or two tokens is rejected.
func ParseFullName(fullName string) (first, last string, err error) {
	tokens := strings.Fields(fullName)
	switch len(tokens) {
	case 1:
		return tokens[0], "", nil
	case 2:
		return tokens[0], tokens[1], nil
	default:
		return "", "", NewDomainError(ErrFullNameFormat, "expected 1 or 2 name tokens", fullName)
	}
}
