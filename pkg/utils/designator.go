package utils

import (
	"strings"
	"unicode"
)

// Designator is a flight number split into its IATA parts.
type Designator struct {
	Carrier string
	Number  string
	Suffix  string
}

// ParseDesignator splits free-form flight numbers like "AA123", "aa 123"
// or "DL456A" into carrier code, numeric flight number and optional
// operational suffix. It is tolerant about spacing and case; strict shape
// validation (exactly two letters, digits only) stays with the gateway.
func ParseDesignator(raw string) Designator {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))

	var d Designator
	i := 0
	for i < len(s) && unicode.IsLetter(rune(s[i])) {
		i++
	}
	d.Carrier = s[:i]

	j := i
	for j < len(s) && unicode.IsDigit(rune(s[j])) {
		j++
	}
	d.Number = s[i:j]
	d.Suffix = s[j:]

	// IATA carrier codes are two characters; longer prefixes ("AAL123")
	// are truncated the way the upstream API expects.
	if len(d.Carrier) > 2 {
		d.Carrier = d.Carrier[:2]
	}
	return d
}
