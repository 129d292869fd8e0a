package valueobject

import "strings"

// Lengths of Brazilian tax IDs once punctuation is removed.
const (
	CPFLength  = 11
	CNPJLength = 14
)

// NormalizeDocument strips the usual punctuation from a CPF or CNPJ and
// reports whether what remains is one of them. An empty input is valid.
func NormalizeDocument(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '/' || r == ' ':
		default:
			return "", false
		}
	}
	digits := b.String()
	switch len(digits) {
	case 0, CPFLength, CNPJLength:
		return digits, true
	}
	return "", false
}
