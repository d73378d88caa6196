package common

import "strings"

// WipeByteArray overwrites b with zeros. Used for secrets read from the
// terminal once they have been copied into a request.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address,
// matching how the server stores e-mails.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
