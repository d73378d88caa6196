// Package policy holds the client-side password rules applied before a
// password ever leaves the console.
package policy

import (
	"regexp"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 30

	// SpecialCharacters is the fixed set a password must draw from.
	SpecialCharacters = "@$!%?&"
)

// Violation messages, in evaluation order.
const (
	MsgEmpty     = "password must not be empty"
	MsgTooShort  = "password must be at least 8 characters long"
	MsgTooLong   = "password must be at most 30 characters long"
	MsgUppercase = "password must contain at least one uppercase letter"
	MsgLowercase = "password must contain at least one lowercase letter"
	MsgDigit     = "password must contain at least one digit"
	MsgSpecial   = "password must contain at least one special character (" + SpecialCharacters + ")"
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[` + regexp.QuoteMeta(SpecialCharacters) + `]`)
)

// ValidatePassword returns every rule password breaks, in a fixed order.
// An empty password yields only MsgEmpty. Length counts characters, not
// bytes.
func ValidatePassword(password string) []string {
	if password == "" {
		return []string{MsgEmpty}
	}

	var violations []string

	n := utf8.RuneCountInString(password)
	if n < MinPasswordLength {
		violations = append(violations, MsgTooShort)
	}
	if n > MaxPasswordLength {
		violations = append(violations, MsgTooLong)
	}
	if !upperRe.MatchString(password) {
		violations = append(violations, MsgUppercase)
	}
	if !lowerRe.MatchString(password) {
		violations = append(violations, MsgLowercase)
	}
	if !digitRe.MatchString(password) {
		violations = append(violations, MsgDigit)
	}
	if !specialRe.MatchString(password) {
		violations = append(violations, MsgSpecial)
	}

	return violations
}
