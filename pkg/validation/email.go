package validation

import (
	"regexp"
	"strings"
)

// emailPattern accepts localpart@domain.tld where none of the three parts
// contain '@' or whitespace. Deliberately stricter than RFC 5322: "a@b"
// (no dot in the domain) is rejected.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail reports whether email has the syntactic shape
// localpart@domain.tld. Empty and whitespace-only input is invalid.
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailPattern.MatchString(email)
}
