package validation

import "regexp"

// emailPattern accepts anything of the shape local@domain.tld with no
// whitespace or extra @. Syntactic check only, no DNS lookup.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
