package validation

import (
	"unicode"

	"github.com/Archemasachika7/Algorythm-auth/internal/models"
)

// Policy controls how strictly passwords are validated.
// The zero value is the lenient policy: length plus character classes.
// Strict additionally rejects repeated-character and sequential-letter runs.
type Policy struct {
	Strict bool
}

// DefaultPolicy is the canonical lenient policy.
var DefaultPolicy = Policy{}

const minPasswordLength = 8

// User-facing password validation messages.
const (
	MsgPasswordRequired   = "Password is required"
	MsgPasswordTooShort   = "Password must be at least 8 characters long"
	MsgPasswordComplexity = "Password must include a lowercase letter, an uppercase letter and a number"
	MsgPasswordRepeated   = "Password must not repeat the same character 3 or more times"
	MsgPasswordSequential = "Password must not contain sequential letters"
)

// ValidatePassword checks a password against the policy. It never short-circuits
// into an error value; failures come back as a FieldResult with a message.
func ValidatePassword(s string, p Policy) models.FieldResult {
	if s == "" {
		return models.FieldResult{Message: MsgPasswordRequired}
	}
	if len(s) < minPasswordLength {
		return models.FieldResult{Message: MsgPasswordTooShort}
	}
	if !hasLower(s) || !hasUpper(s) || !hasDigit(s) {
		return models.FieldResult{Message: MsgPasswordComplexity}
	}
	if p.Strict {
		if hasTripleRepeat(s) {
			return models.FieldResult{Message: MsgPasswordRepeated}
		}
		if hasSequentialRun(s) {
			return models.FieldResult{Message: MsgPasswordSequential}
		}
	}
	return models.FieldResult{Valid: true}
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hasSymbol(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// hasTripleRepeat reports whether s contains the same rune three or more
// times in a row. RE2 has no backreferences, so this is a plain scan.
func hasTripleRepeat(s string) bool {
	runes := []rune(s)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i] == runes[i-2] {
			return true
		}
	}
	return false
}

// hasSequentialRun reports whether s contains three ascending consecutive
// letters, case-insensitively ("abc", "xyz").
func hasSequentialRun(s string) bool {
	runes := []rune(s)
	for i := 2; i < len(runes); i++ {
		a := unicode.ToLower(runes[i-2])
		b := unicode.ToLower(runes[i-1])
		c := unicode.ToLower(runes[i])
		if a >= 'a' && c <= 'z' && b == a+1 && c == b+1 {
			return true
		}
	}
	return false
}
