package models

// StrengthLevel is one of four ordered qualitative password strength bands.
type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "weak"
	StrengthFair   StrengthLevel = "fair"
	StrengthGood   StrengthLevel = "good"
	StrengthStrong StrengthLevel = "strong"
)

// Rank returns the ordinal position of the band (weak=0 .. strong=3),
// so bands can be compared.
func (l StrengthLevel) Rank() int {
	switch l {
	case StrengthFair:
		return 1
	case StrengthGood:
		return 2
	case StrengthStrong:
		return 3
	default:
		return 0
	}
}

// PasswordStrength is the scored strength of a password.
type PasswordStrength struct {
	Level StrengthLevel `json:"level"`
	Label string        `json:"label"`
	Score int           `json:"score"`
}
