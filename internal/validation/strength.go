package validation

import "github.com/Archemasachika7/Algorythm-auth/internal/models"

// strengthBand maps an inclusive score range to a band. Bands are checked
// in ascending order, first match wins; anything outside falls back to weak.
type strengthBand struct {
	min, max int
	level    models.StrengthLevel
	label    string
}

var strengthBands = []strengthBand{
	{0, 2, models.StrengthWeak, "Weak"},
	{3, 4, models.StrengthFair, "Fair"},
	{5, 6, models.StrengthGood, "Good"},
	{7, 10, models.StrengthStrong, "Strong"},
}

// CalculatePasswordStrength scores a password additively:
// length of 8 or more counts double, length of 12 or more, and each of
// lowercase/uppercase/digit/symbol count one. The strict policy adds one
// point each for avoiding triple repeats and sequential letter runs.
func CalculatePasswordStrength(s string, p Policy) models.PasswordStrength {
	score := 0
	if len(s) >= minPasswordLength {
		score += 2
	}
	if len(s) >= 12 {
		score++
	}
	if hasLower(s) {
		score++
	}
	if hasUpper(s) {
		score++
	}
	if hasDigit(s) {
		score++
	}
	if hasSymbol(s) {
		score++
	}
	if p.Strict {
		if !hasTripleRepeat(s) {
			score++
		}
		if !hasSequentialRun(s) {
			score++
		}
	}

	for _, b := range strengthBands {
		if score >= b.min && score <= b.max {
			return models.PasswordStrength{Level: b.level, Label: b.label, Score: score}
		}
	}
	return models.PasswordStrength{Level: models.StrengthWeak, Label: "Weak", Score: score}
}
