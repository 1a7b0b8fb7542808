package validation_test

import (
	"testing"

	"github.com/Archemasachika7/Algorythm-auth/internal/models"
	"github.com/Archemasachika7/Algorythm-auth/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestCalculatePasswordStrength_Bands(t *testing.T) {
	tests := []struct {
		name     string
		password string
		level    models.StrengthLevel
		label    string
	}{
		{"empty", "", models.StrengthWeak, "Weak"},
		{"short lowercase", "abc", models.StrengthWeak, "Weak"},
		{"short mixed", "Ab1", models.StrengthFair, "Fair"},
		{"long lowercase only", "abcdefgh", models.StrengthFair, "Fair"},
		{"long three classes", "abcdefG1", models.StrengthGood, "Good"},
		{"long four classes", "abcdefG1!", models.StrengthGood, "Good"},
		{"very long four classes", "abcdefG1!xyz", models.StrengthStrong, "Strong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.CalculatePasswordStrength(tt.password, validation.DefaultPolicy)
			assert.Equal(t, tt.level, got.Level)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

// Appending a character that satisfies a new class must never drop the band.
func TestCalculatePasswordStrength_Monotonic(t *testing.T) {
	steps := []string{
		"a",
		"abcdefgh",
		"abcdefghijkl",
		"abcdefghijklM",
		"abcdefghijklM1",
		"abcdefghijklM1!",
	}

	for _, p := range []validation.Policy{validation.DefaultPolicy, {Strict: true}} {
		prev := -1
		prevScore := -1
		for _, pw := range steps {
			got := validation.CalculatePasswordStrength(pw, p)
			assert.GreaterOrEqual(t, got.Level.Rank(), prev, "band dropped at %q", pw)
			assert.GreaterOrEqual(t, got.Score, prevScore, "score dropped at %q", pw)
			prev = got.Level.Rank()
			prevScore = got.Score
		}
	}
}

func TestCalculatePasswordStrength_StrictScoresRuns(t *testing.T) {
	strict := validation.Policy{Strict: true}

	clean := validation.CalculatePasswordStrength("Xk4mQp7w!akz", strict)
	sloppy := validation.CalculatePasswordStrength("Xk4mQp7w!abc", strict)
	assert.Greater(t, clean.Score, sloppy.Score)
}
