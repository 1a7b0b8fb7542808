package validation_test

import (
	"testing"

	"github.com/Archemasachika7/Algorythm-auth/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"minimal valid", "a@b.co", true},
		{"typical address", "user@example.com", true},
		{"subdomain", "user@mail.example.com", true},
		{"plus tag", "user+tag@example.com", true},
		{"missing tld", "a@b", false},
		{"space in local part", "a b@c.com", false},
		{"empty", "", false},
		{"missing local part", "@example.com", false},
		{"double at", "a@@example.com", false},
		{"trailing dot only", "a@b.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsValidEmail(tt.email))
		})
	}
}
