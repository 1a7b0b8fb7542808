package validation_test

import (
	"testing"

	"github.com/Archemasachika7/Algorythm-auth/internal/models"
	"github.com/Archemasachika7/Algorythm-auth/internal/validation"
	"github.com/stretchr/testify/assert"
)

func TestValidateLoginForm(t *testing.T) {
	tests := []struct {
		name       string
		creds      models.LoginCredentials
		valid      bool
		wantErrors map[string]string
	}{
		{
			name:  "valid credentials",
			creds: models.LoginCredentials{Email: "user@example.com", Password: "secret"},
			valid: true,
		},
		{
			name:  "empty email",
			creds: models.LoginCredentials{Email: "", Password: "secret"},
			valid: false,
			wantErrors: map[string]string{
				models.FieldEmail: validation.MsgEmailRequired,
			},
		},
		{
			name:  "malformed email",
			creds: models.LoginCredentials{Email: "a@b", Password: "secret"},
			valid: false,
			wantErrors: map[string]string{
				models.FieldEmail: validation.MsgEmailInvalid,
			},
		},
		{
			name:  "empty password",
			creds: models.LoginCredentials{Email: "user@example.com", Password: ""},
			valid: false,
			wantErrors: map[string]string{
				models.FieldPassword: validation.MsgPasswordRequired,
			},
		},
		{
			name:  "both invalid",
			creds: models.LoginCredentials{Email: "nope", Password: ""},
			valid: false,
			wantErrors: map[string]string{
				models.FieldEmail:    validation.MsgEmailInvalid,
				models.FieldPassword: validation.MsgPasswordRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validation.ValidateLoginForm(tt.creds)
			assert.Equal(t, tt.valid, res.IsValid)
			assert.Equal(t, tt.wantErrors, res.FieldErrors)
		})
	}
}

// An invalid email must not leak an error into the password slot when the
// password itself was fine.
func TestValidateLoginForm_PasswordSlotUntouched(t *testing.T) {
	res := validation.ValidateLoginForm(models.LoginCredentials{
		Email:    "not-an-email",
		Password: "perfectly-fine",
	})
	assert.False(t, res.IsValid)
	assert.Contains(t, res.FieldErrors, models.FieldEmail)
	assert.NotContains(t, res.FieldErrors, models.FieldPassword)
}

func TestValidateRegisterForm(t *testing.T) {
	tests := []struct {
		name       string
		data       models.RegisterData
		valid      bool
		wantFields []string
	}{
		{
			name: "valid registration",
			data: models.RegisterData{
				Name:            "Jo",
				Email:           "jo@example.com",
				Password:        "Abcdefg1",
				ConfirmPassword: "Abcdefg1",
			},
			valid: true,
		},
		{
			name: "name trims to one char",
			data: models.RegisterData{
				Name:            " J ",
				Email:           "jo@example.com",
				Password:        "Abcdefg1",
				ConfirmPassword: "Abcdefg1",
			},
			valid:      false,
			wantFields: []string{models.FieldName},
		},
		{
			name: "mismatched confirmation",
			data: models.RegisterData{
				Name:            "Jo",
				Email:           "jo@example.com",
				Password:        "Abcdefg1",
				ConfirmPassword: "Abcdefg2",
			},
			valid:      false,
			wantFields: []string{models.FieldConfirmPassword},
		},
		{
			name: "everything wrong at once",
			data: models.RegisterData{
				Name:            "J",
				Email:           "broken",
				Password:        "short",
				ConfirmPassword: "different",
			},
			valid: false,
			wantFields: []string{
				models.FieldName,
				models.FieldEmail,
				models.FieldPassword,
				models.FieldConfirmPassword,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validation.ValidateRegisterForm(tt.data, validation.DefaultPolicy)
			assert.Equal(t, tt.valid, res.IsValid)
			for _, f := range tt.wantFields {
				assert.Contains(t, res.FieldErrors, f)
			}
		})
	}
}

// The mismatch error must fire no matter how strong both passwords are.
func TestValidateRegisterForm_MismatchBeatsStrength(t *testing.T) {
	res := validation.ValidateRegisterForm(models.RegisterData{
		Name:            "Jordan",
		Email:           "jordan@example.com",
		Password:        "Xk4mQp7w!Longer1",
		ConfirmPassword: "Xk4mQp7w!Longer2",
	}, validation.Policy{Strict: true})
	assert.False(t, res.IsValid)
	assert.Equal(t, validation.MsgPasswordsDiff, res.FieldErrors[models.FieldConfirmPassword])
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		field   models.Field
		valid   bool
		message string
	}{
		{
			name:  "required and empty",
			field: models.Field{ID: "name", Kind: models.KindText, Required: true},
			valid: false, message: validation.MsgFieldRequired,
		},
		{
			name:  "optional and empty",
			field: models.Field{ID: "name", Kind: models.KindText},
			valid: true,
		},
		{
			name:  "email shape bad",
			field: models.Field{ID: "email", Kind: models.KindEmail, Value: "a@b"},
			valid: false, message: validation.MsgEmailInvalid,
		},
		{
			name:  "email shape good",
			field: models.Field{ID: "email", Kind: models.KindEmail, Value: "a@b.co"},
			valid: true,
		},
		{
			name:  "password policy applies",
			field: models.Field{ID: "password", Kind: models.KindPassword, Value: "short"},
			valid: false, message: validation.MsgPasswordTooShort,
		},
		{
			name:  "plain text passes",
			field: models.Field{ID: "name", Kind: models.KindText, Value: "Jo"},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validation.ValidateInput(tt.field, validation.DefaultPolicy)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}
