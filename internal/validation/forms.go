package validation

import (
	"strings"

	"github.com/Archemasachika7/Algorythm-auth/internal/models"
)

// User-facing form validation messages.
const (
	MsgEmailRequired = "Email is required"
	MsgEmailInvalid  = "Please enter a valid email address"
	MsgNameTooShort  = "Name must be at least 2 characters long"
	MsgPasswordsDiff = "Passwords do not match"
	MsgFieldRequired = "This field is required"
)

// ValidateLoginForm checks login credentials: a well-formed email and a
// non-empty password. Each failing check writes its own error slot.
func ValidateLoginForm(creds models.LoginCredentials) models.ValidationResult {
	errs := make(map[string]string)

	switch {
	case creds.Email == "":
		errs[models.FieldEmail] = MsgEmailRequired
	case !IsValidEmail(creds.Email):
		errs[models.FieldEmail] = MsgEmailInvalid
	}
	if creds.Password == "" {
		errs[models.FieldPassword] = MsgPasswordRequired
	}

	return result(errs)
}

// ValidateRegisterForm checks registration data. All four checks run
// independently so every failing field reports at once.
func ValidateRegisterForm(data models.RegisterData, p Policy) models.ValidationResult {
	errs := make(map[string]string)

	if len(strings.TrimSpace(data.Name)) < 2 {
		errs[models.FieldName] = MsgNameTooShort
	}
	switch {
	case data.Email == "":
		errs[models.FieldEmail] = MsgEmailRequired
	case !IsValidEmail(data.Email):
		errs[models.FieldEmail] = MsgEmailInvalid
	}
	if res := ValidatePassword(data.Password, p); !res.Valid {
		errs[models.FieldPassword] = res.Message
	}
	if data.Password != data.ConfirmPassword {
		errs[models.FieldConfirmPassword] = MsgPasswordsDiff
	}

	return result(errs)
}

// ValidateInput runs the single-field check used for real-time validation
// on blur or debounced input, dispatching on the field's declared kind.
func ValidateInput(f models.Field, p Policy) models.FieldResult {
	if f.Required && strings.TrimSpace(f.Value) == "" {
		return models.FieldResult{Message: MsgFieldRequired}
	}
	if f.Value == "" {
		return models.FieldResult{Valid: true}
	}

	switch f.Kind {
	case models.KindEmail:
		if !IsValidEmail(f.Value) {
			return models.FieldResult{Message: MsgEmailInvalid}
		}
	case models.KindPassword:
		return ValidatePassword(f.Value, p)
	}
	return models.FieldResult{Valid: true}
}

func result(errs map[string]string) models.ValidationResult {
	if len(errs) == 0 {
		return models.ValidationResult{IsValid: true}
	}
	return models.ValidationResult{IsValid: false, FieldErrors: errs}
}
