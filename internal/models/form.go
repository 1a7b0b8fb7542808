package models

// Stable field identifiers used to key validation messages.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// FieldKind declares how a form input should be validated.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindPassword FieldKind = "password"
)

// Field is a single form input captured for real-time validation.
type Field struct {
	ID       string    `json:"id"`
	Kind     FieldKind `json:"kind"`
	Value    string    `json:"value"`
	Required bool      `json:"required"`
}

// FormSnapshot is an immutable capture of form values at submit time,
// keyed by field identifier.
type FormSnapshot map[string]string

// Get returns the captured value for a field, or "" if absent.
func (s FormSnapshot) Get(field string) string {
	return s[field]
}

// LoginCredentials are the values captured from the login form.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData are the values captured from the registration form.
type RegisterData struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginCredentialsFromSnapshot extracts login fields from a snapshot.
func LoginCredentialsFromSnapshot(s FormSnapshot) LoginCredentials {
	return LoginCredentials{
		Email:    s.Get(FieldEmail),
		Password: s.Get(FieldPassword),
	}
}

// RegisterDataFromSnapshot extracts registration fields from a snapshot.
func RegisterDataFromSnapshot(s FormSnapshot) RegisterData {
	return RegisterData{
		Name:            s.Get(FieldName),
		Email:           s.Get(FieldEmail),
		Password:        s.Get(FieldPassword),
		ConfirmPassword: s.Get(FieldConfirmPassword),
	}
}
