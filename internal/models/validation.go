package models

// FieldResult is the outcome of validating a single field.
type FieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidationResult is the outcome of validating a whole form.
// FieldErrors maps field identifiers to user-facing messages; a field
// that passed validation has no entry.
type ValidationResult struct {
	IsValid     bool              `json:"isValid"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}
