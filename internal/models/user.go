package models

import (
	"github.com/google/uuid"
)

// User represents an authenticated account as returned by the auth backend.
type User struct {
	ID    uuid.UUID `json:"id"`    // Account identifier
	Email string    `json:"email"` // User email
	Name  string    `json:"name"`  // Display name
}
