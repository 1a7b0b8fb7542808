package models

// AuthRequest is the payload sent to the authentication backend.
// Either Email/Password (plus Name and ConfirmPassword for registration)
// or Provider for social login is set.
type AuthRequest struct {
	Email           string `json:"email,omitempty"`
	Password        string `json:"password,omitempty"`
	Name            string `json:"name,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
	Provider        string `json:"provider,omitempty"`
	Register        bool   `json:"-"`
}

// AuthSession is a successful authentication outcome: the resolved user
// plus an opaque session token.
type AuthSession struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
