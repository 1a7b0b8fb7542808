package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Archemasachika7/Algorythm-auth/internal/validation"
)

// PasswordStrengthRequest represents the JSON body for the strength meter
// swagger:model PasswordStrengthRequest
type PasswordStrengthRequest struct {
	// Password
	// required: true
	Password string `json:"password"`
}

// NewPasswordStrengthHandler returns an HTTP handler backing the live
// password strength meter on the registration panel.
// @Summary Score a password
// @Description Returns the strength band for a candidate password.
// @Tags validation
// @Accept json
// @Produce json
// @Param passwordStrengthRequest body handlers.PasswordStrengthRequest true "Candidate password"
// @Success 200 {object} models.PasswordStrength
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid request body"
// @Router /password-strength [post]
func NewPasswordStrengthHandler(policy validation.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PasswordStrengthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "invalid request body"})
			return
		}

		strength := validation.CalculatePasswordStrength(req.Password, policy)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(strength)
	}
}
