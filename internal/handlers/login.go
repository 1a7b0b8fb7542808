package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Archemasachika7/Algorythm-auth/internal/models"
	"github.com/Archemasachika7/Algorythm-auth/internal/services"
)

// LoginSubmitter defines the interface that the sequencer must implement.
type LoginSubmitter interface {
	SubmitLogin(ctx context.Context, creds models.LoginCredentials, pr services.Presenter) services.Outcome
}

// LoginRequest represents the JSON body for signing in
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: user@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful sign-in
// swagger:model LoginResponse
type LoginResponse struct {
	Success       bool          `json:"success"`
	User          *models.User  `json:"user,omitempty"`
	Token         string        `json:"token,omitempty"`
	Redirect      string        `json:"redirect,omitempty"`
	RedirectAfter time.Duration `json:"redirectAfter,omitempty"`
	Presentation  Presentation  `json:"presentation"`
}

// LoginErrorResponse represents a failed sign-in
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	Error        string       `json:"error"`
	Presentation Presentation `json:"presentation"`
}

// NewLoginHandler returns an HTTP handler for the login form.
// @Summary Sign in
// @Description Validates the login form and runs the submission sequencer against the authentication backend.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login form values"
// @Success 200 {object} handlers.LoginResponse "Signed in"
// @Failure 400 {object} handlers.LoginErrorResponse "Validation failed / invalid request body"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid credentials"
// @Failure 503 {object} handlers.LoginErrorResponse "Authentication backend unreachable"
// @Router /login [post]
func NewLoginHandler(svc LoginSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "invalid request body"})
			return
		}

		// Field values are captured into a snapshot at submit time.
		form := models.FormSnapshot{
			models.FieldEmail:    req.Email,
			models.FieldPassword: req.Password,
		}

		pr := newRecorder()
		out := svc.SubmitLogin(r.Context(), models.LoginCredentialsFromSnapshot(form), pr)

		writeOutcome(w, out, pr, http.StatusOK)
	}
}

// writeOutcome maps a sequencer outcome onto an HTTP response shared by the
// login, registration and social handlers.
func writeOutcome(w http.ResponseWriter, out services.Outcome, pr *recorder, successCode int) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case out.Dropped:
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(LoginErrorResponse{
			Error: "submission already in progress",
		})
	case out.State == services.StateSucceeded:
		w.WriteHeader(successCode)
		json.NewEncoder(w).Encode(LoginResponse{
			Success:       true,
			User:          &out.Session.User,
			Token:         out.Session.Token,
			Redirect:      out.RedirectURL,
			RedirectAfter: out.RedirectAfter,
			Presentation:  pr.presentation(),
		})
	case out.State == services.StateFailed:
		w.WriteHeader(statusForAuthError(out.Err))
		json.NewEncoder(w).Encode(LoginErrorResponse{
			Error:        out.Err.Error(),
			Presentation: pr.presentation(),
		})
	default: // validation kept us in Idle
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(LoginErrorResponse{
			Error:        "validation failed",
			Presentation: pr.presentation(),
		})
	}
}

func statusForAuthError(err error) int {
	switch services.ClassifyAuthError(err) {
	case services.ErrorInvalidCredentials:
		return http.StatusUnauthorized
	case services.ErrorNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
