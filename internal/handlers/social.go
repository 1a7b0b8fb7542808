package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Archemasachika7/Algorythm-auth/internal/services"
)

// SocialSubmitter defines the interface that the sequencer must implement.
type SocialSubmitter interface {
	SubmitSocial(ctx context.Context, provider string, pr services.Presenter) services.Outcome
}

// SocialLoginRequest represents the JSON body for social sign-in
// swagger:model SocialLoginRequest
type SocialLoginRequest struct {
	// Provider
	// required: true
	// default: google
	Provider string `json:"provider"`
}

// NewSocialLoginHandler returns an HTTP handler for provider sign-in buttons.
// @Summary Sign in with a provider
// @Description Runs the submission sequencer with a social provider instead of credentials.
// @Tags auth
// @Accept json
// @Produce json
// @Param socialLoginRequest body handlers.SocialLoginRequest true "Provider"
// @Success 200 {object} handlers.LoginResponse "Signed in"
// @Failure 400 {object} handlers.LoginErrorResponse "Missing provider / invalid request body"
// @Router /social [post]
func NewSocialLoginHandler(svc SocialSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SocialLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Provider == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "provider is required"})
			return
		}

		pr := newRecorder()
		out := svc.SubmitSocial(r.Context(), req.Provider, pr)

		writeOutcome(w, out, pr, http.StatusOK)
	}
}
