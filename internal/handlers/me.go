package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Archemasachika7/Algorythm-auth/internal/jwt"
)

// ClaimsReader defines the token operations the post-auth page needs.
type ClaimsReader interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MeResponse represents the signed-in landing payload
// swagger:model MeResponse
type MeResponse struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// NewMeHandler returns the handler behind the post-auth redirect target.
// @Summary Who am I
// @Description Resolves the session token into the signed-in user ID.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MeResponse
// @Failure 401 {object} handlers.LoginErrorResponse "Missing or invalid token"
// @Router /me [get]
func NewMeHandler(tokens ClaimsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		token, err := tokens.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "missing or invalid token"})
			return
		}

		claims, err := tokens.GetClaims(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "missing or invalid token"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			UserID:  claims.UserID.String(),
			Message: "You are signed in to AlgoRhythm",
		})
	}
}
