package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Archemasachika7/Algorythm-auth/internal/models"
	"github.com/Archemasachika7/Algorythm-auth/internal/validation"
)

// ValidateFieldRequest represents the JSON body for real-time field validation
// swagger:model ValidateFieldRequest
type ValidateFieldRequest struct {
	// Field under validation
	Field models.Field `json:"field"`
}

// NewValidateFieldHandler returns an HTTP handler the page calls on blur or
// debounced input to validate a single field.
// @Summary Validate one field
// @Description Runs the generic per-field check used for real-time validation.
// @Tags validation
// @Accept json
// @Produce json
// @Param validateFieldRequest body handlers.ValidateFieldRequest true "Field"
// @Success 200 {object} models.FieldResult
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid request body"
// @Router /validate [post]
func NewValidateFieldHandler(policy validation.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ValidateFieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "invalid request body"})
			return
		}

		res := validation.ValidateInput(req.Field, policy)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(res)
	}
}
