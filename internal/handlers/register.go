package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Archemasachika7/Algorythm-auth/internal/models"
	"github.com/Archemasachika7/Algorythm-auth/internal/services"
)

// RegisterSubmitter defines the interface that the sequencer must implement.
type RegisterSubmitter interface {
	SubmitRegister(ctx context.Context, data models.RegisterData, pr services.Presenter) services.Outcome
}

// RegisterRequest represents the JSON body for creating an account
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Name
	// required: true
	// default: Jo
	Name string `json:"name"`

	// Email
	// required: true
	// default: jo@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: Abcdefg1
	Password string `json:"password"`

	// Password confirmation, must match Password
	// required: true
	// default: Abcdefg1
	ConfirmPassword string `json:"confirmPassword"`
}

// NewRegisterHandler returns an HTTP handler for the registration form.
// Repeat submissions while one is in flight are dropped by the sequencer's
// single-flight guard and answered with 429.
// @Summary Create an account
// @Description Validates the registration form and runs the submission sequencer against the authentication backend.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration form values"
// @Success 201 {object} handlers.LoginResponse "Account created"
// @Failure 400 {object} handlers.LoginErrorResponse "Validation failed / invalid request body"
// @Failure 429 {object} handlers.LoginErrorResponse "A registration is already in progress"
// @Failure 503 {object} handlers.LoginErrorResponse "Authentication backend unreachable"
// @Router /register [post]
func NewRegisterHandler(svc RegisterSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "invalid request body"})
			return
		}

		// Field values are captured into a snapshot at submit time.
		form := models.FormSnapshot{
			models.FieldName:            req.Name,
			models.FieldEmail:           req.Email,
			models.FieldPassword:        req.Password,
			models.FieldConfirmPassword: req.ConfirmPassword,
		}

		pr := newRecorder()
		out := svc.SubmitRegister(r.Context(), models.RegisterDataFromSnapshot(form), pr)

		writeOutcome(w, out, pr, http.StatusCreated)
	}
}
