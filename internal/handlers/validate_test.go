package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Archemasachika7/Algorythm-auth/internal/models"
	"github.com/Archemasachika7/Algorythm-auth/internal/validation"
)

func TestValidateFieldHandler(t *testing.T) {
	handler := NewValidateFieldHandler(validation.DefaultPolicy)

	tests := []struct {
		name      string
		field     models.Field
		wantValid bool
		wantMsg   string
	}{
		{
			name:      "valid email",
			field:     models.Field{ID: "email", Kind: models.KindEmail, Value: "a@b.co"},
			wantValid: true,
		},
		{
			name:      "bad email",
			field:     models.Field{ID: "email", Kind: models.KindEmail, Value: "a@b"},
			wantValid: false,
			wantMsg:   validation.MsgEmailInvalid,
		},
		{
			name:      "short password",
			field:     models.Field{ID: "password", Kind: models.KindPassword, Value: "short"},
			wantValid: false,
			wantMsg:   validation.MsgPasswordTooShort,
		},
		{
			name:      "required empty",
			field:     models.Field{ID: "name", Kind: models.KindText, Required: true},
			wantValid: false,
			wantMsg:   validation.MsgFieldRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(ValidateFieldRequest{Field: tt.field})
			req := httptest.NewRequest(http.MethodPost, "/validate", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var res models.FieldResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Equal(t, tt.wantMsg, res.Message)
		})
	}
}

func TestValidateFieldHandler_InvalidJSON(t *testing.T) {
	handler := NewValidateFieldHandler(validation.DefaultPolicy)

	req := httptest.NewRequest(http.MethodPost, "/validate", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordStrengthHandler(t *testing.T) {
	handler := NewPasswordStrengthHandler(validation.DefaultPolicy)

	body, _ := json.Marshal(PasswordStrengthRequest{Password: "abcdefG1!xyz"})
	req := httptest.NewRequest(http.MethodPost, "/password-strength", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var strength models.PasswordStrength
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &strength))
	assert.Equal(t, models.StrengthStrong, strength.Level)
	assert.Equal(t, "Strong", strength.Label)
}
