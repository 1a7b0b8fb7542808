package toasts_test

import (
	"testing"
	"time"

	"github.com/Archemasachika7/Algorythm-auth/internal/toasts"
	"github.com/stretchr/testify/assert"
)

func TestNew_Icons(t *testing.T) {
	tests := []struct {
		severity toasts.Severity
		icon     string
	}{
		{toasts.SeveritySuccess, "fa-check-circle"},
		{toasts.SeverityError, "fa-exclamation-circle"},
		{toasts.SeverityWarning, "fa-exclamation-triangle"},
		{toasts.SeverityInfo, "fa-info-circle"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			toast := toasts.New(tt.severity, "hello")
			assert.Equal(t, tt.icon, toast.Icon)
			assert.Equal(t, tt.severity, toast.Severity)
			assert.Equal(t, "hello", toast.Message)
			assert.NotEqual(t, toast.ID.String(), "00000000-0000-0000-0000-000000000000")
		})
	}
}

func TestNew_UnknownSeverityFallsBackToInfo(t *testing.T) {
	toast := toasts.New(toasts.Severity("bogus"), "hello")
	assert.Equal(t, toasts.SeverityInfo, toast.Severity)
	assert.Equal(t, "fa-info-circle", toast.Icon)
}

func TestNew_Timings(t *testing.T) {
	toast := toasts.New(toasts.SeveritySuccess, "hi")
	assert.Equal(t, 4*time.Second, toast.VisibleFor)
	assert.Equal(t, 300*time.Millisecond, toast.ExitAfter)
}

func TestNewSuccessModal(t *testing.T) {
	modal := toasts.NewSuccessModal("Welcome back to AlgoRhythm!")
	assert.Equal(t, "Welcome back to AlgoRhythm!", modal.Message)
	assert.Equal(t, "modal-close", modal.FocusTarget)
}
