package toasts

import (
	"time"

	"github.com/google/uuid"
)

// Severity selects the toast's visual treatment and icon.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Display timings: how long a toast stays visible and how long the exit
// transition is given before the node is removed.
const (
	VisibleFor = 4 * time.Second
	ExitAfter  = 300 * time.Millisecond
)

var icons = map[Severity]string{
	SeveritySuccess: "fa-check-circle",
	SeverityError:   "fa-exclamation-circle",
	SeverityWarning: "fa-exclamation-triangle",
	SeverityInfo:    "fa-info-circle",
}

// Toast is a transient notification. It carries no business state; the
// sequencer decides when one appears and with what message.
type Toast struct {
	ID         uuid.UUID     `json:"id"`
	Severity   Severity      `json:"severity"`
	Icon       string        `json:"icon"`
	Message    string        `json:"message"`
	VisibleFor time.Duration `json:"visibleFor"`
	ExitAfter  time.Duration `json:"exitAfter"`
}

// New builds a toast for the given severity. Unknown severities fall back
// to the info icon.
func New(severity Severity, message string) Toast {
	icon, ok := icons[severity]
	if !ok {
		severity = SeverityInfo
		icon = icons[SeverityInfo]
	}
	return Toast{
		ID:         uuid.New(),
		Severity:   severity,
		Icon:       icon,
		Message:    message,
		VisibleFor: VisibleFor,
		ExitAfter:  ExitAfter,
	}
}

// SuccessModal is the post-authentication modal. FocusTarget names the
// control that should receive focus when the modal opens, so screen reader
// users land on the close action.
type SuccessModal struct {
	Message     string `json:"message"`
	FocusTarget string `json:"focusTarget"`
}

// NewSuccessModal builds the success modal shown after authentication.
func NewSuccessModal(message string) SuccessModal {
	return SuccessModal{
		Message:     message,
		FocusTarget: "modal-close",
	}
}
