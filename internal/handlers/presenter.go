package handlers

import (
	"sync"

	"github.com/Archemasachika7/Algorythm-auth/internal/services"
	"github.com/Archemasachika7/Algorythm-auth/internal/toasts"
)

// Presentation is the per-request capture of the sequencer's visual effects.
// It is what the page applies instead of the controller mutating the DOM
// directly: button state, inline errors, status text, toasts, modal, redirect.
type Presentation struct {
	Button      *services.ButtonState `json:"button,omitempty"`
	FieldErrors map[string]string     `json:"fieldErrors,omitempty"`
	Status      string                `json:"status,omitempty"`
	Toasts      []toasts.Toast        `json:"toasts,omitempty"`
	Modal       *toasts.SuccessModal  `json:"modal,omitempty"`
	Redirect    string                `json:"redirect,omitempty"`
}

// recorder implements services.Presenter by capturing effects for one
// request. Timed effects (success revert, redirect) may arrive from timer
// goroutines, hence the lock.
type recorder struct {
	mu sync.Mutex
	p  Presentation
}

func newRecorder() *recorder {
	return &recorder{}
}

func (r *recorder) SetSubmitState(form services.Form, state services.ButtonState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := state
	r.p.Button = &st
}

func (r *recorder) ShowFieldErrors(errs map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.FieldErrors = errs
}

func (r *recorder) SetStatus(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Status = message
}

func (r *recorder) ShowToast(severity toasts.Severity, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Toasts = append(r.p.Toasts, toasts.New(severity, message))
}

func (r *recorder) ShowSuccessModal(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	modal := toasts.NewSuccessModal(message)
	r.p.Modal = &modal
}

func (r *recorder) Redirect(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p.Redirect = url
}

// presentation returns a copy of what was recorded so far.
func (r *recorder) presentation() Presentation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.p
}
