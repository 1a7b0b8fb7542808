package services

import (
	"context"
	"sync"
	"time"

	"github.com/Archemasachika7/Algorythm-auth/internal/logger"
	"github.com/Archemasachika7/Algorythm-auth/internal/models"
	"github.com/Archemasachika7/Algorythm-auth/internal/toasts"
	"github.com/Archemasachika7/Algorythm-auth/internal/validation"
)

// State is the sequencer's position in the submission lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Form identifies which panel a submission came from.
type Form string

const (
	FormLogin    Form = "login"
	FormRegister Form = "register"
)

// ButtonState mirrors the submit control's visual and disabled state.
type ButtonState struct {
	Loading  bool `json:"loading"`
	Disabled bool `json:"disabled"`
	Success  bool `json:"success"`
}

// Status region and modal messages.
const (
	StatusSigningIn       = "Signing in…"
	StatusCreatingAccount = "Creating account…"
	MsgLoginSuccess       = "Welcome back to AlgoRhythm!"
	MsgRegisterSuccess    = "Welcome to AlgoRhythm! Your account is ready."
)

// Authenticator defines the asynchronous authentication port.
type Authenticator interface {
	Authenticate(ctx context.Context, req models.AuthRequest) (*models.AuthSession, error)
}

// Presenter receives the sequencer's presentation effects: button state,
// inline field errors, the status region, toasts, the success modal and the
// post-auth redirect. Implementations hold no business state.
type Presenter interface {
	SetSubmitState(form Form, state ButtonState)
	ShowFieldErrors(errs map[string]string)
	SetStatus(message string)
	ShowToast(severity toasts.Severity, message string)
	ShowSuccessModal(message string)
	Redirect(url string)
}

// Config carries the sequencer's policy and timing knobs. Timings exist so
// tests can run without real delays.
type Config struct {
	Policy           validation.Policy
	SuccessHold      time.Duration // success styling held before reverting
	PostSuccessDelay time.Duration // pause before the post-auth redirect
	GuardCooldown    time.Duration // single-flight latch trailing clear
	RedirectURL      string
}

// DefaultConfig returns the timings the demo page uses.
func DefaultConfig() Config {
	return Config{
		SuccessHold:      3 * time.Second,
		PostSuccessDelay: 2 * time.Second,
		GuardCooldown:    time.Second,
		RedirectURL:      "/me",
	}
}

// Outcome is the synchronous result of a submission attempt. On success it
// also carries the redirect target and the pause before it, so a caller that
// cannot wait for the timed Redirect callback still knows where to go.
type Outcome struct {
	State         State
	FieldErrors   map[string]string
	Session       *models.AuthSession
	Err           error
	Dropped       bool // swallowed by the single-flight guard
	RedirectURL   string
	RedirectAfter time.Duration
}

// Sequencer drives the submission state machine around the authentication
// port: validate, submit, and propagate success or failure to the presenter.
// A per-form generation counter keeps a stale completion from touching the
// controls after a newer submission of the same form has started; the forms
// otherwise share no submission state.
type Sequencer struct {
	auth Authenticator
	cfg  Config

	mu               sync.Mutex
	gens             map[Form]uint64
	states           map[Form]State
	registerInFlight bool
}

// NewSequencer creates a sequencer over the given authentication port.
func NewSequencer(auth Authenticator, cfg Config) *Sequencer {
	return &Sequencer{
		auth: auth,
		cfg:  cfg,
		gens: map[Form]uint64{},
		states: map[Form]State{
			FormLogin:    StateIdle,
			FormRegister: StateIdle,
		},
	}
}

// State reports the current lifecycle state of a form.
func (s *Sequencer) State(form Form) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[form]
}

// SubmitLogin runs the login flow: validate, call the port, present the
// outcome. No call is made when validation fails.
func (s *Sequencer) SubmitLogin(ctx context.Context, creds models.LoginCredentials, pr Presenter) Outcome {
	s.setState(FormLogin, StateValidating)
	if res := validation.ValidateLoginForm(creds); !res.IsValid {
		s.setState(FormLogin, StateIdle)
		pr.ShowFieldErrors(res.FieldErrors)
		return Outcome{State: StateIdle, FieldErrors: res.FieldErrors}
	}

	gen := s.begin(FormLogin)
	pr.SetSubmitState(FormLogin, ButtonState{Loading: true, Disabled: true})
	pr.SetStatus(StatusSigningIn)

	sess, err := s.auth.Authenticate(ctx, models.AuthRequest{
		Email:    creds.Email,
		Password: creds.Password,
	})
	if err != nil {
		s.fail(FormLogin, gen, pr, err)
		return Outcome{State: StateFailed, Err: err}
	}

	s.succeed(FormLogin, gen, pr, MsgLoginSuccess)
	return Outcome{
		State:         StateSucceeded,
		Session:       sess,
		RedirectURL:   s.cfg.RedirectURL,
		RedirectAfter: s.cfg.PostSuccessDelay,
	}
}

// SubmitRegister runs the registration flow. A submit that arrives while a
// registration is already in flight is dropped outright, and the latch only
// clears a cooldown after the previous attempt completes.
func (s *Sequencer) SubmitRegister(ctx context.Context, data models.RegisterData, pr Presenter) Outcome {
	s.mu.Lock()
	if s.registerInFlight {
		s.mu.Unlock()
		logger.Log.Debugw("registration already in flight, submit ignored")
		return Outcome{State: StateSubmitting, Dropped: true}
	}
	s.mu.Unlock()

	s.setState(FormRegister, StateValidating)
	if res := validation.ValidateRegisterForm(data, s.cfg.Policy); !res.IsValid {
		s.setState(FormRegister, StateIdle)
		pr.ShowFieldErrors(res.FieldErrors)
		return Outcome{State: StateIdle, FieldErrors: res.FieldErrors}
	}

	s.mu.Lock()
	if s.registerInFlight {
		s.mu.Unlock()
		return Outcome{State: StateSubmitting, Dropped: true}
	}
	s.registerInFlight = true
	s.mu.Unlock()

	gen := s.begin(FormRegister)
	pr.SetSubmitState(FormRegister, ButtonState{Loading: true, Disabled: true})
	pr.SetStatus(StatusCreatingAccount)

	sess, err := s.auth.Authenticate(ctx, models.AuthRequest{
		Email:           data.Email,
		Password:        data.Password,
		Name:            data.Name,
		ConfirmPassword: data.ConfirmPassword,
		Register:        true,
	})
	s.scheduleGuardClear()
	if err != nil {
		s.fail(FormRegister, gen, pr, err)
		return Outcome{State: StateFailed, Err: err}
	}

	s.succeed(FormRegister, gen, pr, MsgRegisterSuccess)
	return Outcome{
		State:         StateSucceeded,
		Session:       sess,
		RedirectURL:   s.cfg.RedirectURL,
		RedirectAfter: s.cfg.PostSuccessDelay,
	}
}

// SubmitSocial runs the social login flow. There is nothing to validate;
// the provider is handed straight to the port.
func (s *Sequencer) SubmitSocial(ctx context.Context, provider string, pr Presenter) Outcome {
	gen := s.begin(FormLogin)
	pr.SetSubmitState(FormLogin, ButtonState{Loading: true, Disabled: true})
	pr.SetStatus(StatusSigningIn)

	sess, err := s.auth.Authenticate(ctx, models.AuthRequest{Provider: provider})
	if err != nil {
		s.fail(FormLogin, gen, pr, err)
		return Outcome{State: StateFailed, Err: err}
	}

	s.succeed(FormLogin, gen, pr, MsgLoginSuccess)
	return Outcome{
		State:         StateSucceeded,
		Session:       sess,
		RedirectURL:   s.cfg.RedirectURL,
		RedirectAfter: s.cfg.PostSuccessDelay,
	}
}

// begin allocates a new generation for the form and moves it to Submitting.
func (s *Sequencer) begin(form Form) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[form]++
	s.states[form] = StateSubmitting
	return s.gens[form]
}

func (s *Sequencer) isCurrent(form Form, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[form] == gen
}

func (s *Sequencer) setState(form Form, st State) {
	s.mu.Lock()
	s.states[form] = st
	s.mu.Unlock()
}

func (s *Sequencer) scheduleGuardClear() {
	time.AfterFunc(s.cfg.GuardCooldown, func() {
		s.mu.Lock()
		s.registerInFlight = false
		s.mu.Unlock()
	})
}

func (s *Sequencer) fail(form Form, gen uint64, pr Presenter, err error) {
	if !s.isCurrent(form, gen) {
		logger.Log.Debugw("stale completion ignored", "form", form, "gen", gen)
		return
	}
	s.setState(form, StateFailed)

	kind := ClassifyAuthError(err)
	pr.SetSubmitState(form, ButtonState{})
	pr.ShowToast(kind.Severity(), kind.ToastMessage())
	pr.SetStatus(err.Error())
	logger.Log.Infow("submission failed", "form", form, "kind", kind, "err", err)

	s.setState(form, StateIdle)
}

func (s *Sequencer) succeed(form Form, gen uint64, pr Presenter, message string) {
	if !s.isCurrent(form, gen) {
		logger.Log.Debugw("stale completion ignored", "form", form, "gen", gen)
		return
	}
	s.setState(form, StateSucceeded)

	pr.SetSubmitState(form, ButtonState{Success: true})
	pr.ShowSuccessModal(message)
	pr.SetStatus(message)
	logger.Log.Infow("submission succeeded", "form", form)

	time.AfterFunc(s.cfg.SuccessHold, func() {
		if s.isCurrent(form, gen) {
			pr.SetSubmitState(form, ButtonState{})
		}
	})
	time.AfterFunc(s.cfg.PostSuccessDelay, func() {
		if s.isCurrent(form, gen) {
			pr.Redirect(s.cfg.RedirectURL)
		}
	})

	s.setState(form, StateIdle)
}
