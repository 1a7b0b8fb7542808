package facades

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Archemasachika7/Algorythm-auth/internal/logger"
	"github.com/Archemasachika7/Algorythm-auth/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNetworkUnavailable = errors.New("network error: authentication service unreachable")
)

// Sentinel emails that deterministically trigger failure paths, used by the
// demo page and the end-to-end tests.
const (
	SentinelInvalidEmail = "test@error.com"
	SentinelNetworkEmail = "test@network.com"
)

// TokenGenerator defines the interface used to mint session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// MockAuthFacade simulates the authentication backend: it waits a randomized
// delay, fails for the sentinel emails, and otherwise synthesizes a user
// record plus a signed session token. This is the seam where a real backend
// integration would attach.
type MockAuthFacade struct {
	tokens        TokenGenerator
	minDelay      time.Duration
	maxDelay      time.Duration
	registerExtra time.Duration

	demoEmail string
	demoHash  []byte
	demoName  string
}

// Option configures the mock backend.
type Option func(*MockAuthFacade)

// WithDelayRange sets the simulated round-trip bounds. Zero disables the wait.
func WithDelayRange(min, max time.Duration) Option {
	return func(f *MockAuthFacade) {
		f.minDelay = min
		f.maxDelay = max
	}
}

// WithRegisterExtra adds time on top of the delay for registration calls.
func WithRegisterExtra(d time.Duration) Option {
	return func(f *MockAuthFacade) {
		f.registerExtra = d
	}
}

// WithDemoAccount seeds one account whose password is actually checked,
// bcrypt-hashed like a real backend would store it.
func WithDemoAccount(email, password, name string) Option {
	return func(f *MockAuthFacade) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash demo password", "err", err)
			return
		}
		f.demoEmail = email
		f.demoHash = hash
		f.demoName = name
	}
}

// NewMockAuthFacade creates the mock backend with 1s..3s round trips and an
// extra half second for registrations, matching the demo page's behavior.
func NewMockAuthFacade(tokens TokenGenerator, opts ...Option) *MockAuthFacade {
	f := &MockAuthFacade{
		tokens:        tokens,
		minDelay:      time.Second,
		maxDelay:      3 * time.Second,
		registerExtra: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Authenticate performs the simulated round trip. The wait honors context
// cancellation; sentinel emails fail deterministically, everything else
// succeeds with a synthesized user and token.
func (f *MockAuthFacade) Authenticate(ctx context.Context, req models.AuthRequest) (*models.AuthSession, error) {
	if err := f.wait(ctx, req.Register); err != nil {
		return nil, err
	}

	if req.Provider != "" {
		return f.socialSession(ctx, req.Provider)
	}

	switch req.Email {
	case SentinelInvalidEmail:
		logger.Log.Infow("mock auth rejecting sentinel", "email", req.Email)
		return nil, ErrInvalidCredentials
	case SentinelNetworkEmail:
		logger.Log.Infow("mock auth simulating network failure", "email", req.Email)
		return nil, ErrNetworkUnavailable
	}

	if f.demoEmail != "" && req.Email == f.demoEmail && !req.Register {
		if err := bcrypt.CompareHashAndPassword(f.demoHash, []byte(req.Password)); err != nil {
			logger.Log.Infow("mock auth demo credential mismatch", "email", req.Email)
			return nil, ErrInvalidCredentials
		}
		return f.session(ctx, req.Email, f.demoName)
	}

	name := req.Name
	if name == "" {
		name = nameFromEmail(req.Email)
	}
	return f.session(ctx, req.Email, name)
}

func (f *MockAuthFacade) wait(ctx context.Context, register bool) error {
	delay := f.minDelay
	if spread := f.maxDelay - f.minDelay; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}
	if register {
		delay += f.registerExtra
	}
	if delay <= 0 {
		return nil
	}

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *MockAuthFacade) session(ctx context.Context, email, name string) (*models.AuthSession, error) {
	user := models.User{ID: uuid.New(), Email: email, Name: name}

	token, err := f.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to mint session token", "err", err)
		return nil, err
	}

	return &models.AuthSession{User: user, Token: token}, nil
}

func (f *MockAuthFacade) socialSession(ctx context.Context, provider string) (*models.AuthSession, error) {
	name := fmt.Sprintf("%s User", capitalize(provider))
	email := fmt.Sprintf("%s@social.algorhythm.dev", strings.ToLower(provider))
	return f.session(ctx, email, name)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func nameFromEmail(email string) string {
	local, _, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return "AlgoRhythm User"
	}
	return local
}
