// Package session owns the authenticated session for the running
// dashboard: the current token and the resolved user profile. It is the
// only process-wide mutable state; all mutation goes through Store
// methods.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/phishdirectory/dashboard/internal/api"
	"github.com/phishdirectory/dashboard/internal/metrics"
	"github.com/phishdirectory/dashboard/internal/model"
)

// User-facing messages. Login intentionally collapses HTTP 400 into one
// generic message so the response never reveals which field was wrong.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgLoginFailed        = "Login failed"
	MsgUnexpectedError    = "An unexpected error occurred. Please try again."
)

// Backend is the slice of the API client the session store uses.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Profile(ctx context.Context) (*model.UserProfile, error)
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	// Started is false until Bootstrap has begun.
	Started bool
	// Loading is true while the initial profile resolution is in flight.
	Loading bool
	// Token is the persisted bearer token, if any.
	Token string
	// User is non-nil only after a successful profile fetch with the
	// current token.
	User *model.UserProfile
}

// LoginResult is the outcome of a login attempt. Login never returns an
// error; failures are normalized into the Error message.
type LoginResult struct {
	Success bool
	Error   string
}

// Store holds the session and coordinates token persistence with
// profile resolution against the backend.
type Store struct {
	mu      sync.RWMutex
	started bool
	loading bool
	token   string
	user    *model.UserProfile

	backend  Backend
	tokens   TokenStore
	recorder metrics.Recorder
	logger   *slog.Logger
}

// New creates a Store. The session starts in the loading state until
// Bootstrap settles it.
func New(backend Backend, tokens TokenStore, recorder metrics.Recorder, logger *slog.Logger) *Store {
	return &Store{
		loading:  true,
		backend:  backend,
		tokens:   tokens,
		recorder: recorder,
		logger:   logger,
	}
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Started: s.started,
		Loading: s.loading,
		Token:   s.token,
		User:    s.user,
	}
}

// User returns the resolved profile, or nil for an anonymous session.
func (s *Store) User() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Bootstrap reads the persisted token at startup and, if one exists,
// resolves the profile. It always ends with the loading flag cleared,
// so the guard can settle into anonymous or authenticated.
func (s *Store) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	s.started = true
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.Warn("failed to read persisted token", "error", err)
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.RefreshProfile(ctx)
}

// Login posts credentials to the backend. On success the issued token
// is persisted and the profile is fetched before the result is
// returned. HTTP 400 is normalized to a fixed message; any unexpected
// failure is collapsed into a generic one. Login never panics or leaks
// raw transport errors to the caller.
func (s *Store) Login(ctx context.Context, email, password string) LoginResult {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	resp, err := s.backend.Login(ctx, email, password)
	if err != nil {
		if apiErr, ok := api.AsError(err); ok {
			s.recorder.IncLogin(metrics.LoginRejected)
			s.logger.Warn("login rejected", "status", apiErr.Status)
			if apiErr.Status == http.StatusBadRequest {
				return LoginResult{Error: MsgInvalidCredentials}
			}
			msg := apiErr.Message
			if msg == "" || msg == api.FallbackErrorMessage {
				msg = MsgLoginFailed
			}
			return LoginResult{Error: msg}
		}
		s.recorder.IncLogin(metrics.LoginError)
		s.logger.Error("login request failed", "error", err)
		return LoginResult{Error: MsgUnexpectedError}
	}

	if resp.Token == "" {
		s.recorder.IncLogin(metrics.LoginError)
		s.logger.Error("login response carried no token")
		return LoginResult{Error: MsgUnexpectedError}
	}

	if err := s.tokens.Save(ctx, resp.Token); err != nil {
		s.recorder.IncLogin(metrics.LoginError)
		s.logger.Error("failed to persist token", "error", err)
		return LoginResult{Error: MsgUnexpectedError}
	}

	s.mu.Lock()
	s.token = resp.Token
	s.mu.Unlock()

	// Resolve the profile with the just-persisted token before
	// reporting success. A failed fetch self-heals below.
	s.RefreshProfile(ctx)

	s.recorder.IncLogin(metrics.LoginSuccess)
	return LoginResult{Success: true}
}

// RefreshProfile fetches /user/me with the persisted token. On success
// the user is replaced wholesale. On any failure the persisted token is
// cleared and the session reset - the sole self-healing path for stale
// or invalid tokens.
func (s *Store) RefreshProfile(ctx context.Context) {
	user, err := s.backend.Profile(ctx)
	if err != nil {
		s.logger.Warn("profile fetch failed, clearing session", "error", err)
		if cerr := s.tokens.Clear(ctx); cerr != nil {
			s.logger.Error("failed to clear persisted token", "error", cerr)
		}
		s.mu.Lock()
		s.token = ""
		s.user = nil
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// Logout clears the persisted token and resets the session. It makes no
// network call and is idempotent.
func (s *Store) Logout(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Error("failed to clear persisted token", "error", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.recorder.IncLogout()
}
