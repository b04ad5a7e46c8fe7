package client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ideahub/ideahub-client/internal/api"
	"github.com/ideahub/ideahub-client/internal/types"
)

// AuthStatus is the session state machine's three-state status. A bare
// boolean cannot distinguish "don't know yet" from "confirmed logged out",
// which is what lets route guards show a neutral waiting view instead of
// flashing logged-out UI while the cookie is still being validated.
type AuthStatus int

const (
	// StatusLoading is the initial state on every fresh start and during
	// any in-flight auth transition.
	StatusLoading AuthStatus = iota
	// StatusAuthenticated means the server confirmed an identity bound to
	// the session cookie.
	StatusAuthenticated
	// StatusUnauthenticated means the server confirmed there is no valid
	// session.
	StatusUnauthenticated
)

func (s AuthStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Session owns the authenticated-user identity. All transitions go through
// CheckAuthStatus, Login and Logout; consumers only read Status and User.
type Session struct {
	mu     sync.RWMutex
	status AuthStatus
	user   *types.User

	http    *http.Client
	baseURL string
	log     zerolog.Logger
}

func newSession(httpClient *http.Client, baseURL string, logger zerolog.Logger) *Session {
	return &Session{
		status:  StatusLoading,
		http:    httpClient,
		baseURL: baseURL,
		log:     logger,
	}
}

// Status returns the current auth status.
func (s *Session) Status() AuthStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// User returns a copy of the authenticated user, or nil.
func (s *Session) User() *types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// CheckAuthStatus queries the server for the identity bound to the session
// cookie. Any failure, including "no session", is absorbed into the
// Unauthenticated state: this call never surfaces an error, so it is safe
// as the automatic startup check.
func (s *Session) CheckAuthStatus(ctx context.Context) *types.User {
	s.transition(StatusLoading, nil)

	u, err := api.GetCurrentUser(ctx, s.http, s.baseURL)
	if err != nil {
		if !errors.Is(err, types.ErrNoSession) {
			s.log.Debug().Err(err).Msg("auth status check failed")
		}
		s.transition(StatusUnauthenticated, nil)
		return nil
	}
	s.transition(StatusAuthenticated, u)
	return u
}

// Login exchanges credentials for a server session cookie, then re-runs
// CheckAuthStatus to populate the identity. Unlike CheckAuthStatus, Login
// surfaces failures so the UI can show "invalid credentials".
func (s *Session) Login(ctx context.Context, email, password string) (*types.User, error) {
	s.transition(StatusLoading, nil)

	if err := api.Login(ctx, s.http, s.baseURL, email, password); err != nil {
		s.transition(StatusUnauthenticated, nil)
		return nil, err
	}
	u := s.CheckAuthStatus(ctx)
	if u == nil {
		// Credential exchange succeeded but the cookie did not produce an
		// identity; the check above already settled on Unauthenticated.
		return nil, types.ErrNoSession
	}
	return u, nil
}

// Logout invalidates the server session. The local user is cleared
// unconditionally for predictable UI. If the server call failed, the status
// is re-derived with a fresh CheckAuthStatus rather than assumed logged
// out, so the client never believes it is logged out while the server still
// holds a live session; the original failure is then returned.
func (s *Session) Logout(ctx context.Context) error {
	s.transition(StatusLoading, nil)

	err := api.Logout(ctx, s.http, s.baseURL)
	if err == nil {
		s.transition(StatusUnauthenticated, nil)
		return nil
	}
	s.log.Warn().Err(err).Msg("logout failed, re-deriving auth status")
	s.CheckAuthStatus(ctx)
	return err
}

func (s *Session) transition(status AuthStatus, user *types.User) {
	s.mu.Lock()
	prev := s.status
	s.status = status
	s.user = user
	s.mu.Unlock()
	if prev != status {
		sessionTransitionsTotal.WithLabelValues(status.String()).Inc()
	}
}
