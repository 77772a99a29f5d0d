// package session holds the viewer's authentication state for the lifetime
// of the process: an opaque bearer token and the user profile, mirrored to a
// persistent [Store] so a later process can pick the session back up.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"buzznews/internal/models"
	"buzznews/internal/shared"

	"golang.org/x/oauth2"
)

// Session is the single mutable authentication state shared by every
// component. Mutation happens only through Hydrate, Login, Signup and
// Logout; reads are safe from any goroutine.
type Session struct {
	mu      sync.RWMutex
	store   Store
	user    *models.User
	token   string
	loading bool
}

var _ oauth2.TokenSource = (*Session)(nil)

// New creates a Session backed by the given store. The session reports
// loading until Hydrate has run.
func New(store Store) *Session {
	return &Session{store: store, loading: true}
}

// Hydrate populates the session from the persisted store. It runs once at
// process start, makes no network call, and only populates the session when
// both the token and the user blob are present. Loading is cleared even when
// the store read fails.
func (s *Session) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	token, haveToken, err := s.store.Get(KeyToken)
	if err != nil {
		return err
	}
	rawUser, haveUser, err := s.store.Get(KeyUser)
	if err != nil {
		return err
	}
	if !haveToken || !haveUser {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return fmt.Errorf("corrupt stored user profile: %w", err)
	}

	s.token = token
	s.user = &user
	return nil
}

// Login establishes an authenticated session and persists it.
func (s *Session) Login(user models.User, token string) error {
	return s.establish(user, token)
}

// Signup establishes an authenticated session after account creation.
// Identical contract to Login.
func (s *Session) Signup(user models.User, token string) error {
	return s.establish(user, token)
}

func (s *Session) establish(user models.User, token string) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", shared.ErrAuthFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = &user

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user profile: %w", err)
	}
	if err := s.store.Set(KeyToken, token); err != nil {
		return err
	}
	return s.store.Set(KeyUser, string(rawUser))
}

// Logout clears the session and erases both persisted keys. The cleared
// state is visible to all readers as soon as Logout returns.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	if err := s.store.Delete(KeyToken); err != nil {
		return err
	}
	return s.store.Delete(KeyUser)
}

// Loading reports whether the initial hydration pass is still pending.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// IsAuthenticated is true iff a token is present. The user profile is not
// required; callers reading profile fields must handle a nil User.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// User returns a copy of the current profile, or nil when absent.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Token implements [oauth2.TokenSource] so the API client can attach the
// bearer token to outgoing requests. Returns an error when no session is
// established.
func (s *Session) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return nil, shared.ErrNotAuthenticated
	}
	return &oauth2.Token{AccessToken: s.token}, nil
}
