package client

import (
	"context"
	"net/http"
	"sync"
)

// Themes a Session can persist.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SessionConfig configures a Session. Store is required; a nil HTTPClient
// gets a default.
type SessionConfig struct {
	BaseURL    string
	Store      TokenStore
	HTTPClient *http.Client
}

// Session owns the signed-in user, the bearer token, and the persisted
// theme. It is explicitly constructed and injected rather than global, so
// two sessions can coexist in one process.
//
// A Session constructed over a stored token starts a background probe to
// rehydrate the user. Close (or Logout) cancels the probe, so a late probe
// response can never repopulate a session that has since signed out.
type Session struct {
	client *Client
	store  TokenStore

	mu              sync.RWMutex
	user            *User
	theme           string
	cancelRehydrate context.CancelFunc
}

// NewSession creates a Session, loading persisted state from the store. With
// a stored token it begins rehydrating the user in the background.
func NewSession(cfg SessionConfig) (*Session, error) {
	state, err := cfg.Store.Load()
	if err != nil {
		return nil, err
	}

	s := &Session{
		client: NewClient(cfg.BaseURL, cfg.HTTPClient),
		store:  cfg.Store,
		theme:  state.Theme,
	}
	if s.theme == "" {
		s.theme = ThemeLight
	}

	if state.Token != "" {
		s.client.SetToken(state.Token)
		ctx, cancel := context.WithCancel(context.Background())
		s.cancelRehydrate = cancel
		go s.rehydrate(ctx)
	}
	return s, nil
}

// Client returns the underlying HTTP client, for entity round-trips.
func (s *Session) Client() *Client {
	return s.client
}

// User returns the signed-in user, or nil before login or while a
// rehydration probe is still in flight.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// rehydrate resolves the stored token to its user. A token the server no
// longer accepts is discarded.
func (s *Session) rehydrate(ctx context.Context) {
	user, err := roundTrip[User](ctx, s.client, http.MethodGet, "/api/auth/auth", nil, nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		s.client.SetToken("")
		_ = s.persistLocked()
		return
	}
	s.user = &user
}

// Login signs in with a username or email and installs the returned token.
func (s *Session) Login(ctx context.Context, usernameOrEmail, password string) (*User, error) {
	body := map[string]string{
		"username_or_email": usernameOrEmail,
		"password":          password,
	}
	creds, err := roundTrip[Credentials](ctx, s.client, http.MethodPost, "/api/auth/login", nil, body)
	if err != nil {
		return nil, err
	}
	return s.install(creds)
}

// Signup registers an account and signs it in.
func (s *Session) Signup(ctx context.Context, username, email, password string) (*User, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	creds, err := roundTrip[Credentials](ctx, s.client, http.MethodPost, "/api/auth/signup", nil, body)
	if err != nil {
		return nil, err
	}
	return s.install(creds)
}

func (s *Session) install(creds Credentials) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelRehydrate != nil {
		s.cancelRehydrate()
		s.cancelRehydrate = nil
	}

	user := creds.User
	s.user = &user
	s.client.SetToken(creds.JWT)
	if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return s.user, nil
}

// Logout clears the user and token, locally only; the token simply expires
// server-side.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelRehydrate != nil {
		s.cancelRehydrate()
		s.cancelRehydrate = nil
	}

	s.user = nil
	s.client.SetToken("")
	return s.persistLocked()
}

// Theme returns the persisted theme.
func (s *Session) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips between light and dark and persists the choice.
func (s *Session) ToggleTheme() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	return s.theme, s.persistLocked()
}

// Close cancels any in-flight rehydration probe. The session remains usable.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelRehydrate != nil {
		s.cancelRehydrate()
		s.cancelRehydrate = nil
	}
}

func (s *Session) persistLocked() error {
	return s.store.Save(State{
		Token: s.client.Token(),
		Theme: s.theme,
	})
}
