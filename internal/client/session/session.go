// Package session holds the console's authentication state.
//
// The stored credential token is the single source of truth: the session is
// authenticated exactly when a token is stored. Restore derives the state at
// startup; afterwards only Login and Logout change it. Token contents are
// never checked for expiry or signature.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/casekeeper/internal/client/client"
	"github.com/dmitrijs2005/casekeeper/internal/client/models"
	"github.com/dmitrijs2005/casekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/casekeeper/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKey is the metadata key of the stored credential.
const TokenKey = "token"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyToken       = errors.New("login response carried no token")
)

type Session struct {
	api   client.Client
	store metadata.Repository
	log   logging.Logger

	mu      sync.RWMutex
	token   string
	reloads []func(ctx context.Context)
}

func New(api client.Client, store metadata.Repository, log logging.Logger) *Session {
	return &Session{api: api, store: store, log: log}
}

// Restore loads the stored token, if any, and hands it to the API client.
func (s *Session) Restore(ctx context.Context) error {
	token, _, err := s.store.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	s.setToken(token)
	s.log.Debug(ctx, "session restored", "authenticated", token != "")
	return nil
}

// OnReload registers fn to run after a logout, so views can drop what they
// show and render again.
func (s *Session) OnReload(fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloads = append(s.reloads, fn)
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) setToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.api.SetToken(token)
}

// Login authenticates against the backend and stores the returned token.
// On any failure the session and the store are left unchanged.
func (s *Session) Login(ctx context.Context, in models.LoginInput) error {
	resp, err := s.api.Login(ctx, in)
	if err != nil {
		s.log.Warn(ctx, "login rejected", "email", in.Email, "error", err)
		return fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return ErrEmptyToken
	}

	if err := s.store.Set(ctx, TokenKey, resp.Token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	s.setToken(resp.Token)

	s.log.Info(ctx, "logged in", "email", in.Email)
	return nil
}

// Logout tells the backend, discards the stored token and runs the reload
// hooks. If the backend call fails nothing changes.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if err := s.store.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("discard token: %w", err)
	}
	s.setToken("")
	s.log.Info(ctx, "logged out")

	s.mu.RLock()
	reloads := append([]func(context.Context){}, s.reloads...)
	s.mu.RUnlock()
	for _, fn := range reloads {
		fn(ctx)
	}
	return nil
}

// Register creates an account. It does not log in.
func (s *Session) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	resp, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	s.log.Info(ctx, "registered", "email", in.Email)
	return &resp.Data.User, nil
}

// Claims decodes the registered claims of a JWT token for display. The
// signature is not verified and the result never affects IsAuthenticated.
func (s *Session) Claims() (*jwt.RegisteredClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("token is not a readable JWT: %w", err)
	}
	return claims, nil
}
