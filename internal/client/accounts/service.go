// Package accounts is the local mock account backend: a user registry and
// the current-session email, both kept in the client store. Every operation
// waits for a configurable latency first so flows behave as they would
// against a real server.
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gatormarket/internal/client/forms"
	"github.com/dmitrijs2005/gatormarket/internal/client/models"
	"github.com/dmitrijs2005/gatormarket/internal/client/store"
	"github.com/dmitrijs2005/gatormarket/internal/logging"
)

var (
	ErrInvalidDomain      = errors.New("email outside the institutional domain")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("no persisted session")
)

// DomainError carries the domain an email was checked against. It matches
// ErrInvalidDomain under errors.Is.
type DomainError struct {
	Domain string
}

func (e *DomainError) Error() string { return ErrInvalidDomain.Error() + ": " + e.Domain }

func (e *DomainError) Is(target error) bool { return target == ErrInvalidDomain }

// DefaultLatency matches the delay the mock backend has always simulated.
const DefaultLatency = 500 * time.Millisecond

// Delayer waits before an operation. It returns ctx.Err() when ctx ends first.
type Delayer func(ctx context.Context, d time.Duration) error

// Sleep is the real Delayer.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type Service struct {
	store   store.Store
	domain  string
	latency time.Duration
	delay   Delayer
	logger  logging.Logger

	// mu serialises the read-modify-write of the registry.
	mu sync.Mutex
}

func NewService(st store.Store, domain string, latency time.Duration, logger logging.Logger) *Service {
	if domain == "" {
		domain = forms.DefaultEmailDomain
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Service{
		store:   st,
		domain:  domain,
		latency: latency,
		delay:   Sleep,
		logger:  logger.With("component", "accounts"),
	}
}

// WithDelayer replaces the latency source; tests pass a no-op.
func (s *Service) WithDelayer(d Delayer) *Service {
	s.delay = d
	return s
}

// Register adds a user to the registry and makes it the current session.
// The registry and the session key are written in one store transaction.
func (s *Service) Register(ctx context.Context, displayName, email, password string) (models.Identity, error) {
	if err := s.delay(ctx, s.latency); err != nil {
		return models.Identity{}, err
	}
	email = strings.TrimSpace(email)

	if !forms.HasDomain(email, s.domain) {
		return models.Identity{}, &DomainError{Domain: s.domain}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return models.Identity{}, ErrDuplicateEmail
		}
	}

	users = append(users, models.User{Email: email, Password: password, Username: displayName})
	data, err := json.Marshal(users)
	if err != nil {
		return models.Identity{}, fmt.Errorf("encode registry: %w", err)
	}

	if err := s.store.SetMany(ctx, map[string]string{
		store.KeyUsers:       string(data),
		store.KeyCurrentUser: email,
	}); err != nil {
		return models.Identity{}, fmt.Errorf("persist registration: %w", err)
	}

	s.logger.Info(ctx, "user registered", "email", email)
	return models.Identity{Email: email, Username: displayName}, nil
}

// Login makes email the current session when the password matches exactly.
func (s *Service) Login(ctx context.Context, email, password string) (models.Identity, error) {
	if err := s.delay(ctx, s.latency); err != nil {
		return models.Identity{}, err
	}
	email = strings.TrimSpace(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return models.Identity{}, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := s.store.Set(ctx, store.KeyCurrentUser, email); err != nil {
				return models.Identity{}, fmt.Errorf("persist session: %w", err)
			}
			s.logger.Info(ctx, "user logged in", "email", email)
			return models.Identity{Email: u.Email, Username: u.Username}, nil
		}
	}

	s.logger.Debug(ctx, "login rejected", "email", email)
	return models.Identity{}, ErrInvalidCredentials
}

// Logout clears the current session. It is a no-op when nobody is logged in.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, store.KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the persisted session email, if any.
func (s *Service) CurrentUser(ctx context.Context) (string, bool, error) {
	email, ok, err := s.store.Get(ctx, store.KeyCurrentUser)
	if err != nil {
		return "", false, fmt.Errorf("read session: %w", err)
	}
	if !ok || email == "" {
		return "", false, nil
	}
	return email, true, nil
}

func (s *Service) HasSession(ctx context.Context) (bool, error) {
	_, ok, err := s.CurrentUser(ctx)
	return ok, err
}

// Restore resumes the persisted session. The stored email is trusted as is,
// it is not checked against the registry; a matching record only supplies
// the username.
func (s *Service) Restore(ctx context.Context) (models.Identity, error) {
	email, ok, err := s.CurrentUser(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	if !ok {
		return models.Identity{}, ErrNoSession
	}

	id := models.Identity{Email: email}
	if users, err := s.loadUsers(ctx); err == nil {
		for _, u := range users {
			if u.Email == email {
				id.Username = u.Username
				break
			}
		}
	}
	return id, nil
}

// Users returns a copy of the registry.
func (s *Service) Users(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUsers(ctx)
}

func (s *Service) loadUsers(ctx context.Context) ([]models.User, error) {
	raw, ok, err := s.store.Get(ctx, store.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	if !ok || raw == "" {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	return users, nil
}
