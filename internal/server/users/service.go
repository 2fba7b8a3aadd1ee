package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/gatormarket/internal/logging"
	"github.com/dmitrijs2005/gatormarket/internal/server/auth"
	"github.com/dmitrijs2005/gatormarket/internal/server/config"
	"github.com/dmitrijs2005/gatormarket/internal/server/validation"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
)

// SignupInput is the body of a signup request.
type SignupInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,institutional"`
	Password string `json:"password" validate:"required,min=8,max=72,strongpassword"`
}

type Service struct {
	repo      Repository
	validate  *validation.Validator
	jwtSecret []byte
	tokenTTL  time.Duration
	hashCost  int
	logger    logging.Logger
}

func NewService(repo Repository, cfg *config.Config, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Service{
		repo:      repo,
		validate:  validation.New(cfg.EmailDomain),
		jwtSecret: []byte(cfg.SecretKey),
		tokenTTL:  cfg.AccessTokenTTL,
		hashCost:  bcrypt.DefaultCost,
		logger:    logger.With("component", "users"),
	}
}

// WithHashCost sets the bcrypt cost; tests lower it to bcrypt.MinCost.
func (s *Service) WithHashCost(cost int) *Service {
	s.hashCost = cost
	return s
}

// Signup validates in and creates a regular account.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, in.Email, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	u, err := s.create(ctx, in.Username, in.Email, in.Password, false)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user signed up", "id", u.ID, "username", u.Username)
	return u, nil
}

// EnsureUser creates the account unless one with the email exists. Unlike
// Signup it skips validation, which lets seed data use any password.
func (s *Service) EnsureUser(ctx context.Context, username, email, password string, isAdmin bool) (*User, bool, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}
	u, err = s.create(ctx, username, email, password, isAdmin)
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (s *Service) create(ctx context.Context, username, email, password string, isAdmin bool) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Create(ctx, &User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	})
}

// Login accepts either the email or the username as login and returns a
// signed access token.
func (s *Service) Login(ctx context.Context, login, password string) (string, *User, error) {
	login = strings.TrimSpace(login)

	var (
		u   *User
		err error
	)
	if strings.Contains(login, "@") {
		u, err = s.repo.GetByEmail(ctx, login)
	} else {
		u, err = s.repo.GetByUsername(ctx, login)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		s.logger.Debug(ctx, "login rejected", "username", u.Username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(u.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}

// Authenticate resolves a bearer token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	username, err := auth.SubjectFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, ErrUnauthorized
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}
