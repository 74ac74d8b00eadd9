package service_session_auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cineverse/core/internal/model"
	usecase_user "github.com/cineverse/core/internal/usecase/user"
)

type Token = string

var (
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrNoSession          = errors.New("no active session")
	ErrNotVerified        = errors.New("email not verified")
)

type UserRepository interface {
	Store(ctx context.Context, u model.User) error
	LoadByEmail(ctx context.Context, email string) (model.User, error)
	SetVerified(ctx context.Context, email string) error
}

type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

type Service struct {
	users        UserRepository
	sessionCache SessionCache
	ttl          time.Duration
}

func New(
	users UserRepository,
	sessionCache SessionCache,
	ttl time.Duration,
) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		users:        users,
		sessionCache: sessionCache,
		ttl:          ttl,
	}
}

func (s *Service) Register(ctx context.Context, u model.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	u.PasswordHash = hash
	u.Role = model.RoleUser
	u.Verified = false

	if err := s.users.Store(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return ErrDuplicateEmail
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (Token, error) {
	u, err := s.users.LoadByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, usecase_user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", errors.Join(ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if !u.Verified {
		return "", ErrNotVerified
	}

	t := s.genToken()
	if err := s.sessionCache.Set(t, u.Email, s.ttl); err != nil {
		return "", errors.Join(ErrInternal, err)
	}

	return t, nil
}

func (s *Service) SignOut(token Token) error {
	if err := s.sessionCache.Delete(token); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// Resolve maps a session token to the signed-in identity. Handlers pass the
// resulting SessionContext down instead of re-reading ambient state.
func (s *Service) Resolve(ctx context.Context, token Token) (model.SessionContext, error) {
	email, err := s.sessionCache.Get(token)
	if err != nil {
		return model.SessionContext{}, errors.Join(ErrInternal, err)
	}
	if email == "" {
		return model.SessionContext{}, ErrNoSession
	}

	u, err := s.users.LoadByEmail(ctx, email)
	if err != nil {
		return model.SessionContext{}, errors.Join(ErrInternal, err)
	}

	return model.SessionContext{
		Email:     u.Email,
		Role:      u.Role,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}, nil
}

func (s *Service) Verify(ctx context.Context, email string) error {
	if err := s.users.SetVerified(ctx, email); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (s *Service) genToken() string {
	return uuid.New().String()
}
