//go:build !integration
// +build !integration

package service_session_auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/cineverse/core/internal/model"
	usecase_user "github.com/cineverse/core/internal/usecase/user"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type SessionAuthSuite struct {
	suite.Suite
}

// fakeUserRepository is a map-backed stand-in for the Postgres driver.
type fakeUserRepository struct {
	users map[string]model.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]model.User)}
}

func (f *fakeUserRepository) Store(ctx context.Context, u model.User) error {
	if _, ok := f.users[u.Email]; ok {
		return ErrDuplicateEmail
	}
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserRepository) LoadByEmail(ctx context.Context, email string) (model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return model.User{}, usecase_user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) SetVerified(ctx context.Context, email string) error {
	u, ok := f.users[email]
	if !ok {
		return usecase_user.ErrUserNotFound
	}
	u.Verified = true
	f.users[email] = u
	return nil
}

type fakeSessionCache struct {
	values map[string]string
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{values: make(map[string]string)}
}

func (f *fakeSessionCache) Set(key string, value string, ttl time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeSessionCache) Get(key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeSessionCache) Delete(key string) error {
	delete(f.values, key)
	return nil
}

func register(t provider.T, s *Service, email string, verified bool) {
	err := s.Register(context.Background(), model.User{Email: email, Name: "Viewer"}, "hunter22")
	assert.NoError(t, err)
	if verified {
		assert.NoError(t, s.Verify(context.Background(), email))
	}
}

func (suite *SessionAuthSuite) TestRegister(t provider.T) {
	t.Parallel()

	users := newFakeUserRepository()
	s := New(users, newFakeSessionCache(), time.Hour)

	register(t, s, "viewer@example.com", false)

	stored := users.users["viewer@example.com"]
	assert.Equal(t, model.RoleUser, stored.Role)
	assert.False(t, stored.Verified)
	assert.NoError(t, bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("hunter22")))

	err := s.Register(context.Background(), model.User{Email: "viewer@example.com"}, "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func (suite *SessionAuthSuite) TestSignIn(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		email       string
		password    string
		verified    bool
		registered  bool
		expectedErr error
	}{
		{
			name:       "Should sign in a verified user",
			email:      "viewer@example.com",
			password:   "hunter22",
			verified:   true,
			registered: true,
		},
		{
			name:        "Should reject a wrong password",
			email:       "viewer@example.com",
			password:    "wrong",
			verified:    true,
			registered:  true,
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:        "Should reject an unknown email",
			email:       "nobody@example.com",
			password:    "hunter22",
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:        "Should reject an unverified account",
			email:       "viewer@example.com",
			password:    "hunter22",
			registered:  true,
			expectedErr: ErrNotVerified,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			s := New(newFakeUserRepository(), newFakeSessionCache(), time.Hour)
			if tc.registered {
				register(t, s, "viewer@example.com", tc.verified)
			}

			token, err := s.SignIn(context.Background(), tc.email, tc.password)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func (suite *SessionAuthSuite) TestResolve(t provider.T) {
	t.Parallel()

	s := New(newFakeUserRepository(), newFakeSessionCache(), time.Hour)
	register(t, s, "viewer@example.com", true)

	token, err := s.SignIn(context.Background(), "viewer@example.com", "hunter22")
	assert.NoError(t, err)

	session, err := s.Resolve(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "viewer@example.com", session.Email)
	assert.Equal(t, model.RoleUser, session.Role)
	assert.False(t, session.IsAdmin())

	assert.NoError(t, s.SignOut(token))

	_, err = s.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionAuthSuite(t *testing.T) {
	suite.RunSuite(t, new(SessionAuthSuite))
}
