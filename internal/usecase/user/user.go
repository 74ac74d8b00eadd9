package usecase_user

import (
	"context"
	"errors"
	"fmt"

	"github.com/cineverse/core/internal/model"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAvatarTooLarge      = errors.New("avatar exceeds upload size limit")
	ErrFailedToLoad        = errors.New("failed to load user")
	ErrFailedToStore       = errors.New("failed to store user")
	ErrFailedToStoreAvatar = errors.New("failed to store avatar")
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	LoadByEmail(ctx context.Context, email string) (model.User, error)
	LoadAllEmails(ctx context.Context) ([]string, error)
	UpdateProfile(ctx context.Context, u model.User) error
}

//go:generate mockery --name=AvatarRepository --output=./mocks/avatar --filename=avatar.go
type AvatarRepository interface {
	Save(ctx context.Context, obj model.FileObject, readyKey *string) (string, error)
	Delete(ctx context.Context, key string) error
}

type Usecase struct {
	repository Repository
	avatars    AvatarRepository
}

func New(
	repository Repository,
	avatars AvatarRepository,
) *Usecase {
	return &Usecase{
		repository: repository,
		avatars:    avatars,
	}
}

func (u *Usecase) Profile(ctx context.Context, email string) (model.User, error) {
	user, err := u.repository.LoadByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	user.PasswordHash = nil
	return user, nil
}

// UpdateProfile changes mutable fields only: name, gender, avatar link.
func (u *Usecase) UpdateProfile(ctx context.Context, session model.SessionContext, name, gender string) error {
	user, err := u.repository.LoadByEmail(ctx, session.Email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	user.Name = name
	user.Gender = gender

	if err := u.repository.UpdateProfile(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}
	return nil
}

func (u *Usecase) UploadAvatar(ctx context.Context, session model.SessionContext, avatar model.Avatar) (string, error) {
	if len(avatar.Content) > model.MaxUploadSize {
		return "", ErrAvatarTooLarge
	}

	user, err := u.repository.LoadByEmail(ctx, session.Email)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	avatar.Email = session.Email
	key, err := u.avatars.Save(ctx, avatar, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToStoreAvatar, err)
	}

	user.AvatarURL = key
	if err := u.repository.UpdateProfile(ctx, user); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}

	return key, nil
}

// Emails lists every registered address, used for admin broadcast fan-out.
func (u *Usecase) Emails(ctx context.Context) ([]string, error) {
	emails, err := u.repository.LoadAllEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return emails, nil
}
