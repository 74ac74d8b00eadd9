package usecase_banner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cineverse/core/internal/model"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrBannerNotFound     = errors.New("banner not found")
	ErrImageTooLarge      = errors.New("banner image exceeds upload size limit")
	ErrFailedToStore      = errors.New("failed to store banner")
	ErrFailedToLoad       = errors.New("failed to load banners")
	ErrFailedToDelete     = errors.New("failed to delete banner")
	ErrFailedToStoreImage = errors.New("failed to store banner image")
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	Store(ctx context.Context, b model.Banner) error
	Load(ctx context.Context) ([]model.Banner, error)
	LoadByID(ctx context.Context, id uuid.UUID) (model.Banner, error)
	SetImageURL(ctx context.Context, id uuid.UUID, url string) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

//go:generate mockery --name=ImageRepository --output=./mocks/image --filename=image.go
type ImageRepository interface {
	Save(ctx context.Context, obj model.FileObject, readyKey *string) (string, error)
	Delete(ctx context.Context, key string) error
}

type Usecase struct {
	repository Repository
	images     ImageRepository
}

func New(
	repository Repository,
	images ImageRepository,
) *Usecase {
	return &Usecase{
		repository: repository,
		images:     images,
	}
}

func (u *Usecase) Create(ctx context.Context, b model.Banner) error {
	if b.MovieID == uuid.Nil {
		return fmt.Errorf("%w: banner must point at a movie", ErrInvalidInput)
	}

	if err := u.repository.Store(ctx, b); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}
	return nil
}

func (u *Usecase) Load(ctx context.Context) ([]model.Banner, error) {
	banners, err := u.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return banners, nil
}

// UploadImage stores the banner artwork and points the banner row at it.
// The size cap is enforced before any bytes leave the process.
func (u *Usecase) UploadImage(ctx context.Context, bannerID uuid.UUID, img model.BannerImage) (string, error) {
	if len(img.Content) > model.MaxUploadSize {
		return "", ErrImageTooLarge
	}

	if _, err := u.repository.LoadByID(ctx, bannerID); err != nil {
		if errors.Is(err, ErrBannerNotFound) {
			return "", ErrBannerNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	img.BannerID = bannerID.String()
	key, err := u.images.Save(ctx, img, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToStoreImage, err)
	}

	if err := u.repository.SetImageURL(ctx, bannerID, key); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}

	return key, nil
}

func (u *Usecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repository.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrBannerNotFound) {
			return ErrBannerNotFound
		}
		return fmt.Errorf("%w: %w", ErrFailedToDelete, err)
	}
	return nil
}
