package usecase_review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cineverse/core/internal/model"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyReviewed    = errors.New("movie already reviewed by this user")
	ErrReviewNotFound     = errors.New("review not found")
	ErrNotOwner           = errors.New("review belongs to another user")
	ErrFailedToStore      = errors.New("failed to store review")
	ErrFailedToLoad       = errors.New("failed to load reviews")
	ErrFailedToDelete     = errors.New("failed to delete review")
	ErrFailedToToggleLike = errors.New("failed to toggle like")
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	Store(ctx context.Context, r model.Review) error
	LoadByID(ctx context.Context, id uuid.UUID) (model.Review, error)
	LoadByMovie(ctx context.Context, movieID uuid.UUID) ([]model.Review, error)
	HasReview(ctx context.Context, movieID uuid.UUID, email string) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, reviewID uuid.UUID, email string) error
	Unlike(ctx context.Context, reviewID uuid.UUID, email string) error
}

//go:generate mockery --name=Summarizer --output=./mocks/summarizer --filename=summarizer.go
type Summarizer interface {
	Summarize(reviews []model.Review) model.RatingSummary
}

type Usecase struct {
	repository Repository
	summarizer Summarizer
}

func New(
	repository Repository,
	summarizer Summarizer,
) *Usecase {
	return &Usecase{
		repository: repository,
		summarizer: summarizer,
	}
}

func (u *Usecase) Create(ctx context.Context, r model.Review) error {
	if r.Text == "" {
		return fmt.Errorf("%w: review text cannot be empty", ErrInvalidInput)
	}
	if _, ok := model.RatingCategoryByID(r.CategoryID); !ok {
		return fmt.Errorf("%w: unknown rating category %d", ErrInvalidInput, r.CategoryID)
	}

	exists, err := u.repository.HasReview(ctx, r.MovieID, r.Email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}
	if exists {
		return ErrAlreadyReviewed
	}

	if err := u.repository.Store(ctx, r); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}

	return nil
}

// Delete removes a review. Owners delete their own; admins delete any.
func (u *Usecase) Delete(ctx context.Context, session model.SessionContext, id uuid.UUID) error {
	r, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("%w: %w", ErrFailedToDelete, err)
	}

	if r.Email != session.Email && !session.IsAdmin() {
		return ErrNotOwner
	}

	if err := u.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDelete, err)
	}

	return nil
}

func (u *Usecase) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]model.Review, error) {
	reviews, err := u.repository.LoadByMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return reviews, nil
}

// Summary recomputes the rating view over the current full review set of a
// movie on every call.
func (u *Usecase) Summary(ctx context.Context, movieID uuid.UUID) (model.RatingSummary, error) {
	reviews, err := u.repository.LoadByMovie(ctx, movieID)
	if err != nil {
		return model.RatingSummary{}, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return u.summarizer.Summarize(reviews), nil
}

func (u *Usecase) Like(ctx context.Context, reviewID uuid.UUID, email string) error {
	if err := u.repository.Like(ctx, reviewID, email); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToToggleLike, err)
	}
	return nil
}

func (u *Usecase) Unlike(ctx context.Context, reviewID uuid.UUID, email string) error {
	if err := u.repository.Unlike(ctx, reviewID, email); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToToggleLike, err)
	}
	return nil
}
