package usecase_recommendation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cineverse/core/internal/model"
)

// MinMessageLength gates submissions: a recommendation without a narrative
// is noise.
const MinMessageLength = 50

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMessageTooShort    = errors.New("recommendation message too short")
	ErrDuplicate          = errors.New("duplicate recommendation")
	ErrCheckUnavailable   = errors.New("duplicate check unavailable")
	ErrNotFound           = errors.New("recommendation not found")
	ErrNotOwner           = errors.New("recommendation belongs to another user")
	ErrFailedToStore      = errors.New("failed to store recommendation")
	ErrFailedToLoad       = errors.New("failed to load recommendations")
	ErrFailedToDelete     = errors.New("failed to delete recommendation")
	ErrFailedToToggleLike = errors.New("failed to toggle like")
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	Store(ctx context.Context, r model.Recommendation) error
	Update(ctx context.Context, r model.Recommendation) error
	LoadByID(ctx context.Context, id uuid.UUID) (model.Recommendation, error)
	Load(ctx context.Context) ([]model.Recommendation, error)
	LoadByUser(ctx context.Context, email string) ([]model.Recommendation, error)
	Exists(ctx context.Context, email string, movieID1 uuid.UUID, movieID2 *uuid.UUID, kind model.RecommendationKind) (bool, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, recommendationID uuid.UUID, email string) error
	Unlike(ctx context.Context, recommendationID uuid.UUID, email string) error
}

//go:generate mockery --name=MovieTitles --output=./mocks/movietitles --filename=movietitles.go
type MovieTitles interface {
	LoadByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Movie, error)
}

type Usecase struct {
	repository Repository
	movies     MovieTitles
}

func New(
	repository Repository,
	movies MovieTitles,
) *Usecase {
	return &Usecase{
		repository: repository,
		movies:     movies,
	}
}

// CheckDuplicate verifies that the author has not already submitted the
// same recommendation. Pairing recommendations are order-insensitive on the
// movie pair, so the reversed tuple is checked as well. A failing check
// query rejects the submission (fail-closed).
func (u *Usecase) CheckDuplicate(ctx context.Context, r model.Recommendation) error {
	exists, err := u.repository.Exists(ctx, r.Email, r.MovieID1, r.MovieID2, r.Kind)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCheckUnavailable, err)
	}
	if exists {
		return u.conflict(ctx, r)
	}

	if r.IsPairing() {
		reversedSecond := r.MovieID1
		exists, err = u.repository.Exists(ctx, r.Email, *r.MovieID2, &reversedSecond, r.Kind)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCheckUnavailable, err)
		}
		if exists {
			return u.conflict(ctx, r)
		}
	}

	return nil
}

func (u *Usecase) conflict(ctx context.Context, r model.Recommendation) error {
	ids := []uuid.UUID{r.MovieID1}
	if r.MovieID2 != nil {
		ids = append(ids, *r.MovieID2)
	}

	movies, err := u.movies.LoadByIDs(ctx, ids)
	if err != nil || len(movies) == 0 {
		return fmt.Errorf("%w: you already recommended this movie", ErrDuplicate)
	}

	if len(movies) == 2 {
		return fmt.Errorf("%w: you already recommended the pairing %q and %q",
			ErrDuplicate, movies[0].Title, movies[1].Title)
	}
	return fmt.Errorf("%w: you already recommended %q", ErrDuplicate, movies[0].Title)
}

func (u *Usecase) Submit(ctx context.Context, r model.Recommendation) error {
	if r.Kind != model.KindNormal && r.Kind != model.KindPairing {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, r.Kind)
	}
	if r.Kind == model.KindPairing && r.MovieID2 == nil {
		return fmt.Errorf("%w: pairing needs a second movie", ErrInvalidInput)
	}
	if len(r.Message) < MinMessageLength {
		return fmt.Errorf("%w: need at least %d characters", ErrMessageTooShort, MinMessageLength)
	}

	if err := u.CheckDuplicate(ctx, r); err != nil {
		return err
	}

	if err := u.repository.Store(ctx, r); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}

	return nil
}

func (u *Usecase) Edit(ctx context.Context, session model.SessionContext, r model.Recommendation) error {
	if len(r.Message) < MinMessageLength {
		return fmt.Errorf("%w: need at least %d characters", ErrMessageTooShort, MinMessageLength)
	}

	existing, err := u.repository.LoadByID(ctx, r.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	if existing.Email != session.Email {
		return ErrNotOwner
	}

	if err := u.repository.Update(ctx, r); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}
	return nil
}

func (u *Usecase) Delete(ctx context.Context, session model.SessionContext, id uuid.UUID) error {
	existing, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	if existing.Email != session.Email && !session.IsAdmin() {
		return ErrNotOwner
	}

	if err := u.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDelete, err)
	}
	return nil
}

func (u *Usecase) Load(ctx context.Context) ([]model.Recommendation, error) {
	recs, err := u.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return recs, nil
}

func (u *Usecase) LoadByUser(ctx context.Context, email string) ([]model.Recommendation, error) {
	recs, err := u.repository.LoadByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return recs, nil
}

func (u *Usecase) Like(ctx context.Context, id uuid.UUID, email string) error {
	if err := u.repository.Like(ctx, id, email); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToToggleLike, err)
	}
	return nil
}

func (u *Usecase) Unlike(ctx context.Context, id uuid.UUID, email string) error {
	if err := u.repository.Unlike(ctx, id, email); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToToggleLike, err)
	}
	return nil
}
