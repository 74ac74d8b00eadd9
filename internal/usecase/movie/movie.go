package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cineverse/core/internal/model"
)

const topReviewsForSummary = 5

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrMovieNotFound          = errors.New("movie not found")
	ErrPosterTooLarge         = errors.New("poster exceeds upload size limit")
	ErrFailedToStore          = errors.New("failed to store movie")
	ErrFailedToLoad           = errors.New("failed to load movie")
	ErrFailedToDelete         = errors.New("failed to delete movie")
	ErrFailedToStorePoster    = errors.New("failed to store poster")
	ErrFailedToGenerateDigest = errors.New("failed to generate review digest")
	ErrNoReviewsToSummarize   = errors.New("no reviews to summarize")
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	// Store persists the movie and its genre, cast and streaming-link child
	// rows in one transaction.
	Store(ctx context.Context, m model.Movie) error
	Update(ctx context.Context, m model.Movie) error
	Load(ctx context.Context) ([]*model.Movie, error)
	LoadByID(ctx context.Context, id uuid.UUID) (model.Movie, error)
	LoadByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Movie, error)
	Search(ctx context.Context, title string) ([]*model.Movie, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	SetAISummary(ctx context.Context, id uuid.UUID, text string) error
}

//go:generate mockery --name=PosterRepository --output=./mocks/poster --filename=poster.go
type PosterRepository interface {
	Save(ctx context.Context, obj model.FileObject, readyKey *string) (string, error)
	Delete(ctx context.Context, key string) error
}

//go:generate mockery --name=ReviewSource --output=./mocks/reviews --filename=reviews.go
type ReviewSource interface {
	LoadTopLikedByMovie(ctx context.Context, movieID uuid.UUID, limit int) ([]model.Review, error)
}

//go:generate mockery --name=TextGenerator --output=./mocks/generator --filename=generator.go
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Usecase struct {
	repository Repository
	posters    PosterRepository
	reviews    ReviewSource
	generator  TextGenerator
}

func New(
	repository Repository,
	posters PosterRepository,
	reviews ReviewSource,
	generator TextGenerator,
) *Usecase {
	return &Usecase{
		repository: repository,
		posters:    posters,
		reviews:    reviews,
		generator:  generator,
	}
}

func (u *Usecase) Create(ctx context.Context, m model.Movie) error {
	if m.Title == model.EmptyTitle {
		return fmt.Errorf("%w: movie title cannot be empty", ErrInvalidInput)
	}
	if m.Kind != model.KindMovie && m.Kind != model.KindSeries {
		return fmt.Errorf("%w: unknown title kind %q", ErrInvalidInput, m.Kind)
	}

	if err := u.repository.Store(ctx, m); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}
	return nil
}

func (u *Usecase) Update(ctx context.Context, m model.Movie) error {
	if err := u.repository.Update(ctx, m); err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return ErrMovieNotFound
		}
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}
	return nil
}

func (u *Usecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repository.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return ErrMovieNotFound
		}
		return fmt.Errorf("%w: %w", ErrFailedToDelete, err)
	}
	return nil
}

func (u *Usecase) GetByID(ctx context.Context, id uuid.UUID) (model.Movie, error) {
	m, err := u.repository.LoadByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return m, nil
}

func (u *Usecase) Load(ctx context.Context) ([]*model.Movie, error) {
	movies, err := u.repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return movies, nil
}

func (u *Usecase) Search(ctx context.Context, title string) ([]*model.Movie, error) {
	movies, err := u.repository.Search(ctx, strings.TrimSpace(title))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return movies, nil
}

// UploadPoster stores the poster object and points the movie row at it. The
// size cap is enforced before any bytes leave the process.
func (u *Usecase) UploadPoster(ctx context.Context, movieID uuid.UUID, poster model.Poster) (string, error) {
	if len(poster.Content) > model.MaxUploadSize {
		return "", ErrPosterTooLarge
	}

	m, err := u.repository.LoadByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return "", ErrMovieNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	poster.MovieID = movieID.String()
	key, err := u.posters.Save(ctx, poster, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToStorePoster, err)
	}

	m.PosterURL = key
	if err := u.repository.Update(ctx, m); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}

	return key, nil
}

// ReviewDigest returns a short natural-language summary of the movie's
// top-liked reviews. The generated text is written back onto the movie row
// so later reads skip the generator.
func (u *Usecase) ReviewDigest(ctx context.Context, movieID uuid.UUID) (string, error) {
	m, err := u.repository.LoadByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return "", ErrMovieNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	if m.AISummary != "" {
		return m.AISummary, nil
	}

	reviews, err := u.reviews.LoadTopLikedByMovie(ctx, movieID, topReviewsForSummary)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	if len(reviews) == 0 {
		return "", ErrNoReviewsToSummarize
	}

	text, err := u.generator.Generate(ctx, digestPrompt(m.Title, reviews))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToGenerateDigest, err)
	}

	if err := u.repository.SetAISummary(ctx, movieID, text); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}

	return text, nil
}

func digestPrompt(title string, reviews []model.Review) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summarize what viewers think of %q in two or three sentences, based on these reviews:\n", title)
	for _, r := range reviews {
		cat, _ := model.RatingCategoryByID(r.CategoryID)
		fmt.Fprintf(&b, "- [%s] %s\n", cat.Name, r.Text)
	}
	return b.String()
}
