//go:build !integration
// +build !integration

package usecase_movie

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cineverse/core/internal/model"

	generator_mocks "github.com/cineverse/core/internal/usecase/movie/mocks/generator"
	poster_mocks "github.com/cineverse/core/internal/usecase/movie/mocks/poster"
	repo_mocks "github.com/cineverse/core/internal/usecase/movie/mocks/repository"
	reviews_mocks "github.com/cineverse/core/internal/usecase/movie/mocks/reviews"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseMovieUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.Repository
	posters    *poster_mocks.PosterRepository
	reviews    *reviews_mocks.ReviewSource
	generator  *generator_mocks.TextGenerator
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	posters := poster_mocks.NewPosterRepository(t)
	reviews := reviews_mocks.NewReviewSource(t)
	generator := generator_mocks.NewTextGenerator(t)
	usecase := New(repository, posters, reviews, generator)

	return &resources{
		usecase:    usecase,
		repository: repository,
		posters:    posters,
		reviews:    reviews,
		generator:  generator,
		ctx:        context.Background(),
	}
}

type MovieBuilder struct {
	m model.Movie
}

func NewMovieBuilder() *MovieBuilder {
	return &MovieBuilder{
		m: model.Movie{
			ID:     uuid.New(),
			Title:  "Test Movie",
			Year:   2024,
			Kind:   model.KindMovie,
			Genres: []string{"Drama"},
		},
	}
}

func (b *MovieBuilder) WithEmptyTitle() *MovieBuilder {
	b.m.Title = ""
	return b
}

func (b *MovieBuilder) WithKind(k model.TitleKind) *MovieBuilder {
	b.m.Kind = k
	return b
}

func (b *MovieBuilder) WithAISummary(text string) *MovieBuilder {
	b.m.AISummary = text
	return b
}

func (b *MovieBuilder) Build() model.Movie {
	return b.m
}

func (suite *UsecaseMovieUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources, m model.Movie)
		movie       model.Movie
		expectedErr error
	}{
		{
			name: "Should store a valid movie",
			setupMocks: func(r *resources, m model.Movie) {
				r.repository.On("Store", r.ctx, m).Return(nil).Once()
			},
			movie: NewMovieBuilder().Build(),
		},
		{
			name:        "Should reject an empty title",
			setupMocks:  func(r *resources, m model.Movie) {},
			movie:       NewMovieBuilder().WithEmptyTitle().Build(),
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "Should reject an unknown kind",
			setupMocks:  func(r *resources, m model.Movie) {},
			movie:       NewMovieBuilder().WithKind("Documentary").Build(),
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r, tc.movie)

			err := r.usecase.Create(r.ctx, tc.movie)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			r.repository.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseMovieUnitSuite) TestUploadPoster(t provider.T) {
	t.Parallel()

	t.Run("Should save the poster and link it to the movie", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		m := NewMovieBuilder().Build()
		poster := model.Poster{Filename: "poster.jpg", Content: []byte("image-bytes")}

		r.repository.On("LoadByID", r.ctx, m.ID).Return(m, nil).Once()
		r.posters.On("Save", r.ctx, mock.AnythingOfType("model.Poster"), (*string)(nil)).
			Return("poster/key.jpg", nil).Once()

		updated := m
		updated.PosterURL = "poster/key.jpg"
		r.repository.On("Update", r.ctx, updated).Return(nil).Once()

		key, err := r.usecase.UploadPoster(r.ctx, m.ID, poster)

		assert.NoError(t, err)
		assert.Equal(t, "poster/key.jpg", key)
		r.posters.AssertExpectations(t)
	})

	t.Run("Should reject an oversized poster before any write", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		poster := model.Poster{
			Filename: "huge.jpg",
			Content:  bytes.Repeat([]byte{0xff}, model.MaxUploadSize+1),
		}

		_, err := r.usecase.UploadPoster(r.ctx, uuid.New(), poster)

		assert.ErrorIs(t, err, ErrPosterTooLarge)
	})

	t.Run("Should propagate movie not found", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		movieID := uuid.New()

		r.repository.On("LoadByID", r.ctx, movieID).Return(model.Movie{}, ErrMovieNotFound).Once()

		_, err := r.usecase.UploadPoster(r.ctx, movieID, model.Poster{Filename: "p.jpg", Content: []byte("x")})

		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func (suite *UsecaseMovieUnitSuite) TestReviewDigest(t provider.T) {
	t.Parallel()

	t.Run("Should return the cached digest without calling the generator", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		m := NewMovieBuilder().WithAISummary("Viewers loved it.").Build()

		r.repository.On("LoadByID", r.ctx, m.ID).Return(m, nil).Once()

		text, err := r.usecase.ReviewDigest(r.ctx, m.ID)

		assert.NoError(t, err)
		assert.Equal(t, "Viewers loved it.", text)
		r.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Should generate and cache on a miss", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		m := NewMovieBuilder().Build()
		reviews := []model.Review{
			{ID: uuid.New(), MovieID: m.ID, Text: "stunning", CategoryID: model.RatingMasterpiece, Likes: 12},
		}

		r.repository.On("LoadByID", r.ctx, m.ID).Return(m, nil).Once()
		r.reviews.On("LoadTopLikedByMovie", r.ctx, m.ID, topReviewsForSummary).Return(reviews, nil).Once()
		r.generator.On("Generate", r.ctx, mock.AnythingOfType("string")).
			Return("A crowd favorite.", nil).Once()
		r.repository.On("SetAISummary", r.ctx, m.ID, "A crowd favorite.").Return(nil).Once()

		text, err := r.usecase.ReviewDigest(r.ctx, m.ID)

		assert.NoError(t, err)
		assert.Equal(t, "A crowd favorite.", text)
		r.repository.AssertExpectations(t)
	})

	t.Run("Should refuse when no reviews exist", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		m := NewMovieBuilder().Build()

		r.repository.On("LoadByID", r.ctx, m.ID).Return(m, nil).Once()
		r.reviews.On("LoadTopLikedByMovie", r.ctx, m.ID, topReviewsForSummary).Return(nil, nil).Once()

		_, err := r.usecase.ReviewDigest(r.ctx, m.ID)

		assert.ErrorIs(t, err, ErrNoReviewsToSummarize)
	})
}

func TestMovieUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMovieUnitSuite))
}
