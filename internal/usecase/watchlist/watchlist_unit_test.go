//go:build !integration
// +build !integration

package usecase_watchlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cineverse/core/internal/model"
	"github.com/cineverse/core/internal/service/rating_summary"

	hydrator_mocks "github.com/cineverse/core/internal/usecase/watchlist/mocks/moviehydrator"
	registry_mocks "github.com/cineverse/core/internal/usecase/watchlist/mocks/registry"
	repo_mocks "github.com/cineverse/core/internal/usecase/watchlist/mocks/repository"
	reviews_mocks "github.com/cineverse/core/internal/usecase/watchlist/mocks/reviewsource"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseWatchlistUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.Repository
	movies     *hydrator_mocks.MovieHydrator
	reviews    *reviews_mocks.ReviewSource
	registry   *registry_mocks.CollectionRegistry
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	movies := hydrator_mocks.NewMovieHydrator(t)
	reviews := reviews_mocks.NewReviewSource(t)
	registry := registry_mocks.NewCollectionRegistry(t)
	usecase := New(repository, movies, reviews, rating_summary.New(), registry)

	return &resources{
		usecase:    usecase,
		repository: repository,
		movies:     movies,
		reviews:    reviews,
		registry:   registry,
		ctx:        context.Background(),
	}
}

const email = "viewer@example.com"

func (suite *UsecaseWatchlistUnitSuite) TestCollections(t provider.T) {
	t.Parallel()
	r := initResources(t)

	zodiacID := uuid.New()
	heatID := uuid.New()
	aliensID := uuid.New()
	defaultID := uuid.New()

	r.repository.On("LoadByUser", r.ctx, email).Return([]model.WatchlistEntry{
		{Email: email, MovieID: zodiacID, ListName: "Thrillers"},
		{Email: email, MovieID: defaultID, ListName: model.DefaultListName},
		{Email: email, MovieID: heatID, ListName: "Thrillers"},
		{Email: email, MovieID: aliensID, ListName: "Space"},
	}, nil).Once()

	r.movies.On("LoadByIDs", r.ctx, mock.MatchedBy(func(ids []uuid.UUID) bool {
		return len(ids) == 3
	})).Return([]*model.Movie{
		{ID: zodiacID, Title: "Zodiac"},
		{ID: heatID, Title: "Heat"},
		{ID: aliensID, Title: "Aliens"},
	}, nil).Once()

	for _, id := range []uuid.UUID{zodiacID, heatID, aliensID} {
		r.reviews.On("LoadByMovie", r.ctx, id).Return([]model.Review{
			{ID: uuid.New(), MovieID: id, Email: email, Text: "solid", CategoryID: model.RatingAmazing},
		}, nil).Once()
	}

	r.registry.On("Members", r.ctx, email).Return([]string{"Unwatched"}, nil).Once()

	collections, err := r.usecase.Collections(r.ctx, email)

	assert.NoError(t, err)
	// Alphabetical list names, registered-but-empty list included, Default
	// excluded.
	assert.Len(t, collections, 3)
	assert.Equal(t, "Space", collections[0].Name)
	assert.Equal(t, "Thrillers", collections[1].Name)
	assert.Equal(t, "Unwatched", collections[2].Name)
	assert.Empty(t, collections[2].Movies)

	// Movies inside a list come back alphabetically by title.
	assert.Len(t, collections[1].Movies, 2)
	assert.Equal(t, "Heat", collections[1].Movies[0].Title)
	assert.Equal(t, "Zodiac", collections[1].Movies[1].Title)

	// Each movie carries its derived rating summary.
	assert.Equal(t, 1, collections[0].Movies[0].Summary.Total)
	assert.Equal(t, model.RatingAmazing, collections[0].Movies[0].Summary.MajorityCategoryID)
}

func (suite *UsecaseWatchlistUnitSuite) TestCollectionsEmpty(t provider.T) {
	t.Parallel()
	r := initResources(t)

	r.repository.On("LoadByUser", r.ctx, email).Return(nil, nil).Once()
	r.registry.On("Members", r.ctx, email).Return(nil, nil).Once()

	collections, err := r.usecase.Collections(r.ctx, email)

	assert.NoError(t, err)
	assert.Empty(t, collections)
}

func (suite *UsecaseWatchlistUnitSuite) TestCreateCollection(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		listName    string
		setupMocks  func(r *resources)
		expectedErr error
	}{
		{
			name:     "Should register an empty collection",
			listName: "Rainy weekend",
			setupMocks: func(r *resources) {
				r.registry.On("Add", r.ctx, email, "Rainy weekend").Return(nil).Once()
			},
		},
		{
			name:        "Should reject the reserved name",
			listName:    model.DefaultListName,
			setupMocks:  func(r *resources) {},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "Should reject an empty name",
			listName:    "",
			setupMocks:  func(r *resources) {},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.CreateCollection(r.ctx, email, tc.listName)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			r.registry.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseWatchlistUnitSuite) TestAddEntry(t provider.T) {
	t.Parallel()

	t.Run("Should default to the ungrouped list", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		movieID := uuid.New()

		r.repository.On("Add", r.ctx, model.WatchlistEntry{
			Email:    email,
			MovieID:  movieID,
			ListName: model.DefaultListName,
		}).Return(nil).Once()

		err := r.usecase.AddEntry(r.ctx, model.WatchlistEntry{Email: email, MovieID: movieID})

		assert.NoError(t, err)
		r.repository.AssertExpectations(t)
	})

	t.Run("Should drop the empty-collection marker for a named list", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		entry := model.WatchlistEntry{Email: email, MovieID: uuid.New(), ListName: "Thrillers"}

		r.repository.On("Add", r.ctx, entry).Return(nil).Once()
		r.registry.On("Remove", r.ctx, email, "Thrillers").Return(nil).Once()

		err := r.usecase.AddEntry(r.ctx, entry)

		assert.NoError(t, err)
		r.registry.AssertExpectations(t)
	})
}

func (suite *UsecaseWatchlistUnitSuite) TestRemoveEntry(t provider.T) {
	t.Parallel()
	r := initResources(t)
	movieID := uuid.New()

	r.repository.On("Remove", r.ctx, model.WatchlistEntry{
		Email:    email,
		MovieID:  movieID,
		ListName: model.DefaultListName,
	}).Return(nil).Once()

	err := r.usecase.RemoveEntry(r.ctx, model.WatchlistEntry{Email: email, MovieID: movieID})

	assert.NoError(t, err)
	r.repository.AssertExpectations(t)
}

func TestWatchlistUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseWatchlistUnitSuite))
}
