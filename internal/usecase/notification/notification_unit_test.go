//go:build !integration
// +build !integration

package usecase_notification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cineverse/core/internal/model"

	posters_mocks "github.com/cineverse/core/internal/usecase/notification/mocks/movieposters"
	repo_mocks "github.com/cineverse/core/internal/usecase/notification/mocks/repository"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseNotificationUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.Repository
	posters    *posters_mocks.MoviePosters
	now        time.Time
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	posters := posters_mocks.NewMoviePosters(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	usecase := New(repository, posters, WithClock(func() time.Time { return now }))

	return &resources{
		usecase:    usecase,
		repository: repository,
		posters:    posters,
		now:        now,
		ctx:        context.Background(),
	}
}

const email = "viewer@example.com"

func (suite *UsecaseNotificationUnitSuite) TestFeedBuckets(t provider.T) {
	t.Parallel()
	r := initResources(t)

	fresh := model.Notification{
		ID:        uuid.New(),
		Email:     email,
		Type:      model.NotificationReviews,
		Text:      "Someone liked your review",
		Status:    model.NotificationUnread,
		CreatedAt: r.now.Add(-30 * time.Minute),
	}
	older := model.Notification{
		ID:        uuid.New(),
		Email:     email,
		Type:      model.NotificationDiscussions,
		Text:      "New replies in a discussion",
		Status:    model.NotificationRead,
		CreatedAt: r.now.Add(-3 * time.Hour),
	}
	boundary := model.Notification{
		ID:        uuid.New(),
		Email:     email,
		Type:      model.NotificationPromotions,
		Text:      "Weekend premiere",
		Status:    model.NotificationRead,
		CreatedAt: r.now.Add(-RecencyWindow),
	}

	r.repository.On("LoadByUser", r.ctx, email).
		Return([]model.Notification{fresh, boundary, older}, nil).Once()

	feed, err := r.usecase.Feed(r.ctx, email)

	assert.NoError(t, err)
	assert.Len(t, feed.New, 1)
	assert.Equal(t, fresh.ID, feed.New[0].ID)
	// Exactly one window old lands in Earlier, source order preserved.
	assert.Len(t, feed.Earlier, 2)
	assert.Equal(t, boundary.ID, feed.Earlier[0].ID)
	assert.Equal(t, older.ID, feed.Earlier[1].ID)
	r.repository.AssertExpectations(t)
}

func (suite *UsecaseNotificationUnitSuite) TestFeedResolvesPostersOnce(t provider.T) {
	t.Parallel()
	r := initResources(t)

	movieID := uuid.New()
	pairID := uuid.New()
	rows := []model.Notification{
		{
			ID: uuid.New(), Email: email, Type: model.NotificationNormalRecommendation,
			MovieID: &movieID, CreatedAt: r.now.Add(-10 * time.Minute),
		},
		{
			ID: uuid.New(), Email: email, Type: model.NotificationPairingRecommendation,
			MovieID: &movieID, MovieID2: &pairID, CreatedAt: r.now.Add(-20 * time.Minute),
		},
	}

	r.repository.On("LoadByUser", r.ctx, email).Return(rows, nil).Once()
	// One lookup, duplicates removed.
	r.posters.On("LoadByIDs", r.ctx, []uuid.UUID{movieID, pairID}).
		Return([]*model.Movie{
			{ID: movieID, PosterURL: "poster/one.jpg"},
			{ID: pairID, PosterURL: "poster/two.jpg"},
		}, nil).Once()

	feed, err := r.usecase.Feed(r.ctx, email)

	assert.NoError(t, err)
	assert.Equal(t, "poster/one.jpg", feed.New[0].PosterURL)
	assert.Equal(t, "poster/one.jpg", feed.New[1].PosterURL)
	assert.Equal(t, "poster/two.jpg", feed.New[1].PosterURL2)
	assert.True(t, feed.New[1].Display.DualPosters)
	r.posters.AssertExpectations(t)
}

func (suite *UsecaseNotificationUnitSuite) TestFeedUnknownTypeFallsBack(t provider.T) {
	t.Parallel()
	r := initResources(t)

	rows := []model.Notification{
		{ID: uuid.New(), Email: email, Type: "mystery", CreatedAt: r.now.Add(-5 * time.Minute)},
	}
	r.repository.On("LoadByUser", r.ctx, email).Return(rows, nil).Once()

	feed, err := r.usecase.Feed(r.ctx, email)

	assert.NoError(t, err)
	assert.Equal(t, "bell", feed.New[0].Display.Icon)
}

func (suite *UsecaseNotificationUnitSuite) TestAcknowledgeIsIdempotent(t provider.T) {
	t.Parallel()
	r := initResources(t)

	r.repository.On("MarkAllRead", r.ctx, email).Return(nil).Twice()

	assert.NoError(t, r.usecase.Acknowledge(r.ctx, email))
	assert.NoError(t, r.usecase.Acknowledge(r.ctx, email))
	r.repository.AssertExpectations(t)
}

func (suite *UsecaseNotificationUnitSuite) TestBroadcast(t provider.T) {
	t.Parallel()

	t.Run("Should fan out to every recipient in one batch", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		recipients := []string{"a@example.com", "b@example.com", "c@example.com"}

		r.repository.On("StoreBatch", r.ctx, mock.MatchedBy(func(ns []model.Notification) bool {
			if len(ns) != len(recipients) {
				return false
			}
			for i, n := range ns {
				if n.Email != recipients[i] || n.Status != model.NotificationUnread {
					return false
				}
			}
			return true
		})).Return(nil).Once()

		err := r.usecase.Broadcast(r.ctx, model.Notification{
			Type: model.NotificationPromotions,
			Text: "New banner campaign",
		}, recipients)

		assert.NoError(t, err)
		r.repository.AssertExpectations(t)
	})

	t.Run("Should skip the insert with no recipients", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		err := r.usecase.Broadcast(r.ctx, model.Notification{Type: model.NotificationPromotions}, nil)

		assert.NoError(t, err)
	})
}

func TestNotificationUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseNotificationUnitSuite))
}
