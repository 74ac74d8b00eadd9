//go:build !integration
// +build !integration

package usecase_recommendation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cineverse/core/internal/model"

	titles_mocks "github.com/cineverse/core/internal/usecase/recommendation/mocks/movietitles"
	repo_mocks "github.com/cineverse/core/internal/usecase/recommendation/mocks/repository"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseRecommendationUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.Repository
	titles     *titles_mocks.MovieTitles
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	titles := titles_mocks.NewMovieTitles(t)
	usecase := New(repository, titles)

	return &resources{
		usecase:    usecase,
		repository: repository,
		titles:     titles,
		ctx:        context.Background(),
	}
}

var longMessage = strings.Repeat("watch this, you will not regret a single minute. ", 2)

func normalRecommendation() model.Recommendation {
	return model.Recommendation{
		ID:       uuid.New(),
		Email:    "fan@example.com",
		MovieID1: uuid.New(),
		Message:  longMessage,
		Kind:     model.KindNormal,
	}
}

func pairingRecommendation() model.Recommendation {
	second := uuid.New()
	r := normalRecommendation()
	r.Kind = model.KindPairing
	r.MovieID2 = &second
	return r
}

func (suite *UsecaseRecommendationUnitSuite) TestSubmit(t provider.T) {
	t.Parallel()

	t.Run("Should store a fresh recommendation", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rec := normalRecommendation()

		r.repository.On("Exists", r.ctx, rec.Email, rec.MovieID1, (*uuid.UUID)(nil), model.KindNormal).Return(false, nil).Once()
		r.repository.On("Store", r.ctx, rec).Return(nil).Once()

		assert.NoError(t, r.usecase.Submit(r.ctx, rec))
	})

	t.Run("Should reject a short message", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rec := normalRecommendation()
		rec.Message = "too short"

		err := r.usecase.Submit(r.ctx, rec)
		assert.ErrorIs(t, err, ErrMessageTooShort)
	})

	t.Run("Should reject a pairing without a second movie", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rec := normalRecommendation()
		rec.Kind = model.KindPairing

		err := r.usecase.Submit(r.ctx, rec)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should name the movie on an exact duplicate", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rec := normalRecommendation()

		r.repository.On("Exists", r.ctx, rec.Email, rec.MovieID1, (*uuid.UUID)(nil), model.KindNormal).Return(true, nil).Once()
		r.titles.On("LoadByIDs", r.ctx, []uuid.UUID{rec.MovieID1}).
			Return([]*model.Movie{{ID: rec.MovieID1, Title: "Heat"}}, nil).Once()

		err := r.usecase.Submit(r.ctx, rec)
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.Contains(t, err.Error(), "Heat")
	})

	t.Run("Should catch the reversed pairing", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rec := pairingRecommendation()

		r.repository.On("Exists", r.ctx, rec.Email, rec.MovieID1, rec.MovieID2, model.KindPairing).Return(false, nil).Once()
		r.repository.On("Exists", r.ctx, rec.Email, *rec.MovieID2, mock.AnythingOfType("*uuid.UUID"), model.KindPairing).Return(true, nil).Once()
		r.titles.On("LoadByIDs", r.ctx, []uuid.UUID{rec.MovieID1, *rec.MovieID2}).
			Return([]*model.Movie{
				{ID: rec.MovieID1, Title: "Alien"},
				{ID: *rec.MovieID2, Title: "Aliens"},
			}, nil).Once()

		err := r.usecase.Submit(r.ctx, rec)
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.Contains(t, err.Error(), "Alien")
		assert.Contains(t, err.Error(), "Aliens")
	})

	t.Run("Should fail closed when the duplicate check errors", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rec := normalRecommendation()

		r.repository.On("Exists", r.ctx, rec.Email, rec.MovieID1, (*uuid.UUID)(nil), model.KindNormal).
			Return(false, errors.New("db down")).Once()

		err := r.usecase.Submit(r.ctx, rec)
		assert.ErrorIs(t, err, ErrCheckUnavailable)
	})
}

func (suite *UsecaseRecommendationUnitSuite) TestEdit(t provider.T) {
	t.Parallel()

	t.Run("Should let the author edit", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rec := normalRecommendation()
		session := model.SessionContext{Email: rec.Email, Role: model.RoleUser}

		r.repository.On("LoadByID", r.ctx, rec.ID).Return(rec, nil).Once()
		r.repository.On("Update", r.ctx, rec).Return(nil).Once()

		assert.NoError(t, r.usecase.Edit(r.ctx, session, rec))
	})

	t.Run("Should refuse another user", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rec := normalRecommendation()
		session := model.SessionContext{Email: "other@example.com", Role: model.RoleUser}

		r.repository.On("LoadByID", r.ctx, rec.ID).Return(rec, nil).Once()

		err := r.usecase.Edit(r.ctx, session, rec)
		assert.ErrorIs(t, err, ErrNotOwner)
	})
}

func (suite *UsecaseRecommendationUnitSuite) TestDelete(t provider.T) {
	t.Parallel()

	t.Run("Should let an admin delete any recommendation", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		rec := normalRecommendation()
		session := model.SessionContext{Email: "admin@example.com", Role: model.RoleAdmin}

		r.repository.On("LoadByID", r.ctx, rec.ID).Return(rec, nil).Once()
		r.repository.On("DeleteByID", r.ctx, rec.ID).Return(nil).Once()

		assert.NoError(t, r.usecase.Delete(r.ctx, session, rec.ID))
	})

	t.Run("Should propagate not found", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		id := uuid.New()
		session := model.SessionContext{Email: "fan@example.com", Role: model.RoleUser}

		r.repository.On("LoadByID", r.ctx, id).Return(model.Recommendation{}, ErrNotFound).Once()

		err := r.usecase.Delete(r.ctx, session, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRecommendationUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRecommendationUnitSuite))
}
