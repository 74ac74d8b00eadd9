//go:build !integration
// +build !integration

package usecase_review

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cineverse/core/internal/model"
	"github.com/cineverse/core/internal/service/rating_summary"

	repo_mocks "github.com/cineverse/core/internal/usecase/review/mocks/repository"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseReviewUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	repository *repo_mocks.Repository
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	repository := repo_mocks.NewRepository(t)
	usecase := New(repository, rating_summary.New())

	return &resources{
		usecase:    usecase,
		repository: repository,
		ctx:        context.Background(),
	}
}

type ReviewBuilder struct {
	r model.Review
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		r: model.Review{
			ID:         uuid.New(),
			MovieID:    uuid.New(),
			Email:      "viewer@example.com",
			Text:       "A slow burn that pays off.",
			CategoryID: model.RatingAmazing,
		},
	}
}

func (b *ReviewBuilder) WithEmptyText() *ReviewBuilder {
	b.r.Text = ""
	return b
}

func (b *ReviewBuilder) WithCategory(id model.RatingCategoryID) *ReviewBuilder {
	b.r.CategoryID = id
	return b
}

func (b *ReviewBuilder) Build() model.Review {
	return b.r
}

func (suite *UsecaseReviewUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources, review model.Review)
		review      model.Review
		expectedErr error
	}{
		{
			name: "Should create review",
			setupMocks: func(r *resources, review model.Review) {
				r.repository.On("HasReview", r.ctx, review.MovieID, review.Email).Return(false, nil).Once()
				r.repository.On("Store", r.ctx, review).Return(nil).Once()
			},
			review: NewReviewBuilder().Build(),
		},
		{
			name: "Should reject a second review from the same user",
			setupMocks: func(r *resources, review model.Review) {
				r.repository.On("HasReview", r.ctx, review.MovieID, review.Email).Return(true, nil).Once()
			},
			review:      NewReviewBuilder().Build(),
			expectedErr: ErrAlreadyReviewed,
		},
		{
			name:        "Should reject empty text",
			setupMocks:  func(r *resources, review model.Review) {},
			review:      NewReviewBuilder().WithEmptyText().Build(),
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "Should reject unknown category",
			setupMocks:  func(r *resources, review model.Review) {},
			review:      NewReviewBuilder().WithCategory(99).Build(),
			expectedErr: ErrInvalidInput,
		},
		{
			name: "Should wrap repository failure",
			setupMocks: func(r *resources, review model.Review) {
				r.repository.On("HasReview", r.ctx, review.MovieID, review.Email).Return(false, errors.New("db down")).Once()
			},
			review:      NewReviewBuilder().Build(),
			expectedErr: ErrFailedToStore,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r, tc.review)

			err := r.usecase.Create(r.ctx, tc.review)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			r.repository.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseReviewUnitSuite) TestDelete(t provider.T) {
	t.Parallel()

	owner := model.SessionContext{Email: "owner@example.com", Role: model.RoleUser}
	admin := model.SessionContext{Email: "admin@example.com", Role: model.RoleAdmin}
	stranger := model.SessionContext{Email: "other@example.com", Role: model.RoleUser}

	testCases := []struct {
		name        string
		session     model.SessionContext
		setupMocks  func(r *resources, id uuid.UUID)
		expectedErr error
	}{
		{
			name:    "Should let the owner delete",
			session: owner,
			setupMocks: func(r *resources, id uuid.UUID) {
				r.repository.On("LoadByID", r.ctx, id).Return(model.Review{ID: id, Email: owner.Email}, nil).Once()
				r.repository.On("DeleteByID", r.ctx, id).Return(nil).Once()
			},
		},
		{
			name:    "Should let an admin delete someone else's review",
			session: admin,
			setupMocks: func(r *resources, id uuid.UUID) {
				r.repository.On("LoadByID", r.ctx, id).Return(model.Review{ID: id, Email: owner.Email}, nil).Once()
				r.repository.On("DeleteByID", r.ctx, id).Return(nil).Once()
			},
		},
		{
			name:    "Should refuse another user",
			session: stranger,
			setupMocks: func(r *resources, id uuid.UUID) {
				r.repository.On("LoadByID", r.ctx, id).Return(model.Review{ID: id, Email: owner.Email}, nil).Once()
			},
			expectedErr: ErrNotOwner,
		},
		{
			name:    "Should propagate not found",
			session: owner,
			setupMocks: func(r *resources, id uuid.UUID) {
				r.repository.On("LoadByID", r.ctx, id).Return(model.Review{}, ErrReviewNotFound).Once()
			},
			expectedErr: ErrReviewNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			id := uuid.New()
			tc.setupMocks(r, id)

			err := r.usecase.Delete(r.ctx, tc.session, id)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			r.repository.AssertExpectations(t)
		})
	}
}

func (suite *UsecaseReviewUnitSuite) TestSummary(t provider.T) {
	t.Parallel()

	r := initResources(t)
	movieID := uuid.New()
	reviews := []model.Review{
		{ID: uuid.New(), MovieID: movieID, Email: "a@example.com", Text: "good", CategoryID: model.RatingAmazing},
		{ID: uuid.New(), MovieID: movieID, Email: "b@example.com", Text: "great", CategoryID: model.RatingAmazing},
		{ID: uuid.New(), MovieID: movieID, Email: "c@example.com", Text: "meh", CategoryID: model.RatingOneTimeWatch},
	}
	r.repository.On("LoadByMovie", r.ctx, movieID).Return(reviews, nil).Once()

	summary, err := r.usecase.Summary(r.ctx, movieID)

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, model.RatingAmazing, summary.MajorityCategoryID)
	assert.Equal(t, 67, summary.MajorityPercentage)
	r.repository.AssertExpectations(t)
}

func TestReviewUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseReviewUnitSuite))
}
