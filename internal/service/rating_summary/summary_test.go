//go:build !integration
// +build !integration

package rating_summary

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cineverse/core/internal/model"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type RatingSummarySuite struct {
	suite.Suite
}

func reviewsOf(categories ...model.RatingCategoryID) []model.Review {
	reviews := make([]model.Review, len(categories))
	movieID := uuid.New()
	for i, c := range categories {
		reviews[i] = model.Review{
			ID:         uuid.New(),
			MovieID:    movieID,
			Email:      "viewer@example.com",
			Text:       "some text",
			CategoryID: c,
		}
	}
	return reviews
}

func (suite *RatingSummarySuite) TestSummarize(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name               string
		reviews            []model.Review
		expectedTotal      int
		expectedMajority   model.RatingCategoryID
		expectedPercentage int
		expectedEntries    int
	}{
		{
			name: "Should pick clear majority",
			reviews: reviewsOf(
				model.RatingMasterpiece,
				model.RatingMasterpiece,
				model.RatingMasterpiece,
				model.RatingAmazing,
			),
			expectedTotal:      4,
			expectedMajority:   model.RatingMasterpiece,
			expectedPercentage: 75,
			expectedEntries:    2,
		},
		{
			name: "Should break ties on the lowest category id",
			reviews: reviewsOf(
				model.RatingMasterpiece,
				model.RatingOneTimeWatch,
			),
			expectedTotal:      2,
			expectedMajority:   model.RatingOneTimeWatch,
			expectedPercentage: 50,
			expectedEntries:    2,
		},
		{
			name: "Should round half up",
			reviews: reviewsOf(
				model.RatingAmazing,
				model.RatingAmazing,
				model.RatingAmazing,
				model.RatingAmazing,
				model.RatingAmazing,
				model.RatingUnbearable,
				model.RatingOneTimeWatch,
				model.RatingMasterpiece,
			),
			expectedTotal:      8,
			expectedMajority:   model.RatingAmazing,
			expectedPercentage: 63,
			expectedEntries:    4,
		},
		{
			name: "Should favor one third rounded",
			reviews: reviewsOf(
				model.RatingUnbearable,
				model.RatingAmazing,
				model.RatingMasterpiece,
			),
			expectedTotal:      3,
			expectedMajority:   model.RatingUnbearable,
			expectedPercentage: 33,
			expectedEntries:    3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			summary := New().Summarize(tc.reviews)

			assert.Equal(t, tc.expectedTotal, summary.Total)
			assert.Equal(t, tc.expectedMajority, summary.MajorityCategoryID)
			assert.Equal(t, tc.expectedPercentage, summary.MajorityPercentage)
			assert.Len(t, summary.ChartEntries, tc.expectedEntries)
			assert.True(t, summary.HasRatings())
		})
	}
}

func (suite *RatingSummarySuite) TestSummarizeEmpty(t provider.T) {
	t.Parallel()

	summary := New().Summarize(nil)

	assert.Equal(t, 0, summary.Total)
	assert.False(t, summary.HasRatings())
	assert.Empty(t, summary.ChartEntries)
	assert.Zero(t, summary.MajorityCategoryID)
	assert.Zero(t, summary.MajorityPercentage)
}

func (suite *RatingSummarySuite) TestChartEntriesSkipZeroCounts(t provider.T) {
	t.Parallel()

	summary := New().Summarize(reviewsOf(model.RatingMasterpiece))

	assert.Len(t, summary.ChartEntries, 1)
	assert.Equal(t, model.RatingMasterpiece, summary.ChartEntries[0].ID)
	assert.Equal(t, 1, summary.ChartEntries[0].Value)
}

func (suite *RatingSummarySuite) TestChartEntriesKeepCategoryOrder(t provider.T) {
	t.Parallel()

	summary := New().Summarize(reviewsOf(
		model.RatingMasterpiece,
		model.RatingUnbearable,
		model.RatingAmazing,
	))

	ids := make([]model.RatingCategoryID, 0, len(summary.ChartEntries))
	for _, e := range summary.ChartEntries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []model.RatingCategoryID{
		model.RatingUnbearable,
		model.RatingAmazing,
		model.RatingMasterpiece,
	}, ids)
}

func TestRatingSummarySuite(t *testing.T) {
	suite.RunSuite(t, new(RatingSummarySuite))
}
