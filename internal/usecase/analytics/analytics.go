package usecase_analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cineverse/core/internal/model"
)

var ErrFailedToLoad = errors.New("failed to load analytics")

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	Load(ctx context.Context) ([]model.UserAnalytics, error)
}

type Usecase struct {
	repository Repository
}

func New(repository Repository) *Usecase {
	return &Usecase{repository: repository}
}

// Leaderboard orders users by their precomputed review score, descending.
// Equal scores keep input order (stable). The score itself comes from the
// user_analytics view and is opaque here.
func (u *Usecase) Leaderboard(ctx context.Context) (model.Leaderboard, error) {
	rows, err := u.repository.Load(ctx)
	if err != nil {
		return model.Leaderboard{}, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	ranked := make([]model.UserAnalytics, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ReviewScore > ranked[j].ReviewScore
	})

	return model.Leaderboard{
		Rows:       ranked,
		Highlights: highlights(rows),
	}, nil
}

func highlights(rows []model.UserAnalytics) model.LeaderboardHighlights {
	var h model.LeaderboardHighlights

	var topReviews, topLikes, positive, total int
	for _, r := range rows {
		if r.TotalReviews > topReviews {
			topReviews = r.TotalReviews
			h.TopReviewer = r.Email
		}
		if r.LikesReceived > topLikes {
			topLikes = r.LikesReceived
			h.MostLiked = r.Email
		}
		positive += r.Masterpiece + r.Amazing
		total += r.TotalReviews
	}

	if total > 0 {
		h.SentimentBalance = math.Round(float64(positive)/float64(total)*1000) / 10
	}

	return h
}
