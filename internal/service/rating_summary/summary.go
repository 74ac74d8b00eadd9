package rating_summary

import (
	"math"

	"github.com/cineverse/core/internal/model"
)

// Summarizer turns the current full review set of a movie into its derived
// rating view. The result is recomputed on every call and never cached.
type Summarizer struct{}

func New() *Summarizer {
	return &Summarizer{}
}

func (s *Summarizer) Summarize(reviews []model.Review) model.RatingSummary {
	counts := make(map[model.RatingCategoryID]int, len(model.RatingCategories))
	for _, r := range reviews {
		counts[r.CategoryID]++
	}

	summary := model.RatingSummary{
		Total:             len(reviews),
		PerCategoryCounts: counts,
		ChartEntries:      []model.ChartEntry{},
	}
	if summary.Total == 0 {
		return summary
	}

	// Iterate the static category list so the result is deterministic:
	// on equal counts the lowest category id wins.
	maxCount := 0
	for _, c := range model.RatingCategories {
		n := counts[c.ID]
		if n > maxCount {
			maxCount = n
			summary.MajorityCategoryID = c.ID
		}
		if n > 0 {
			summary.ChartEntries = append(summary.ChartEntries, model.ChartEntry{
				ID:    c.ID,
				Name:  c.Name,
				Emoji: c.Emoji,
				Value: n,
			})
		}
	}

	summary.MajorityPercentage = roundHalfUp(float64(maxCount) / float64(summary.Total) * 100)

	return summary
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
