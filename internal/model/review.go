package model

import (
	"time"

	"github.com/google/uuid"
)

type RatingCategoryID int

const (
	RatingUnbearable   RatingCategoryID = 1
	RatingOneTimeWatch RatingCategoryID = 2
	RatingAmazing      RatingCategoryID = 3
	RatingMasterpiece  RatingCategoryID = 4
)

type RatingCategory struct {
	ID    RatingCategoryID
	Name  string
	Emoji string
}

// RatingCategories is static reference data. Order matters: tie-breaks on
// equal counts resolve to the lowest category id.
var RatingCategories = []RatingCategory{
	{ID: RatingUnbearable, Name: "Unbearable", Emoji: "😖"},
	{ID: RatingOneTimeWatch, Name: "One Time Watch", Emoji: "🙂"},
	{ID: RatingAmazing, Name: "Amazing", Emoji: "🤩"},
	{ID: RatingMasterpiece, Name: "Masterpiece", Emoji: "🏆"},
}

func RatingCategoryByID(id RatingCategoryID) (RatingCategory, bool) {
	for _, c := range RatingCategories {
		if c.ID == id {
			return c, true
		}
	}
	return RatingCategory{}, false
}

type Review struct {
	ID         uuid.UUID
	MovieID    uuid.UUID
	Email      string
	Text       string
	CategoryID RatingCategoryID
	Likes      int
	CreatedAt  time.Time
}

type ChartEntry struct {
	ID    RatingCategoryID
	Name  string
	Emoji string
	Value int
}

// RatingSummary is derived from the current full review set of a movie and
// is never persisted.
type RatingSummary struct {
	Total              int
	MajorityCategoryID RatingCategoryID
	MajorityPercentage int
	PerCategoryCounts  map[RatingCategoryID]int
	ChartEntries       []ChartEntry
}

func (s RatingSummary) HasRatings() bool {
	return s.Total > 0
}
