package model

// UserAnalytics mirrors one row of the user_analytics view. ReviewScore is
// opaque to this service: the view computes it.
type UserAnalytics struct {
	Email         string
	Name          string
	TotalReviews  int
	Masterpiece   int
	Amazing       int
	OneTimeWatch  int
	Unbearable    int
	LikesGiven    int
	LikesReceived int
	ReviewScore   float64
}

type LeaderboardHighlights struct {
	TopReviewer      string
	MostLiked        string
	SentimentBalance float64
}

type Leaderboard struct {
	Rows       []UserAnalytics
	Highlights LeaderboardHighlights
}
