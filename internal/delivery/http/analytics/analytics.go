package http_analytics

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/cineverse/core/internal/delivery/http/common"
	"github.com/cineverse/core/internal/model"
	usecase_analytics "github.com/cineverse/core/internal/usecase/analytics"
)

type RowResponse struct {
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	TotalReviews  int     `json:"total_reviews"`
	Masterpiece   int     `json:"masterpiece"`
	Amazing       int     `json:"amazing"`
	OneTimeWatch  int     `json:"one_time_watch"`
	Unbearable    int     `json:"unbearable"`
	LikesGiven    int     `json:"likes_given"`
	LikesReceived int     `json:"likes_received"`
	ReviewScore   float64 `json:"review_score"`
}

type HighlightsResponse struct {
	TopReviewer      string  `json:"top_reviewer"`
	MostLiked        string  `json:"most_liked"`
	SentimentBalance float64 `json:"sentiment_balance"`
}

type LeaderboardResponse struct {
	Rows       []RowResponse      `json:"rows"`
	Highlights HighlightsResponse `json:"highlights"`
}

func ConvertFromLeaderboard(l model.Leaderboard) LeaderboardResponse {
	rows := make([]RowResponse, len(l.Rows))
	for i, r := range l.Rows {
		rows[i] = RowResponse{
			Email:         r.Email,
			Name:          r.Name,
			TotalReviews:  r.TotalReviews,
			Masterpiece:   r.Masterpiece,
			Amazing:       r.Amazing,
			OneTimeWatch:  r.OneTimeWatch,
			Unbearable:    r.Unbearable,
			LikesGiven:    r.LikesGiven,
			LikesReceived: r.LikesReceived,
			ReviewScore:   r.ReviewScore,
		}
	}
	return LeaderboardResponse{
		Rows: rows,
		Highlights: HighlightsResponse{
			TopReviewer:      l.Highlights.TopReviewer,
			MostLiked:        l.Highlights.MostLiked,
			SentimentBalance: l.Highlights.SentimentBalance,
		},
	}
}

type Controller struct {
	uc *usecase_analytics.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_analytics.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/leaderboard", c.getLeaderboard)
}

func (c *Controller) getLeaderboard(ctx *gin.Context) {
	board, err := c.uc.Leaderboard(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load leaderboard", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load leaderboard",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromLeaderboard(board))
}
