package http_review

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/cineverse/core/internal/delivery/http/common"
	http_session_middleware "github.com/cineverse/core/internal/delivery/http/middleware/session"
	"github.com/cineverse/core/internal/model"
	usecase_review "github.com/cineverse/core/internal/usecase/review"
)

type CreateReviewRequest struct {
	Text       string `json:"text" binding:"required"`
	CategoryID int    `json:"category_id" binding:"required"`
}

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	MovieID    uuid.UUID `json:"movie_id"`
	Email      string    `json:"email"`
	Text       string    `json:"text"`
	CategoryID int       `json:"category_id"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}

type ChartEntryDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Value int    `json:"value"`
}

type SummaryResponse struct {
	Total              int             `json:"total"`
	MajorityCategoryID int             `json:"majority_category_id,omitempty"`
	MajorityPercentage int             `json:"majority_percentage,omitempty"`
	ChartEntries       []ChartEntryDTO `json:"chart_entries"`
}

func ConvertFromReview(r model.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		MovieID:    r.MovieID,
		Email:      r.Email,
		Text:       r.Text,
		CategoryID: int(r.CategoryID),
		Likes:      r.Likes,
		CreatedAt:  r.CreatedAt,
	}
}

func ConvertFromSummary(s model.RatingSummary) SummaryResponse {
	resp := SummaryResponse{
		Total:              s.Total,
		MajorityCategoryID: int(s.MajorityCategoryID),
		MajorityPercentage: s.MajorityPercentage,
		ChartEntries:       make([]ChartEntryDTO, 0, len(s.ChartEntries)),
	}
	for _, e := range s.ChartEntries {
		resp.ChartEntries = append(resp.ChartEntries, ChartEntryDTO{
			ID:    int(e.ID),
			Name:  e.Name,
			Emoji: e.Emoji,
			Value: e.Value,
		})
	}
	return resp
}

type Controller struct {
	uc         *usecase_review.Usecase
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_review.Usecase,
	middleware *http_session_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:         uc,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/movies/:movie_id/reviews", c.listReviews)
	router.GET("/movies/:movie_id/reviews/summary", c.getSummary)

	authed := router.Group("")
	authed.Use(c.middleware.SessionRequired())
	authed.POST("/movies/:movie_id/reviews", c.createReview)
	authed.DELETE("/reviews/:review_id", c.deleteReview)
	authed.POST("/reviews/:review_id/like", c.likeReview)
	authed.DELETE("/reviews/:review_id/like", c.unlikeReview)
}

func (c *Controller) createReview(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	movieID, ok := parseID(ctx, "movie_id")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	review := model.Review{
		ID:         uuid.New(),
		MovieID:    movieID,
		Email:      session.Email,
		Text:       req.Text,
		CategoryID: model.RatingCategoryID(req.CategoryID),
	}

	if err := c.uc.Create(ctx.Request.Context(), review); err != nil {
		switch {
		case errors.Is(err, usecase_review.ErrAlreadyReviewed):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Error: "You already reviewed this movie",
				Code:  http.StatusConflict,
			})
		case errors.Is(err, usecase_review.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "Invalid review",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
		default:
			c.logger.Error("failed to create review", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to create review",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": review.ID})
}

func (c *Controller) listReviews(ctx *gin.Context) {
	movieID, ok := parseID(ctx, "movie_id")
	if !ok {
		return
	}

	reviews, err := c.uc.ListByMovie(ctx.Request.Context(), movieID)
	if err != nil {
		c.logger.Error("failed to load reviews", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load reviews",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	resp := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		resp[i] = ConvertFromReview(r)
	}
	ctx.JSON(http.StatusOK, gin.H{"reviews": resp, "total": len(resp)})
}

func (c *Controller) getSummary(ctx *gin.Context) {
	movieID, ok := parseID(ctx, "movie_id")
	if !ok {
		return
	}

	summary, err := c.uc.Summary(ctx.Request.Context(), movieID)
	if err != nil {
		c.logger.Error("failed to build rating summary", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to build rating summary",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromSummary(summary))
}

func (c *Controller) deleteReview(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	reviewID, ok := parseID(ctx, "review_id")
	if !ok {
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), session, reviewID); err != nil {
		switch {
		case errors.Is(err, usecase_review.ErrReviewNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Review not found",
				Code:  http.StatusNotFound,
			})
		case errors.Is(err, usecase_review.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Error: "Review belongs to another user",
				Code:  http.StatusForbidden,
			})
		default:
			c.logger.Error("failed to delete review", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to delete review",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) likeReview(ctx *gin.Context) {
	c.toggleLike(ctx, c.uc.Like)
}

func (c *Controller) unlikeReview(ctx *gin.Context) {
	c.toggleLike(ctx, c.uc.Unlike)
}

func (c *Controller) toggleLike(ctx *gin.Context, op func(context.Context, uuid.UUID, string) error) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	reviewID, ok := parseID(ctx, "review_id")
	if !ok {
		return
	}

	if err := op(ctx.Request.Context(), reviewID, session.Email); err != nil {
		c.logger.Error("failed to toggle like", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to toggle like",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusOK)
}

func parseID(ctx *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid " + param,
			Code:  http.StatusBadRequest,
		})
		return uuid.Nil, false
	}
	return id, true
}
