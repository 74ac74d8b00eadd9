package http_recommendation

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
	usecase_recommendation "github.com/cineverse/core/internal/usecase/recommendation"
)

type SubmitRequest struct {
	MovieID1 uuid.UUID  `json:"movie_id_1" binding:"required"`
	MovieID2 *uuid.UUID `json:"movie_id_2"`
	Message  string     `json:"message" binding:"required"`
	Kind     string     `json:"kind" binding:"required,oneof=normal pairing"`
}

type EditRequest struct {
	Message string `json:"message" binding:"required"`
}

type RecommendationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	MovieID1  uuid.UUID  `json:"movie_id_1"`
	MovieID2  *uuid.UUID `json:"movie_id_2,omitempty"`
	Message   string     `json:"message"`
	Kind      string     `json:"kind"`
	Likes     int        `json:"likes"`
	CreatedAt time.Time  `json:"created_at"`
}

func ConvertFromRecommendation(r model.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:        r.ID,
		Email:     r.Email,
		MovieID1:  r.MovieID1,
		MovieID2:  r.MovieID2,
		Message:   r.Message,
		Kind:      string(r.Kind),
		Likes:     r.Likes,
		CreatedAt: r.CreatedAt,
	}
}

func ConvertFromRecommendationList(recs []model.Recommendation) []RecommendationResponse {
	resp := make([]RecommendationResponse, len(recs))
	for i, r := range recs {
		resp[i] = ConvertFromRecommendation(r)
	}
	return resp
}

type Controller struct {
	uc         *usecase_recommendation.Usecase
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_recommendation.Usecase,
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
	recs := router.Group("/recommendations")
	recs.GET("", c.listRecommendations)

	authed := recs.Group("")
	authed.Use(c.middleware.SessionRequired())
	authed.POST("", c.submit)
	authed.PUT("/:recommendation_id", c.edit)
	authed.DELETE("/:recommendation_id", c.deleteRecommendation)
	authed.POST("/:recommendation_id/like", c.like)
	authed.DELETE("/:recommendation_id/like", c.unlike)
	authed.GET("/mine", c.listOwn)
}

func (c *Controller) submit(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	rec := model.Recommendation{
		ID:       uuid.New(),
		Email:    session.Email,
		MovieID1: req.MovieID1,
		MovieID2: req.MovieID2,
		Message:  req.Message,
		Kind:     model.RecommendationKind(req.Kind),
	}

	if err := c.uc.Submit(ctx.Request.Context(), rec); err != nil {
		c.writeSubmitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": rec.ID})
}

func (c *Controller) writeSubmitError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase_recommendation.ErrDuplicate):
		ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
			Error:   "Duplicate recommendation",
			Message: err.Error(),
			Code:    http.StatusConflict,
		})
	case errors.Is(err, usecase_recommendation.ErrMessageTooShort),
		errors.Is(err, usecase_recommendation.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error:   "Invalid recommendation",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, usecase_recommendation.ErrCheckUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{
			Error: "Duplicate check unavailable, try again later",
			Code:  http.StatusServiceUnavailable,
		})
	default:
		c.logger.Error("failed to submit recommendation", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to submit recommendation",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
}

func (c *Controller) edit(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	id, ok := parseRecommendationID(ctx)
	if !ok {
		return
	}

	var req EditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	err := c.uc.Edit(ctx.Request.Context(), session, model.Recommendation{
		ID:      id,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase_recommendation.ErrNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Recommendation not found",
				Code:  http.StatusNotFound,
			})
		case errors.Is(err, usecase_recommendation.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Error: "Recommendation belongs to another user",
				Code:  http.StatusForbidden,
			})
		case errors.Is(err, usecase_recommendation.ErrMessageTooShort):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "Invalid recommendation",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
		default:
			c.logger.Error("failed to edit recommendation", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to edit recommendation",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.Status(http.StatusOK)
}

func (c *Controller) deleteRecommendation(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	id, ok := parseRecommendationID(ctx)
	if !ok {
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), session, id); err != nil {
		switch {
		case errors.Is(err, usecase_recommendation.ErrNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Recommendation not found",
				Code:  http.StatusNotFound,
			})
		case errors.Is(err, usecase_recommendation.ErrNotOwner):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Error: "Recommendation belongs to another user",
				Code:  http.StatusForbidden,
			})
		default:
			c.logger.Error("failed to delete recommendation", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to delete recommendation",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) listRecommendations(ctx *gin.Context) {
	recs, err := c.uc.Load(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load recommendations", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load recommendations",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"recommendations": ConvertFromRecommendationList(recs),
		"total":           len(recs),
	})
}

func (c *Controller) listOwn(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	recs, err := c.uc.LoadByUser(ctx.Request.Context(), session.Email)
	if err != nil {
		c.logger.Error("failed to load recommendations", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load recommendations",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"recommendations": ConvertFromRecommendationList(recs),
		"total":           len(recs),
	})
}

func (c *Controller) like(ctx *gin.Context) {
	c.toggleLike(ctx, c.uc.Like)
}

func (c *Controller) unlike(ctx *gin.Context) {
	c.toggleLike(ctx, c.uc.Unlike)
}

func (c *Controller) toggleLike(ctx *gin.Context, op func(context.Context, uuid.UUID, string) error) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	id, ok := parseRecommendationID(ctx)
	if !ok {
		return
	}

	if err := op(ctx.Request.Context(), id, session.Email); err != nil {
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

func parseRecommendationID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("recommendation_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid recommendation ID",
			Code:  http.StatusBadRequest,
		})
		return uuid.Nil, false
	}
	return id, true
}
