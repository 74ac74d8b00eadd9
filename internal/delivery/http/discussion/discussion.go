package http_discussion

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/cineverse/core/internal/delivery/http/common"
	http_session_middleware "github.com/cineverse/core/internal/delivery/http/middleware/session"
	"github.com/cineverse/core/internal/model"
	usecase_discussion "github.com/cineverse/core/internal/usecase/discussion"
)

type PostMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type MessageResponse struct {
	ID           uuid.UUID `json:"id"`
	MovieID      uuid.UUID `json:"movie_id"`
	Email        string    `json:"email"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	SenderName   string    `json:"sender_name"`
	SenderAvatar string    `json:"sender_avatar"`
}

func ConvertFromMessage(m model.DiscussionMessage) MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		MovieID:      m.MovieID,
		Email:        m.Email,
		Text:         m.Text,
		CreatedAt:    m.CreatedAt,
		SenderName:   m.SenderName,
		SenderAvatar: m.SenderAvatar,
	}
}

type Controller struct {
	uc         *usecase_discussion.Usecase
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_discussion.Usecase,
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
	router.GET("/movies/:movie_id/discussion", c.getHistory)

	authed := router.Group("")
	authed.Use(c.middleware.SessionRequired())
	authed.POST("/movies/:movie_id/discussion", c.postMessage)
}

func (c *Controller) getHistory(ctx *gin.Context) {
	movieID, ok := parseMovieID(ctx)
	if !ok {
		return
	}

	messages, err := c.uc.History(ctx.Request.Context(), movieID)
	if err != nil {
		c.logger.Error("failed to load discussion history", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load discussion history",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	resp := make([]MessageResponse, len(messages))
	for i, m := range messages {
		resp[i] = ConvertFromMessage(m)
	}
	ctx.JSON(http.StatusOK, gin.H{"messages": resp, "total": len(resp)})
}

func (c *Controller) postMessage(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	movieID, ok := parseMovieID(ctx)
	if !ok {
		return
	}

	var req PostMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	m, err := c.uc.Post(ctx.Request.Context(), session, movieID, req.Text)
	if err != nil {
		if errors.Is(err, usecase_discussion.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "Invalid message",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
			return
		}

		c.logger.Error("failed to post message", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to post message",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusCreated, ConvertFromMessage(m))
}

func parseMovieID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("movie_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return uuid.Nil, false
	}
	return id, true
}
