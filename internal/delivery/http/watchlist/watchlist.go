package http_watchlist

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/cineverse/core/internal/delivery/http/common"
	http_session_middleware "github.com/cineverse/core/internal/delivery/http/middleware/session"
	http_movie "github.com/cineverse/core/internal/delivery/http/movie"
	http_review "github.com/cineverse/core/internal/delivery/http/review"
	"github.com/cineverse/core/internal/model"
	usecase_watchlist "github.com/cineverse/core/internal/usecase/watchlist"
)

type AddEntryRequest struct {
	MovieID  uuid.UUID `json:"movie_id" binding:"required"`
	ListName string    `json:"list_name"`
}

type CreateCollectionRequest struct {
	Name string `json:"name" binding:"required"`
}

type CollectionMovieResponse struct {
	http_movie.MovieResponse
	Summary http_review.SummaryResponse `json:"summary"`
}

type CollectionResponse struct {
	Name   string                    `json:"name"`
	Movies []CollectionMovieResponse `json:"movies"`
}

func ConvertFromCollections(collections []model.Collection) []CollectionResponse {
	resp := make([]CollectionResponse, len(collections))
	for i, col := range collections {
		movies := make([]CollectionMovieResponse, len(col.Movies))
		for j, m := range col.Movies {
			movies[j] = CollectionMovieResponse{
				MovieResponse: http_movie.ConvertFromMovie(m.Movie),
				Summary:       http_review.ConvertFromSummary(m.Summary),
			}
		}
		resp[i] = CollectionResponse{Name: col.Name, Movies: movies}
	}
	return resp
}

type Controller struct {
	uc         *usecase_watchlist.Usecase
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_watchlist.Usecase,
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
	watchlist := router.Group("/watchlist")
	watchlist.Use(c.middleware.SessionRequired())
	watchlist.GET("/collections", c.getCollections)
	watchlist.POST("/collections", c.createCollection)
	watchlist.POST("/entries", c.addEntry)
	watchlist.DELETE("/entries", c.removeEntry)
}

func (c *Controller) getCollections(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	collections, err := c.uc.Collections(ctx.Request.Context(), session.Email)
	if err != nil {
		c.logger.Error("failed to load collections", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load collections",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"collections": ConvertFromCollections(collections)})
}

func (c *Controller) createCollection(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var req CreateCollectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if err := c.uc.CreateCollection(ctx.Request.Context(), session.Email, req.Name); err != nil {
		if errors.Is(err, usecase_watchlist.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "Invalid collection name",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
			return
		}

		c.logger.Error("failed to create collection", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to create collection",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusCreated)
}

func (c *Controller) addEntry(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var req AddEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	entry := model.WatchlistEntry{
		Email:    session.Email,
		MovieID:  req.MovieID,
		ListName: req.ListName,
	}

	if err := c.uc.AddEntry(ctx.Request.Context(), entry); err != nil {
		c.logger.Error("failed to add watchlist entry", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to add watchlist entry",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusCreated)
}

func (c *Controller) removeEntry(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var req AddEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	entry := model.WatchlistEntry{
		Email:    session.Email,
		MovieID:  req.MovieID,
		ListName: req.ListName,
	}

	if err := c.uc.RemoveEntry(ctx.Request.Context(), entry); err != nil {
		c.logger.Error("failed to remove watchlist entry", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to remove watchlist entry",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
