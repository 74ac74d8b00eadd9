package http_movie

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/cineverse/core/internal/delivery/http/common"
	http_session_middleware "github.com/cineverse/core/internal/delivery/http/middleware/session"
	"github.com/cineverse/core/internal/model"
	usecase_movie "github.com/cineverse/core/internal/usecase/movie"
)

type CastMemberDTO struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url"`
}

type OTTLinkDTO struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
}

type CreateMovieRequest struct {
	Title       string          `json:"title" binding:"required"`
	Year        int             `json:"year" binding:"required"`
	Duration    int             `json:"duration"`
	Description string          `json:"description"`
	PosterURL   string          `json:"poster_url"`
	TrailerURL  string          `json:"trailer_url"`
	Language    string          `json:"language"`
	Kind        string          `json:"kind" binding:"required,oneof=Movie Series"`
	Genres      []string        `json:"genres" binding:"required"`
	Cast        []CastMemberDTO `json:"cast"`
	OTTLinks    []OTTLinkDTO    `json:"ott_links"`
}

type MovieResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Year        int             `json:"year"`
	Duration    int             `json:"duration"`
	Description string          `json:"description"`
	PosterURL   string          `json:"poster_url"`
	TrailerURL  string          `json:"trailer_url"`
	Language    string          `json:"language"`
	Kind        string          `json:"kind"`
	Genres      []string        `json:"genres"`
	Cast        []CastMemberDTO `json:"cast"`
	OTTLinks    []OTTLinkDTO    `json:"ott_links"`
	AISummary   string          `json:"ai_summary,omitempty"`
}

type MoviesListResponse struct {
	Movies []MovieResponse `json:"movies"`
	Total  int             `json:"total"`
}

func (r *CreateMovieRequest) ConvertToMovie(id uuid.UUID) model.Movie {
	m := model.Movie{
		ID:          id,
		Title:       r.Title,
		Year:        r.Year,
		Duration:    r.Duration,
		Description: r.Description,
		PosterURL:   r.PosterURL,
		TrailerURL:  r.TrailerURL,
		Language:    r.Language,
		Kind:        model.TitleKind(r.Kind),
		Genres:      r.Genres,
	}
	for _, c := range r.Cast {
		m.Cast = append(m.Cast, model.CastMember{Name: c.Name, Role: c.Role, PhotoURL: c.PhotoURL})
	}
	for _, l := range r.OTTLinks {
		m.OTTLinks = append(m.OTTLinks, model.OTTLink{Platform: l.Platform, URL: l.URL})
	}
	return m
}

func ConvertFromMovie(m model.Movie) MovieResponse {
	resp := MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Year:        m.Year,
		Duration:    m.Duration,
		Description: m.Description,
		PosterURL:   m.PosterURL,
		TrailerURL:  m.TrailerURL,
		Language:    m.Language,
		Kind:        string(m.Kind),
		Genres:      m.Genres,
		AISummary:   m.AISummary,
	}
	for _, c := range m.Cast {
		resp.Cast = append(resp.Cast, CastMemberDTO{Name: c.Name, Role: c.Role, PhotoURL: c.PhotoURL})
	}
	for _, l := range m.OTTLinks {
		resp.OTTLinks = append(resp.OTTLinks, OTTLinkDTO{Platform: l.Platform, URL: l.URL})
	}
	return resp
}

func ConvertFromMovieList(movies []*model.Movie) []MovieResponse {
	resp := make([]MovieResponse, len(movies))
	for i, m := range movies {
		resp[i] = ConvertFromMovie(*m)
	}
	return resp
}

type Controller struct {
	uc         *usecase_movie.Usecase
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase,
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
	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/:movie_id", c.getMovie)
	movies.GET("/:movie_id/digest", c.getReviewDigest)

	admin := movies.Group("")
	admin.Use(c.middleware.SessionRequired(), c.middleware.AdminRequired())
	admin.POST("", c.createMovie)
	admin.PUT("/:movie_id", c.updateMovie)
	admin.DELETE("/:movie_id", c.deleteMovie)
	admin.POST("/:movie_id/poster", c.uploadPoster)
}

func (c *Controller) createMovie(ctx *gin.Context) {
	var req CreateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	movie := req.ConvertToMovie(uuid.New())

	if err := c.uc.Create(ctx.Request.Context(), movie); err != nil {
		c.logger.Error("failed to create movie",
			slog.String("error", err.Error()),
			slog.String("title", req.Title),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to create movie",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": movie.ID})
}

func (c *Controller) getMovies(ctx *gin.Context) {
	var (
		movies []*model.Movie
		err    error
	)

	if title := ctx.Query("search"); title != "" {
		movies, err = c.uc.Search(ctx.Request.Context(), title)
	} else {
		movies, err = c.uc.Load(ctx.Request.Context())
	}
	if err != nil {
		c.logger.Error("failed to load movies", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load movies",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, MoviesListResponse{
		Movies: ConvertFromMovieList(movies),
		Total:  len(movies),
	})
}

func (c *Controller) getMovie(ctx *gin.Context) {
	movieID, ok := c.parseMovieID(ctx)
	if !ok {
		return
	}

	movie, err := c.uc.GetByID(ctx.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
			return
		}

		c.logger.Error("failed to load movie", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load movie",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovie(movie))
}

func (c *Controller) updateMovie(ctx *gin.Context) {
	movieID, ok := c.parseMovieID(ctx)
	if !ok {
		return
	}

	var req CreateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if err := c.uc.Update(ctx.Request.Context(), req.ConvertToMovie(movieID)); err != nil {
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
			return
		}

		c.logger.Error("failed to update movie",
			slog.String("error", err.Error()),
			slog.String("movie_id", movieID.String()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to update movie",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusOK)
}

func (c *Controller) deleteMovie(ctx *gin.Context) {
	movieID, ok := c.parseMovieID(ctx)
	if !ok {
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), movieID); err != nil {
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
			return
		}

		c.logger.Error("failed to delete movie",
			slog.String("error", err.Error()),
			slog.String("movie_id", movieID.String()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to delete movie",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) uploadPoster(ctx *gin.Context) {
	movieID, ok := c.parseMovieID(ctx)
	if !ok {
		return
	}

	file, header, err := ctx.Request.FormFile("poster")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Missing poster file",
			Code:  http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, model.MaxUploadSize+1))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Failed to read poster file",
			Code:  http.StatusBadRequest,
		})
		return
	}

	key, err := c.uc.UploadPoster(ctx.Request.Context(), movieID, model.Poster{
		Filename: header.Filename,
		Content:  content,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase_movie.ErrPosterTooLarge):
			ctx.JSON(http.StatusRequestEntityTooLarge, http_common.ErrorResponse{
				Error: "Poster must be 1 MB or smaller",
				Code:  http.StatusRequestEntityTooLarge,
			})
		case errors.Is(err, usecase_movie.ErrMovieNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
		default:
			c.logger.Error("failed to upload poster", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to upload poster",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"poster_url": key})
}

func (c *Controller) getReviewDigest(ctx *gin.Context) {
	movieID, ok := c.parseMovieID(ctx)
	if !ok {
		return
	}

	text, err := c.uc.ReviewDigest(ctx.Request.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, usecase_movie.ErrMovieNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Movie not found",
				Code:  http.StatusNotFound,
			})
		case errors.Is(err, usecase_movie.ErrNoReviewsToSummarize):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "No reviews to summarize",
				Code:  http.StatusNotFound,
			})
		default:
			c.logger.Error("failed to build review digest", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to build review digest",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"digest": text})
}

func (c *Controller) parseMovieID(ctx *gin.Context) (uuid.UUID, bool) {
	idParam := ctx.Param("movie_id")
	movieID, err := uuid.Parse(idParam)
	if err != nil {
		c.logger.Warn("invalid movie ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return uuid.Nil, false
	}
	return movieID, true
}
