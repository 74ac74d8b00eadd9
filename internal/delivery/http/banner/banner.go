package http_banner

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
	usecase_banner "github.com/cineverse/core/internal/usecase/banner"
)

type CreateBannerRequest struct {
	MovieID  uuid.UUID `json:"movie_id" binding:"required"`
	ImageURL string    `json:"image_url"`
	Headline string    `json:"headline"`
}

type BannerResponse struct {
	ID       uuid.UUID `json:"id"`
	MovieID  uuid.UUID `json:"movie_id"`
	ImageURL string    `json:"image_url"`
	Headline string    `json:"headline"`
}

func ConvertFromBanner(b model.Banner) BannerResponse {
	return BannerResponse{
		ID:       b.ID,
		MovieID:  b.MovieID,
		ImageURL: b.ImageURL,
		Headline: b.Headline,
	}
}

type Controller struct {
	uc         *usecase_banner.Usecase
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_banner.Usecase,
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
	banners := router.Group("/banners")
	banners.GET("", c.getBanners)

	admin := banners.Group("")
	admin.Use(c.middleware.SessionRequired(), c.middleware.AdminRequired())
	admin.POST("", c.createBanner)
	admin.POST("/:banner_id/image", c.uploadImage)
	admin.DELETE("/:banner_id", c.deleteBanner)
}

func (c *Controller) getBanners(ctx *gin.Context) {
	banners, err := c.uc.Load(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load banners", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load banners",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	resp := make([]BannerResponse, len(banners))
	for i, b := range banners {
		resp[i] = ConvertFromBanner(b)
	}
	ctx.JSON(http.StatusOK, gin.H{"banners": resp})
}

func (c *Controller) createBanner(ctx *gin.Context) {
	var req CreateBannerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	b := model.Banner{
		ID:       uuid.New(),
		MovieID:  req.MovieID,
		ImageURL: req.ImageURL,
		Headline: req.Headline,
	}

	if err := c.uc.Create(ctx.Request.Context(), b); err != nil {
		if errors.Is(err, usecase_banner.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error:   "Invalid banner",
				Message: err.Error(),
				Code:    http.StatusBadRequest,
			})
			return
		}

		c.logger.Error("failed to create banner", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to create banner",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": b.ID})
}

func (c *Controller) uploadImage(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("banner_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid banner ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	file, header, err := ctx.Request.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Missing image file",
			Code:  http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, model.MaxUploadSize+1))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Failed to read image file",
			Code:  http.StatusBadRequest,
		})
		return
	}

	key, err := c.uc.UploadImage(ctx.Request.Context(), id, model.BannerImage{
		Filename: header.Filename,
		Content:  content,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase_banner.ErrImageTooLarge):
			ctx.JSON(http.StatusRequestEntityTooLarge, http_common.ErrorResponse{
				Error: "Banner image must be 1 MB or smaller",
				Code:  http.StatusRequestEntityTooLarge,
			})
		case errors.Is(err, usecase_banner.ErrBannerNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Banner not found",
				Code:  http.StatusNotFound,
			})
		default:
			c.logger.Error("failed to upload banner image", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error:   "Failed to upload banner image",
				Message: err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"image_url": key})
}

func (c *Controller) deleteBanner(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("banner_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid banner ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, usecase_banner.ErrBannerNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "Banner not found",
				Code:  http.StatusNotFound,
			})
			return
		}

		c.logger.Error("failed to delete banner", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to delete banner",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
