package http_user

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/cineverse/core/internal/delivery/http/common"
	http_session_middleware "github.com/cineverse/core/internal/delivery/http/middleware/session"
	"github.com/cineverse/core/internal/model"
	usecase_user "github.com/cineverse/core/internal/usecase/user"
)

type UpdateProfileRequest struct {
	Name   string `json:"name" binding:"required"`
	Gender string `json:"gender"`
}

type ProfileResponse struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Gender    string `json:"gender"`
	Role      string `json:"role"`
}

func ConvertFromUser(u model.User) ProfileResponse {
	return ProfileResponse{
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Gender:    u.Gender,
		Role:      string(u.Role),
	}
}

type Controller struct {
	uc         *usecase_user.Usecase
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_user.Usecase,
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
	profile := router.Group("/profile")
	profile.Use(c.middleware.SessionRequired())
	profile.GET("", c.getProfile)
	profile.PUT("", c.updateProfile)
	profile.POST("/avatar", c.uploadAvatar)
}

func (c *Controller) getProfile(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	user, err := c.uc.Profile(ctx.Request.Context(), session.Email)
	if err != nil {
		if errors.Is(err, usecase_user.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: "User not found",
				Code:  http.StatusNotFound,
			})
			return
		}

		c.logger.Error("failed to load profile", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load profile",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromUser(user))
}

func (c *Controller) updateProfile(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if err := c.uc.UpdateProfile(ctx.Request.Context(), session, req.Name, req.Gender); err != nil {
		c.logger.Error("failed to update profile", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to update profile",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusOK)
}

func (c *Controller) uploadAvatar(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	file, header, err := ctx.Request.FormFile("avatar")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Missing avatar file",
			Code:  http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, model.MaxUploadSize+1))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Failed to read avatar file",
			Code:  http.StatusBadRequest,
		})
		return
	}

	key, err := c.uc.UploadAvatar(ctx.Request.Context(), session, model.Avatar{
		Filename: header.Filename,
		Content:  content,
	})
	if err != nil {
		if errors.Is(err, usecase_user.ErrAvatarTooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, http_common.ErrorResponse{
				Error: "Avatar must be 1 MB or smaller",
				Code:  http.StatusRequestEntityTooLarge,
			})
			return
		}

		c.logger.Error("failed to upload avatar", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to upload avatar",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"avatar_url": key})
}
