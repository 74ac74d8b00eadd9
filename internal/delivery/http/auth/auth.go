package http_auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/cineverse/core/internal/delivery/http/common"
	http_session_middleware "github.com/cineverse/core/internal/delivery/http/middleware/session"
	"github.com/cineverse/core/internal/model"
	service_session_auth "github.com/cineverse/core/internal/service/auth/session"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Gender   string `json:"gender"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SessionResponse struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type Controller struct {
	service    *service_session_auth.Service
	middleware *http_session_middleware.Middleware
	logger     *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(service *service_session_auth.Service,
	middleware *http_session_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		service:    service,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/register", c.register)
	auth.POST("/signin", c.signIn)
	auth.POST("/signout", c.signOut)

	// Flipping the verified bit is an operator action until a mail
	// confirmation flow exists.
	admin := auth.Group("")
	admin.Use(c.middleware.SessionRequired(), c.middleware.AdminRequired())
	admin.POST("/verify", c.verify)
}

func (c *Controller) register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	u := model.User{
		Email:  req.Email,
		Name:   req.Name,
		Gender: req.Gender,
	}

	if err := c.service.Register(ctx.Request.Context(), u, req.Password); err != nil {
		if errors.Is(err, service_session_auth.ErrDuplicateEmail) {
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Error: "Email already registered",
				Code:  http.StatusConflict,
			})
			return
		}

		c.logger.Error("registration failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to register",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusCreated)
}

func (c *Controller) signIn(ctx *gin.Context) {
	var req SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	token, err := c.service.SignIn(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service_session_auth.ErrInvalidCredentials):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Error: "Invalid email or password",
				Code:  http.StatusForbidden,
			})
		case errors.Is(err, service_session_auth.ErrNotVerified):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Error: "Email not verified",
				Code:  http.StatusForbidden,
			})
		default:
			c.logger.Error("sign in failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error: "Failed to sign in",
				Code:  http.StatusInternalServerError,
			})
		}
		return
	}

	ctx.Header(http_session_middleware.Header, token)
	ctx.Status(http.StatusAccepted)
}

func (c *Controller) signOut(ctx *gin.Context) {
	t := ctx.GetHeader(http_session_middleware.Header)
	if t == "" {
		ctx.Status(http.StatusNoContent)
		return
	}

	if err := c.service.SignOut(t); err != nil {
		c.logger.Error("sign out failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to sign out",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) verify(ctx *gin.Context) {
	var req VerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if err := c.service.Verify(ctx.Request.Context(), req.Email); err != nil {
		c.logger.Error("verification failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to verify email",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusOK)
}
