package http_notification

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/cineverse/core/internal/delivery/http/common"
	http_session_middleware "github.com/cineverse/core/internal/delivery/http/middleware/session"
	"github.com/cineverse/core/internal/model"
	usecase_notification "github.com/cineverse/core/internal/usecase/notification"
	usecase_user "github.com/cineverse/core/internal/usecase/user"
)

type BroadcastRequest struct {
	Type     string     `json:"type" binding:"required"`
	Text     string     `json:"text" binding:"required"`
	MovieID  *uuid.UUID `json:"movie_id"`
	MovieID2 *uuid.UUID `json:"movie_id_2"`
}

type DisplayDTO struct {
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Border      string `json:"border"`
	DualPosters bool   `json:"dual_posters"`
}

type FeedItemResponse struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	Text       string     `json:"text"`
	MovieID    *uuid.UUID `json:"movie_id,omitempty"`
	MovieID2   *uuid.UUID `json:"movie_id_2,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	Display    DisplayDTO `json:"display"`
	PosterURL  string     `json:"poster_url,omitempty"`
	PosterURL2 string     `json:"poster_url_2,omitempty"`
}

type FeedResponse struct {
	New     []FeedItemResponse `json:"new"`
	Earlier []FeedItemResponse `json:"earlier"`
}

func convertItems(items []model.FeedItem) []FeedItemResponse {
	resp := make([]FeedItemResponse, len(items))
	for i, it := range items {
		resp[i] = FeedItemResponse{
			ID:        it.ID,
			Type:      string(it.Type),
			Text:      it.Text,
			MovieID:   it.MovieID,
			MovieID2:  it.MovieID2,
			Status:    string(it.Status),
			CreatedAt: it.CreatedAt,
			Display: DisplayDTO{
				Icon:        it.Display.Icon,
				Color:       it.Display.Color,
				Border:      it.Display.Border,
				DualPosters: it.Display.DualPosters,
			},
			PosterURL:  it.PosterURL,
			PosterURL2: it.PosterURL2,
		}
	}
	return resp
}

func ConvertFromFeed(f model.Feed) FeedResponse {
	return FeedResponse{
		New:     convertItems(f.New),
		Earlier: convertItems(f.Earlier),
	}
}

type Controller struct {
	uc         *usecase_notification.Usecase
	users      *usecase_user.Usecase
	middleware *http_session_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_notification.Usecase,
	users *usecase_user.Usecase,
	middleware *http_session_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:         uc,
		users:      users,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	notifications.Use(c.middleware.SessionRequired())
	notifications.GET("", c.getFeed)
	notifications.POST("/ack", c.acknowledge)
	notifications.DELETE("", c.deleteAll)

	admin := notifications.Group("")
	admin.Use(c.middleware.AdminRequired())
	admin.POST("/broadcast", c.broadcast)
}

func (c *Controller) getFeed(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	feed, err := c.uc.Feed(ctx.Request.Context(), session.Email)
	if err != nil {
		c.logger.Error("failed to load notification feed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load notifications",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromFeed(feed))
}

func (c *Controller) acknowledge(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	if err := c.uc.Acknowledge(ctx.Request.Context(), session.Email); err != nil {
		c.logger.Error("failed to acknowledge notifications", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to acknowledge notifications",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusOK)
}

func (c *Controller) deleteAll(ctx *gin.Context) {
	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	if err := c.uc.DeleteAll(ctx.Request.Context(), session.Email); err != nil {
		c.logger.Error("failed to delete notifications", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to delete notifications",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) broadcast(ctx *gin.Context) {
	var req BroadcastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	recipients, err := c.users.Emails(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load recipients", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to load recipients",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	n := model.Notification{
		Type:     model.NotificationType(req.Type),
		Text:     req.Text,
		MovieID:  req.MovieID,
		MovieID2: req.MovieID2,
	}

	if err := c.uc.Broadcast(ctx.Request.Context(), n, recipients); err != nil {
		c.logger.Error("failed to broadcast notification", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error:   "Failed to broadcast notification",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"recipients": len(recipients)})
}
