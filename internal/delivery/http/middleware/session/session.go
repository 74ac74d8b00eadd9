package http_session_middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/cineverse/core/internal/delivery/http/common"
	"github.com/cineverse/core/internal/model"
	service_session_auth "github.com/cineverse/core/internal/service/auth/session"
)

const (
	Header     = "X-session-token"
	ContextKey = "session"
)

type Middleware struct {
	service *service_session_auth.Service
	logger  *slog.Logger
}

func New(
	service *service_session_auth.Service,
) *Middleware {
	return &Middleware{
		service: service,
		logger:  slog.Default(),
	}
}

// SessionRequired resolves the session token into a SessionContext and
// stores it on the request context.
func (m *Middleware) SessionRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(Header)
		if t == "" {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "no " + Header + " header",
				Code:    http.StatusUnauthorized,
			})
			ctx.Abort()
			return
		}

		session, err := m.service.Resolve(ctx.Request.Context(), t)
		if err != nil {
			m.logger.Warn("session resolve failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid session",
				Code:    http.StatusUnauthorized,
			})
			ctx.Abort()
			return
		}

		ctx.Set(ContextKey, session)
		ctx.Next()
	}
}

// AdminRequired builds on SessionRequired: run it after the session is set.
func (m *Middleware) AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := FromContext(ctx)
		if !ok || !session.IsAdmin() {
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "admin access required",
				Code:    http.StatusForbidden,
			})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

func FromContext(ctx *gin.Context) (model.SessionContext, bool) {
	v, ok := ctx.Get(ContextKey)
	if !ok {
		return model.SessionContext{}, false
	}
	session, ok := v.(model.SessionContext)
	return session, ok
}
