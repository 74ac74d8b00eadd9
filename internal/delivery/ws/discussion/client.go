package ws_discussion

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	http_session_middleware "github.com/cineverse/core/internal/delivery/http/middleware/session"
)

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan Event
	email   string
	movieID uuid.UUID
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			break
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Controller struct {
	hub        *Hub
	middleware *http_session_middleware.Middleware
	logger     *slog.Logger
}

func NewController(hub *Hub,
	middleware *http_session_middleware.Middleware) *Controller {
	return &Controller{
		hub:        hub,
		middleware: middleware,
		logger:     slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/movies/:movie_id/discussion/ws",
		c.middleware.SessionRequired(), c.serve)
}

func (c *Controller) serve(ctx *gin.Context) {
	movieID, err := uuid.Parse(ctx.Param("movie_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie ID"})
		return
	}

	session, ok := http_session_middleware.FromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		hub:     c.hub,
		conn:    conn,
		send:    make(chan Event, 16),
		email:   session.Email,
		movieID: movieID,
	}

	c.hub.register <- client

	go client.writePump()
	go client.readPump()
}
