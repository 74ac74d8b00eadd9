//go:build !integration
// +build !integration

package ws_discussion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	http_session_middleware "github.com/cineverse/core/internal/delivery/http/middleware/session"
	"github.com/cineverse/core/internal/model"
	service_session_auth "github.com/cineverse/core/internal/service/auth/session"
	usecase_user "github.com/cineverse/core/internal/usecase/user"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type WsControllerSuite struct {
	suite.Suite
}

type fakeUserRepository struct {
	users map[string]model.User
}

func (f *fakeUserRepository) Store(ctx context.Context, u model.User) error {
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserRepository) LoadByEmail(ctx context.Context, email string) (model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return model.User{}, usecase_user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) SetVerified(ctx context.Context, email string) error {
	return nil
}

type fakeSessionCache struct {
	values map[string]string
}

func (f *fakeSessionCache) Set(key string, value string, ttl time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeSessionCache) Get(key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeSessionCache) Delete(key string) error {
	delete(f.values, key)
	return nil
}

type wsHarness struct {
	server *httptest.Server
	hub    *Hub
	srv    *service_session_auth.Service
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newWsHarness(t provider.T) *wsHarness {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	assert.NoError(t, err)
	users := &fakeUserRepository{users: map[string]model.User{
		"viewer@example.com": {
			Email:        "viewer@example.com",
			Name:         "Viewer",
			Role:         model.RoleUser,
			Verified:     true,
			PasswordHash: hash,
		},
	}}

	srv := service_session_auth.New(users, &fakeSessionCache{values: map[string]string{}}, time.Hour)
	middleware := http_session_middleware.New(srv)

	hub := NewHub()
	go hub.Run()

	engine := gin.New()
	NewController(hub, middleware).RegisterRoutes(engine.Group("/api/v1"))

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return &wsHarness{server: server, hub: hub, srv: srv}
}

func (h *wsHarness) wsURL(movieID uuid.UUID) string {
	return "ws" + strings.TrimPrefix(h.server.URL, "http") +
		"/api/v1/movies/" + movieID.String() + "/discussion/ws"
}

func (suite *WsControllerSuite) TestSubscribeRequiresSession(t provider.T) {
	h := newWsHarness(t)

	conn, resp, err := websocket.DefaultDialer.Dial(h.wsURL(uuid.New()), nil)

	assert.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, conn)
}

func (suite *WsControllerSuite) TestSubscriberIdentityComesFromSession(t provider.T) {
	h := newWsHarness(t)
	movieID := uuid.New()

	token, err := h.srv.SignIn(context.Background(), "viewer@example.com", "hunter22")
	assert.NoError(t, err)

	header := http.Header{}
	header.Set(http_session_middleware.Header, token)
	conn, _, err := websocket.DefaultDialer.Dial(h.wsURL(movieID), header)
	assert.NoError(t, err)
	defer conn.Close()

	// The register handoff races the broadcast below, so wait for the hub
	// to pick the client up first.
	deadline := time.Now().Add(2 * time.Second)
	for {
		h.hub.mu.RLock()
		registered := len(h.hub.clients)
		h.hub.mu.RUnlock()
		if registered == 1 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	h.hub.Broadcast(movieID, model.DiscussionMessage{
		ID:      uuid.New(),
		MovieID: movieID,
		Email:   "someone@example.com",
		Text:    "anyone watching tonight?",
	})

	assert.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event Event
	assert.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventMessage, event.Type)

	// Receiving the broadcast proves the client is registered. Its identity
	// must be the session's email, not anything the caller passed in the URL.
	h.hub.mu.RLock()
	defer h.hub.mu.RUnlock()
	assert.Len(t, h.hub.clients, 1)
	for client := range h.hub.clients {
		assert.Equal(t, "viewer@example.com", client.email)
	}
}

func TestWsControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(WsControllerSuite))
}
