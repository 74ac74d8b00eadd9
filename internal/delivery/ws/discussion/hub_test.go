//go:build !integration
// +build !integration

package ws_discussion

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type HubSuite struct {
	suite.Suite
}

func newTestClient(h *Hub, movieID uuid.UUID, buffer int) *Client {
	return &Client{
		hub:     h,
		send:    make(chan Event, buffer),
		email:   "viewer@example.com",
		movieID: movieID,
	}
}

func (suite *HubSuite) TestBroadcastDelivers(t provider.T) {
	t.Parallel()

	h := NewHub()
	movieID := uuid.New()
	client := newTestClient(h, movieID, 16)
	h.handleRegister(client)

	h.broadcastToChannel(movieID, Event{Type: EventMessage})
	h.broadcastToChannel(uuid.New(), Event{Type: EventMessage})

	// Only the subscribed channel's event lands in the send buffer.
	assert.Len(t, client.send, 1)
}

func (suite *HubSuite) TestSlowClientEvictedOnce(t provider.T) {
	t.Parallel()

	h := NewHub()
	movieID := uuid.New()
	slow := newTestClient(h, movieID, 1)
	healthy := newTestClient(h, movieID, 16)
	h.handleRegister(slow)
	h.handleRegister(healthy)

	// The second broadcast overflows the slow client's buffer and evicts it.
	h.broadcastToChannel(movieID, Event{Type: EventMessage})
	h.broadcastToChannel(movieID, Event{Type: EventMessage})

	_, stillRegistered := h.clients[slow]
	assert.False(t, stillRegistered)
	assert.Len(t, healthy.send, 2)

	// The evicted client's readPump still unregisters on exit. That must be
	// a no-op, not a second close of the send channel.
	assert.NotPanics(t, func() {
		h.handleUnregister(slow)
	})

	_, inChannel := h.channels[movieID][slow]
	assert.False(t, inChannel)
}

func (suite *HubSuite) TestUnregisterDropsEmptyChannel(t provider.T) {
	t.Parallel()

	h := NewHub()
	movieID := uuid.New()
	client := newTestClient(h, movieID, 16)
	h.handleRegister(client)

	h.handleUnregister(client)

	_, exists := h.channels[movieID]
	assert.False(t, exists)
	assert.Empty(t, h.clients)
}

func TestHubSuite(t *testing.T) {
	suite.RunSuite(t, new(HubSuite))
}
