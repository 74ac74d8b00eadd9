package ws_discussion

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cineverse/core/internal/model"
)

const (
	EventMessage    = "MESSAGE"
	EventUserJoined = "USER_JOINED"
	EventError      = "ERROR"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type MessagePayload struct {
	ID           uuid.UUID `json:"id"`
	MovieID      uuid.UUID `json:"movie_id"`
	Email        string    `json:"email"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	SenderName   string    `json:"sender_name"`
	SenderAvatar string    `json:"sender_avatar"`
}

type channelEvent struct {
	movieID uuid.UUID
	event   Event
}

// Hub fans discussion events out to every client subscribed to a movie's
// channel. A single Run goroutine drains the broadcast queue, so events for
// one channel reach clients in the order they were enqueued.
type Hub struct {
	logger     *slog.Logger
	clients    map[*Client]bool
	channels   map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan channelEvent
	mu         sync.RWMutex
}

type HubOption func(*Hub)

func WithLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		logger:     slog.Default(),
		clients:    make(map[*Client]bool),
		channels:   make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan channelEvent, 64),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case ev := <-h.broadcast:
			h.broadcastToChannel(ev.movieID, ev.event)
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if _, exists := h.channels[client.movieID]; !exists {
		h.channels[client.movieID] = make(map[*Client]bool)
	}
	h.channels[client.movieID][client] = true

	h.logger.Info("client registered",
		"email", client.email,
		"movie_id", client.movieID.String())
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		if channelClients, exists := h.channels[client.movieID]; exists {
			delete(channelClients, client)
			if len(channelClients) == 0 {
				delete(h.channels, client.movieID)
			}
		}
	}

	h.logger.Info("client unregistered",
		"email", client.email,
		"movie_id", client.movieID.String())
}

func (h *Hub) broadcastToChannel(movieID uuid.UUID, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if channelClients, exists := h.channels[movieID]; exists {
		for client := range channelClients {
			select {
			case client.send <- event:
			default:
				// Evict the slow client everywhere, so the unregister
				// from its readPump does not close the channel again.
				close(client.send)
				delete(h.channels[movieID], client)
				delete(h.clients, client)
			}
		}
	}
}

// Broadcast enqueues an already-enriched message for the movie's channel.
func (h *Hub) Broadcast(movieID uuid.UUID, m model.DiscussionMessage) {
	h.broadcast <- channelEvent{
		movieID: movieID,
		event: Event{
			Type: EventMessage,
			Payload: MessagePayload{
				ID:           m.ID,
				MovieID:      m.MovieID,
				Email:        m.Email,
				Text:         m.Text,
				CreatedAt:    m.CreatedAt,
				SenderName:   m.SenderName,
				SenderAvatar: m.SenderAvatar,
			},
		},
	}
}
