package model

import (
	"time"

	"github.com/google/uuid"
)

type DiscussionMessage struct {
	ID        uuid.UUID
	MovieID   uuid.UUID
	Email     string
	Text      string
	CreatedAt time.Time

	// Sender display fields, enriched before broadcast.
	SenderName   string
	SenderAvatar string
}
