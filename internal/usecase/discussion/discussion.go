package usecase_discussion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cineverse/core/internal/model"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrFailedToStore = errors.New("failed to store message")
	ErrFailedToLoad  = errors.New("failed to load messages")
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	Store(ctx context.Context, m model.DiscussionMessage) error
	LoadByMovie(ctx context.Context, movieID uuid.UUID) ([]model.DiscussionMessage, error)
}

//go:generate mockery --name=Broadcaster --output=./mocks/broadcaster --filename=broadcaster.go
type Broadcaster interface {
	Broadcast(movieID uuid.UUID, m model.DiscussionMessage)
}

type Usecase struct {
	repository  Repository
	broadcaster Broadcaster
}

func New(
	repository Repository,
	broadcaster Broadcaster,
) *Usecase {
	return &Usecase{
		repository:  repository,
		broadcaster: broadcaster,
	}
}

// Post persists the message, fills in the sender's display fields from the
// session, and only then hands it to the hub. Enrichment before broadcast
// keeps the displayed order equal to the persisted order.
func (u *Usecase) Post(ctx context.Context, session model.SessionContext, movieID uuid.UUID, text string) (model.DiscussionMessage, error) {
	if text == "" {
		return model.DiscussionMessage{}, fmt.Errorf("%w: empty message", ErrInvalidInput)
	}

	m := model.DiscussionMessage{
		ID:           uuid.New(),
		MovieID:      movieID,
		Email:        session.Email,
		Text:         text,
		CreatedAt:    time.Now(),
		SenderName:   session.Name,
		SenderAvatar: session.AvatarURL,
	}

	if err := u.repository.Store(ctx, m); err != nil {
		return model.DiscussionMessage{}, fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}

	u.broadcaster.Broadcast(movieID, m)

	return m, nil
}

func (u *Usecase) History(ctx context.Context, movieID uuid.UUID) ([]model.DiscussionMessage, error) {
	messages, err := u.repository.LoadByMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	return messages, nil
}
