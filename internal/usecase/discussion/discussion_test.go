//go:build !integration
// +build !integration

package usecase_discussion

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cineverse/core/internal/model"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseDiscussionSuite struct {
	suite.Suite
}

type fakeRepository struct {
	stored   []model.DiscussionMessage
	storeErr error
}

func (f *fakeRepository) Store(ctx context.Context, m model.DiscussionMessage) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.stored = append(f.stored, m)
	return nil
}

func (f *fakeRepository) LoadByMovie(ctx context.Context, movieID uuid.UUID) ([]model.DiscussionMessage, error) {
	var out []model.DiscussionMessage
	for _, m := range f.stored {
		if m.MovieID == movieID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeBroadcaster struct {
	sent []model.DiscussionMessage
}

func (f *fakeBroadcaster) Broadcast(movieID uuid.UUID, m model.DiscussionMessage) {
	f.sent = append(f.sent, m)
}

func (suite *UsecaseDiscussionSuite) TestPost(t provider.T) {
	t.Parallel()

	session := model.SessionContext{
		Email:     "viewer@example.com",
		Role:      model.RoleUser,
		Name:      "Viewer",
		AvatarURL: "avatar/viewer.jpg",
	}

	t.Run("Should enrich from the session before persisting and broadcasting", func(t provider.T) {
		t.Parallel()
		repo := &fakeRepository{}
		hub := &fakeBroadcaster{}
		uc := New(repo, hub)
		movieID := uuid.New()

		m, err := uc.Post(context.Background(), session, movieID, "loved the soundtrack")

		assert.NoError(t, err)
		assert.Equal(t, "Viewer", m.SenderName)
		assert.Equal(t, "avatar/viewer.jpg", m.SenderAvatar)
		assert.Equal(t, session.Email, m.Email)

		// Persisted and broadcast payloads are the same enriched message.
		assert.Len(t, repo.stored, 1)
		assert.Len(t, hub.sent, 1)
		assert.Equal(t, repo.stored[0], hub.sent[0])
	})

	t.Run("Should reject an empty message", func(t provider.T) {
		t.Parallel()
		uc := New(&fakeRepository{}, &fakeBroadcaster{})

		_, err := uc.Post(context.Background(), session, uuid.New(), "")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Should not broadcast when the store fails", func(t provider.T) {
		t.Parallel()
		hub := &fakeBroadcaster{}
		uc := New(&fakeRepository{storeErr: errors.New("db down")}, hub)

		_, err := uc.Post(context.Background(), session, uuid.New(), "anyone watching tonight?")

		assert.ErrorIs(t, err, ErrFailedToStore)
		assert.Empty(t, hub.sent)
	})
}

func (suite *UsecaseDiscussionSuite) TestHistory(t provider.T) {
	t.Parallel()

	repo := &fakeRepository{}
	uc := New(repo, &fakeBroadcaster{})
	movieID := uuid.New()
	session := model.SessionContext{Email: "viewer@example.com", Name: "Viewer"}

	first, err := uc.Post(context.Background(), session, movieID, "first")
	assert.NoError(t, err)
	second, err := uc.Post(context.Background(), session, movieID, "second")
	assert.NoError(t, err)
	_, err = uc.Post(context.Background(), session, uuid.New(), "other movie")
	assert.NoError(t, err)

	history, err := uc.History(context.Background(), movieID)

	assert.NoError(t, err)
	assert.Equal(t, []model.DiscussionMessage{first, second}, history)
}

func TestDiscussionSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseDiscussionSuite))
}
