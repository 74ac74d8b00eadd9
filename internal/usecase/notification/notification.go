package usecase_notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cineverse/core/internal/model"
)

// RecencyWindow splits the feed: anything younger lands in the "new" bucket.
const RecencyWindow = time.Hour

var (
	ErrFailedToLoad        = errors.New("failed to load notifications")
	ErrFailedToAcknowledge = errors.New("failed to acknowledge notifications")
	ErrFailedToStore       = errors.New("failed to store notifications")
	ErrFailedToDelete      = errors.New("failed to delete notifications")
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	LoadByUser(ctx context.Context, email string) ([]model.Notification, error)
	MarkAllRead(ctx context.Context, email string) error
	StoreBatch(ctx context.Context, ns []model.Notification) error
	DeleteByUser(ctx context.Context, email string) error
}

//go:generate mockery --name=MoviePosters --output=./mocks/movieposters --filename=movieposters.go
type MoviePosters interface {
	LoadByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Movie, error)
}

type Usecase struct {
	repository Repository
	movies     MoviePosters

	now func() time.Time
}

type UsecaseOption func(*Usecase)

func WithClock(now func() time.Time) UsecaseOption {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	repository Repository,
	movies MoviePosters,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		repository: repository,
		movies:     movies,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Feed returns the user's notifications partitioned into "new" and
// "earlier" buckets, order preserved, with posters for every referenced
// movie resolved by one batched, de-duplicated lookup.
func (u *Usecase) Feed(ctx context.Context, email string) (model.Feed, error) {
	rows, err := u.repository.LoadByUser(ctx, email)
	if err != nil {
		return model.Feed{}, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	posters, err := u.resolvePosters(ctx, rows)
	if err != nil {
		return model.Feed{}, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	return buildFeed(rows, posters, u.now()), nil
}

func (u *Usecase) resolvePosters(ctx context.Context, rows []model.Notification) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, n := range rows {
		for _, ref := range []*uuid.UUID{n.MovieID, n.MovieID2} {
			if ref != nil && !seen[*ref] {
				seen[*ref] = true
				ids = append(ids, *ref)
			}
		}
	}
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	movies, err := u.movies.LoadByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	posters := make(map[uuid.UUID]string, len(movies))
	for _, m := range movies {
		posters[m.ID] = m.PosterURL
	}
	return posters, nil
}

func buildFeed(rows []model.Notification, posters map[uuid.UUID]string, now time.Time) model.Feed {
	feed := model.Feed{
		New:     []model.FeedItem{},
		Earlier: []model.FeedItem{},
	}

	for _, n := range rows {
		item := model.FeedItem{
			Notification: n,
			Display:      n.Type.Display(),
		}
		if n.MovieID != nil {
			item.PosterURL = posters[*n.MovieID]
		}
		if n.MovieID2 != nil {
			item.PosterURL2 = posters[*n.MovieID2]
		}

		if now.Sub(n.CreatedAt) < RecencyWindow {
			feed.New = append(feed.New, item)
		} else {
			feed.Earlier = append(feed.Earlier, item)
		}
	}

	return feed
}

// Acknowledge flips every unread notification of the user to read. It is an
// explicit command decoupled from Feed: idempotent, safe to issue on every
// page activation.
func (u *Usecase) Acknowledge(ctx context.Context, email string) error {
	if err := u.repository.MarkAllRead(ctx, email); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToAcknowledge, err)
	}
	return nil
}

// Broadcast fans one notification out to every recipient in a single
// batched insert.
func (u *Usecase) Broadcast(ctx context.Context, n model.Notification, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}

	ns := make([]model.Notification, len(recipients))
	for i, email := range recipients {
		ns[i] = n
		ns[i].ID = uuid.New()
		ns[i].Email = email
		ns[i].Status = model.NotificationUnread
		ns[i].CreatedAt = u.now()
	}

	if err := u.repository.StoreBatch(ctx, ns); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}
	return nil
}

func (u *Usecase) DeleteAll(ctx context.Context, email string) error {
	if err := u.repository.DeleteByUser(ctx, email); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDelete, err)
	}
	return nil
}
