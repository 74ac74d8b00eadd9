package usecase_watchlist

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/cineverse/core/internal/model"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrFailedToLoad   = errors.New("failed to load watchlist")
	ErrFailedToStore  = errors.New("failed to store watchlist entry")
	ErrFailedToDelete = errors.New("failed to delete watchlist entry")
)

//go:generate mockery --name=Repository --output=./mocks/repository --filename=repository.go
type Repository interface {
	LoadByUser(ctx context.Context, email string) ([]model.WatchlistEntry, error)
	Add(ctx context.Context, e model.WatchlistEntry) error
	Remove(ctx context.Context, e model.WatchlistEntry) error
}

//go:generate mockery --name=MovieHydrator --output=./mocks/moviehydrator --filename=moviehydrator.go
type MovieHydrator interface {
	LoadByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Movie, error)
}

//go:generate mockery --name=ReviewSource --output=./mocks/reviewsource --filename=reviewsource.go
type ReviewSource interface {
	LoadByMovie(ctx context.Context, movieID uuid.UUID) ([]model.Review, error)
}

type Summarizer interface {
	Summarize(reviews []model.Review) model.RatingSummary
}

// CollectionRegistry remembers collection names a user created before
// adding any movie, so an empty collection survives refetches.
//
//go:generate mockery --name=CollectionRegistry --output=./mocks/registry --filename=registry.go
type CollectionRegistry interface {
	Add(ctx context.Context, email, name string) error
	Remove(ctx context.Context, email, name string) error
	Members(ctx context.Context, email string) ([]string, error)
}

type Usecase struct {
	repository Repository
	movies     MovieHydrator
	reviews    ReviewSource
	summarizer Summarizer
	registry   CollectionRegistry
}

func New(
	repository Repository,
	movies MovieHydrator,
	reviews ReviewSource,
	summarizer Summarizer,
	registry CollectionRegistry,
) *Usecase {
	return &Usecase{
		repository: repository,
		movies:     movies,
		reviews:    reviews,
		summarizer: summarizer,
		registry:   registry,
	}
}

// Collections groups the user's watchlist rows by list name, hydrates each
// movie with its rating summary, and merges in registered-but-empty
// collections. Entries on the "Default" list never appear.
func (u *Usecase) Collections(ctx context.Context, email string) ([]model.Collection, error) {
	entries, err := u.repository.LoadByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	byList := make(map[string][]uuid.UUID)
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, e := range entries {
		if e.ListName == model.DefaultListName {
			continue
		}
		byList[e.ListName] = append(byList[e.ListName], e.MovieID)
		if !seen[e.MovieID] {
			seen[e.MovieID] = true
			ids = append(ids, e.MovieID)
		}
	}

	hydrated, err := u.hydrate(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}

	empty, err := u.registry.Members(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoad, err)
	}
	for _, name := range empty {
		if _, ok := byList[name]; !ok && name != model.DefaultListName {
			byList[name] = nil
		}
	}

	names := make([]string, 0, len(byList))
	for name := range byList {
		names = append(names, name)
	}
	sort.Strings(names)

	collections := make([]model.Collection, 0, len(names))
	for _, name := range names {
		movies := make([]model.CollectionMovie, 0, len(byList[name]))
		for _, id := range byList[name] {
			if m, ok := hydrated[id]; ok {
				movies = append(movies, m)
			}
		}
		sort.Slice(movies, func(i, j int) bool {
			return movies[i].Title < movies[j].Title
		})
		collections = append(collections, model.Collection{Name: name, Movies: movies})
	}

	return collections, nil
}

func (u *Usecase) hydrate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.CollectionMovie, error) {
	hydrated := make(map[uuid.UUID]model.CollectionMovie, len(ids))
	if len(ids) == 0 {
		return hydrated, nil
	}

	movies, err := u.movies.LoadByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, m := range movies {
		reviews, err := u.reviews.LoadByMovie(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		hydrated[m.ID] = model.CollectionMovie{
			Movie:   *m,
			Summary: u.summarizer.Summarize(reviews),
		}
	}

	return hydrated, nil
}

// CreateCollection registers an empty named collection. It shows up in
// Collections with zero movies until populated.
func (u *Usecase) CreateCollection(ctx context.Context, email, name string) error {
	if name == "" || name == model.DefaultListName {
		return fmt.Errorf("%w: invalid collection name %q", ErrInvalidInput, name)
	}
	if err := u.registry.Add(ctx, email, name); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}
	return nil
}

// AddEntry persists the tag and, once the list holds a movie, drops the
// empty-collection marker. Write errors propagate so the caller can revert
// any optimistic state.
func (u *Usecase) AddEntry(ctx context.Context, e model.WatchlistEntry) error {
	if e.ListName == "" {
		e.ListName = model.DefaultListName
	}

	if err := u.repository.Add(ctx, e); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToStore, err)
	}

	if e.ListName != model.DefaultListName {
		if err := u.registry.Remove(ctx, e.Email, e.ListName); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToStore, err)
		}
	}
	return nil
}

func (u *Usecase) RemoveEntry(ctx context.Context, e model.WatchlistEntry) error {
	if e.ListName == "" {
		e.ListName = model.DefaultListName
	}

	if err := u.repository.Remove(ctx, e); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToDelete, err)
	}
	return nil
}
