package infra_postgres_watchlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cineverse/core/internal/model"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type entryDTO struct {
	Email    string    `db:"email"`
	MovieID  uuid.UUID `db:"movie_id"`
	ListName string    `db:"list_name"`
}

func (d *Driver) LoadByUser(ctx context.Context, email string) ([]model.WatchlistEntry, error) {
	query := `
		SELECT email, movie_id, list_name
		FROM watchlist
		WHERE email = $1
	`

	var dtos []entryDTO
	if err := d.db.SelectContext(ctx, &dtos, query, email); err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}

	entries := make([]model.WatchlistEntry, len(dtos))
	for i, dto := range dtos {
		entries[i] = model.WatchlistEntry{
			Email:    dto.Email,
			MovieID:  dto.MovieID,
			ListName: dto.ListName,
		}
	}
	return entries, nil
}

func (d *Driver) Add(ctx context.Context, e model.WatchlistEntry) error {
	query := `
		INSERT INTO watchlist (email, movie_id, list_name)
		VALUES (:email, :movie_id, :list_name)
		ON CONFLICT (email, movie_id, list_name) DO NOTHING
	`

	_, err := d.db.NamedExecContext(ctx, query, entryDTO{
		Email:    e.Email,
		MovieID:  e.MovieID,
		ListName: e.ListName,
	})
	if err != nil {
		return fmt.Errorf("failed to add watchlist entry: %w", err)
	}
	return nil
}

func (d *Driver) Remove(ctx context.Context, e model.WatchlistEntry) error {
	query := `DELETE FROM watchlist WHERE email = $1 AND movie_id = $2 AND list_name = $3`

	if _, err := d.db.ExecContext(ctx, query, e.Email, e.MovieID, e.ListName); err != nil {
		return fmt.Errorf("failed to remove watchlist entry: %w", err)
	}
	return nil
}
