package infra_postgres_banner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cineverse/core/internal/model"
	usecase_banner "github.com/cineverse/core/internal/usecase/banner"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type bannerDTO struct {
	ID       uuid.UUID `db:"id"`
	MovieID  uuid.UUID `db:"movie_id"`
	ImageURL string    `db:"image_url"`
	Headline string    `db:"headline"`
}

func (d *Driver) Store(ctx context.Context, b model.Banner) error {
	query := `
		INSERT INTO bannerdetails (id, movie_id, image_url, headline)
		VALUES (:id, :movie_id, :image_url, :headline)
	`

	_, err := d.db.NamedExecContext(ctx, query, bannerDTO{
		ID:       b.ID,
		MovieID:  b.MovieID,
		ImageURL: b.ImageURL,
		Headline: b.Headline,
	})
	if err != nil {
		return fmt.Errorf("failed to store banner: %w", err)
	}
	return nil
}

func (d *Driver) Load(ctx context.Context) ([]model.Banner, error) {
	query := `SELECT id, movie_id, image_url, headline FROM bannerdetails`

	var dtos []bannerDTO
	if err := d.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to load banners: %w", err)
	}

	banners := make([]model.Banner, len(dtos))
	for i, dto := range dtos {
		banners[i] = model.Banner{
			ID:       dto.ID,
			MovieID:  dto.MovieID,
			ImageURL: dto.ImageURL,
			Headline: dto.Headline,
		}
	}
	return banners, nil
}

func (d *Driver) LoadByID(ctx context.Context, id uuid.UUID) (model.Banner, error) {
	query := `SELECT id, movie_id, image_url, headline FROM bannerdetails WHERE id = $1`

	var dto bannerDTO
	if err := d.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Banner{}, usecase_banner.ErrBannerNotFound
		}
		return model.Banner{}, fmt.Errorf("failed to load banner: %w", err)
	}

	return model.Banner{
		ID:       dto.ID,
		MovieID:  dto.MovieID,
		ImageURL: dto.ImageURL,
		Headline: dto.Headline,
	}, nil
}

func (d *Driver) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE bannerdetails SET image_url = $2 WHERE id = $1`

	result, err := d.db.ExecContext(ctx, query, id, url)
	if err != nil {
		return fmt.Errorf("failed to set banner image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_banner.ErrBannerNotFound
	}
	return nil
}

func (d *Driver) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bannerdetails WHERE id = $1`

	result, err := d.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_banner.ErrBannerNotFound
	}
	return nil
}
