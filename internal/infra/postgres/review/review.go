package infra_postgres_review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cineverse/core/internal/model"
	usecase_review "github.com/cineverse/core/internal/usecase/review"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type reviewDTO struct {
	ID         uuid.UUID    `db:"id"`
	MovieID    uuid.UUID    `db:"movie_id"`
	Email      string       `db:"email"`
	Text       string       `db:"text"`
	CategoryID int          `db:"rating_category_id"`
	Likes      int          `db:"likes"`
	CreatedAt  sql.NullTime `db:"created_at"`
}

func (d reviewDTO) toDomain() model.Review {
	return model.Review{
		ID:         d.ID,
		MovieID:    d.MovieID,
		Email:      d.Email,
		Text:       d.Text,
		CategoryID: model.RatingCategoryID(d.CategoryID),
		Likes:      d.Likes,
		CreatedAt:  d.CreatedAt.Time,
	}
}

const reviewColumns = `
	r.id, r.movie_id, r.email, r.text, r.rating_category_id, r.created_at,
	(SELECT COUNT(*) FROM review_likes l WHERE l.review_id = r.id) AS likes
`

func (d *Driver) Store(ctx context.Context, r model.Review) error {
	query := `
		INSERT INTO reviews (id, movie_id, email, text, rating_category_id, created_at)
		VALUES (:id, :movie_id, :email, :text, :rating_category_id, NOW())
	`

	_, err := d.db.NamedExecContext(ctx, query, reviewDTO{
		ID:         r.ID,
		MovieID:    r.MovieID,
		Email:      r.Email,
		Text:       r.Text,
		CategoryID: int(r.CategoryID),
	})
	if err != nil {
		return fmt.Errorf("failed to store review: %w", err)
	}
	return nil
}

func (d *Driver) LoadByID(ctx context.Context, id uuid.UUID) (model.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews r
		WHERE r.id = $1
	`

	var dto reviewDTO
	if err := d.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, usecase_review.ErrReviewNotFound
		}
		return model.Review{}, fmt.Errorf("failed to load review: %w", err)
	}

	return dto.toDomain(), nil
}

func (d *Driver) LoadByMovie(ctx context.Context, movieID uuid.UUID) ([]model.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews r
		WHERE r.movie_id = $1
		ORDER BY r.created_at DESC
	`

	var dtos []reviewDTO
	if err := d.db.SelectContext(ctx, &dtos, query, movieID); err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	reviews := make([]model.Review, len(dtos))
	for i, dto := range dtos {
		reviews[i] = dto.toDomain()
	}
	return reviews, nil
}

func (d *Driver) LoadTopLikedByMovie(ctx context.Context, movieID uuid.UUID, limit int) ([]model.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews r
		WHERE r.movie_id = $1
		ORDER BY likes DESC, r.created_at DESC
		LIMIT $2
	`

	var dtos []reviewDTO
	if err := d.db.SelectContext(ctx, &dtos, query, movieID, limit); err != nil {
		return nil, fmt.Errorf("failed to load top liked reviews: %w", err)
	}

	reviews := make([]model.Review, len(dtos))
	for i, dto := range dtos {
		reviews[i] = dto.toDomain()
	}
	return reviews, nil
}

func (d *Driver) HasReview(ctx context.Context, movieID uuid.UUID, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE movie_id = $1 AND email = $2)`

	var exists bool
	if err := d.db.GetContext(ctx, &exists, query, movieID, email); err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return exists, nil
}

func (d *Driver) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := d.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_review.ErrReviewNotFound
	}
	return nil
}

func (d *Driver) Like(ctx context.Context, reviewID uuid.UUID, email string) error {
	query := `
		INSERT INTO review_likes (review_id, email)
		VALUES ($1, $2)
		ON CONFLICT (review_id, email) DO NOTHING
	`

	if _, err := d.db.ExecContext(ctx, query, reviewID, email); err != nil {
		return fmt.Errorf("failed to like review: %w", err)
	}
	return nil
}

func (d *Driver) Unlike(ctx context.Context, reviewID uuid.UUID, email string) error {
	query := `DELETE FROM review_likes WHERE review_id = $1 AND email = $2`

	if _, err := d.db.ExecContext(ctx, query, reviewID, email); err != nil {
		return fmt.Errorf("failed to unlike review: %w", err)
	}
	return nil
}
