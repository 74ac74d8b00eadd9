package infra_postgres_recommendation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cineverse/core/internal/model"
	usecase_recommendation "github.com/cineverse/core/internal/usecase/recommendation"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type recommendationDTO struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	MovieID1  uuid.UUID  `db:"movie_id_1"`
	MovieID2  *uuid.UUID `db:"movie_id_2"`
	Message   string     `db:"message"`
	Kind      string     `db:"kind"`
	Likes     int        `db:"likes"`
	CreatedAt time.Time  `db:"created_at"`
}

func (d recommendationDTO) toDomain() model.Recommendation {
	return model.Recommendation{
		ID:        d.ID,
		Email:     d.Email,
		MovieID1:  d.MovieID1,
		MovieID2:  d.MovieID2,
		Message:   d.Message,
		Kind:      model.RecommendationKind(d.Kind),
		Likes:     d.Likes,
		CreatedAt: d.CreatedAt,
	}
}

const recommendationColumns = `
	r.id, r.email, r.movie_id_1, r.movie_id_2, r.message, r.kind, r.created_at,
	(SELECT COUNT(*) FROM recommendation_likes l WHERE l.recommendation_id = r.id) AS likes
`

func (d *Driver) Store(ctx context.Context, r model.Recommendation) error {
	query := `
		INSERT INTO user_recommendation (id, email, movie_id_1, movie_id_2, message, kind, created_at)
		VALUES (:id, :email, :movie_id_1, :movie_id_2, :message, :kind, NOW())
	`

	_, err := d.db.NamedExecContext(ctx, query, recommendationDTO{
		ID:       r.ID,
		Email:    r.Email,
		MovieID1: r.MovieID1,
		MovieID2: r.MovieID2,
		Message:  r.Message,
		Kind:     string(r.Kind),
	})
	if err != nil {
		return fmt.Errorf("failed to store recommendation: %w", err)
	}
	return nil
}

func (d *Driver) Update(ctx context.Context, r model.Recommendation) error {
	query := `UPDATE user_recommendation SET message = $2 WHERE id = $1`

	result, err := d.db.ExecContext(ctx, query, r.ID, r.Message)
	if err != nil {
		return fmt.Errorf("failed to update recommendation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_recommendation.ErrNotFound
	}
	return nil
}

func (d *Driver) LoadByID(ctx context.Context, id uuid.UUID) (model.Recommendation, error) {
	query := `
		SELECT ` + recommendationColumns + `
		FROM user_recommendation r
		WHERE r.id = $1
	`

	var dto recommendationDTO
	if err := d.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Recommendation{}, usecase_recommendation.ErrNotFound
		}
		return model.Recommendation{}, fmt.Errorf("failed to load recommendation: %w", err)
	}

	return dto.toDomain(), nil
}

func (d *Driver) Load(ctx context.Context) ([]model.Recommendation, error) {
	query := `
		SELECT ` + recommendationColumns + `
		FROM user_recommendation r
		ORDER BY r.created_at DESC
	`
	return d.selectList(ctx, query)
}

func (d *Driver) LoadByUser(ctx context.Context, email string) ([]model.Recommendation, error) {
	query := `
		SELECT ` + recommendationColumns + `
		FROM user_recommendation r
		WHERE r.email = $1
		ORDER BY r.created_at DESC
	`
	return d.selectList(ctx, query, email)
}

func (d *Driver) selectList(ctx context.Context, query string, args ...any) ([]model.Recommendation, error) {
	var dtos []recommendationDTO
	if err := d.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load recommendations: %w", err)
	}

	recs := make([]model.Recommendation, len(dtos))
	for i, dto := range dtos {
		recs[i] = dto.toDomain()
	}
	return recs, nil
}

// Exists matches exactly on (email, movie pair, kind). A nil movieID2
// matches only rows with no second movie.
func (d *Driver) Exists(ctx context.Context, email string, movieID1 uuid.UUID, movieID2 *uuid.UUID, kind model.RecommendationKind) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM user_recommendation
			WHERE email = $1 AND movie_id_1 = $2 AND kind = $4
				AND ($3::uuid IS NULL AND movie_id_2 IS NULL OR movie_id_2 = $3)
		)
	`

	var exists bool
	if err := d.db.GetContext(ctx, &exists, query, email, movieID1, movieID2, string(kind)); err != nil {
		return false, fmt.Errorf("failed to check recommendation existence: %w", err)
	}
	return exists, nil
}

func (d *Driver) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM user_recommendation WHERE id = $1`

	result, err := d.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete recommendation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_recommendation.ErrNotFound
	}
	return nil
}

func (d *Driver) Like(ctx context.Context, recommendationID uuid.UUID, email string) error {
	query := `
		INSERT INTO recommendation_likes (recommendation_id, email)
		VALUES ($1, $2)
		ON CONFLICT (recommendation_id, email) DO NOTHING
	`

	if _, err := d.db.ExecContext(ctx, query, recommendationID, email); err != nil {
		return fmt.Errorf("failed to like recommendation: %w", err)
	}
	return nil
}

func (d *Driver) Unlike(ctx context.Context, recommendationID uuid.UUID, email string) error {
	query := `DELETE FROM recommendation_likes WHERE recommendation_id = $1 AND email = $2`

	if _, err := d.db.ExecContext(ctx, query, recommendationID, email); err != nil {
		return fmt.Errorf("failed to unlike recommendation: %w", err)
	}
	return nil
}
