package infra_postgres_analytics

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/cineverse/core/internal/model"
)

// Driver reads the user_analytics view. Counts and the review score are
// computed inside the database.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type analyticsDTO struct {
	Email         string  `db:"email"`
	Name          string  `db:"name"`
	TotalReviews  int     `db:"total_reviews"`
	Masterpiece   int     `db:"masterpiece"`
	Amazing       int     `db:"amazing"`
	OneTimeWatch  int     `db:"one_time"`
	Unbearable    int     `db:"unbearable"`
	LikesGiven    int     `db:"likes_given"`
	LikesReceived int     `db:"likes_received"`
	ReviewScore   float64 `db:"review_score"`
}

func (d *Driver) Load(ctx context.Context) ([]model.UserAnalytics, error) {
	query := `
		SELECT email, name, total_reviews, masterpiece, amazing, one_time, unbearable,
			likes_given, likes_received, review_score
		FROM user_analytics
	`

	var dtos []analyticsDTO
	if err := d.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to load user analytics: %w", err)
	}

	rows := make([]model.UserAnalytics, len(dtos))
	for i, dto := range dtos {
		rows[i] = model.UserAnalytics{
			Email:         dto.Email,
			Name:          dto.Name,
			TotalReviews:  dto.TotalReviews,
			Masterpiece:   dto.Masterpiece,
			Amazing:       dto.Amazing,
			OneTimeWatch:  dto.OneTimeWatch,
			Unbearable:    dto.Unbearable,
			LikesGiven:    dto.LikesGiven,
			LikesReceived: dto.LikesReceived,
			ReviewScore:   dto.ReviewScore,
		}
	}
	return rows, nil
}
