package infra_postgres_discussion

import (
	"context"
	"fmt"
	"time"

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

type messageDTO struct {
	ID           uuid.UUID `db:"id"`
	MovieID      uuid.UUID `db:"movie_id"`
	Email        string    `db:"email"`
	Text         string    `db:"text"`
	CreatedAt    time.Time `db:"created_at"`
	SenderName   string    `db:"sender_name"`
	SenderAvatar string    `db:"sender_avatar"`
}

func (d *Driver) Store(ctx context.Context, m model.DiscussionMessage) error {
	query := `
		INSERT INTO discussion (id, movie_id, email, text, created_at)
		VALUES (:id, :movie_id, :email, :text, :created_at)
	`

	_, err := d.db.NamedExecContext(ctx, query, messageDTO{
		ID:        m.ID,
		MovieID:   m.MovieID,
		Email:     m.Email,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to store discussion message: %w", err)
	}
	return nil
}

// LoadByMovie returns the room history oldest first, sender display fields
// joined in.
func (d *Driver) LoadByMovie(ctx context.Context, movieID uuid.UUID) ([]model.DiscussionMessage, error) {
	query := `
		SELECT d.id, d.movie_id, d.email, d.text, d.created_at,
			u.name AS sender_name, u.avatar_url AS sender_avatar
		FROM discussion d
		JOIN users u ON u.email = d.email
		WHERE d.movie_id = $1
		ORDER BY d.created_at ASC
	`

	var dtos []messageDTO
	if err := d.db.SelectContext(ctx, &dtos, query, movieID); err != nil {
		return nil, fmt.Errorf("failed to load discussion messages: %w", err)
	}

	messages := make([]model.DiscussionMessage, len(dtos))
	for i, dto := range dtos {
		messages[i] = model.DiscussionMessage{
			ID:           dto.ID,
			MovieID:      dto.MovieID,
			Email:        dto.Email,
			Text:         dto.Text,
			CreatedAt:    dto.CreatedAt,
			SenderName:   dto.SenderName,
			SenderAvatar: dto.SenderAvatar,
		}
	}
	return messages, nil
}
