package infra_postgres_notification

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

type notificationDTO struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	Type      string     `db:"type"`
	Text      string     `db:"text"`
	MovieID   *uuid.UUID `db:"movie_id"`
	MovieID2  *uuid.UUID `db:"movie_id_2"`
	Status    string     `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
}

func (d notificationDTO) toDomain() model.Notification {
	return model.Notification{
		ID:        d.ID,
		Email:     d.Email,
		Type:      model.NotificationType(d.Type),
		Text:      d.Text,
		MovieID:   d.MovieID,
		MovieID2:  d.MovieID2,
		Status:    model.NotificationStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

func fromDomain(n model.Notification) notificationDTO {
	return notificationDTO{
		ID:        n.ID,
		Email:     n.Email,
		Type:      string(n.Type),
		Text:      n.Text,
		MovieID:   n.MovieID,
		MovieID2:  n.MovieID2,
		Status:    string(n.Status),
		CreatedAt: n.CreatedAt,
	}
}

func (d *Driver) LoadByUser(ctx context.Context, email string) ([]model.Notification, error) {
	query := `
		SELECT id, email, type, text, movie_id, movie_id_2, status, created_at
		FROM notification
		WHERE email = $1
		ORDER BY created_at DESC
	`

	var dtos []notificationDTO
	if err := d.db.SelectContext(ctx, &dtos, query, email); err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}

	ns := make([]model.Notification, len(dtos))
	for i, dto := range dtos {
		ns[i] = dto.toDomain()
	}
	return ns, nil
}

// MarkAllRead is idempotent: rows already read match nothing.
func (d *Driver) MarkAllRead(ctx context.Context, email string) error {
	query := `UPDATE notification SET status = 'read' WHERE email = $1 AND status = 'unread'`

	if _, err := d.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (d *Driver) StoreBatch(ctx context.Context, ns []model.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	dtos := make([]notificationDTO, len(ns))
	for i, n := range ns {
		dtos[i] = fromDomain(n)
	}

	query := `
		INSERT INTO notification (id, email, type, text, movie_id, movie_id_2, status, created_at)
		VALUES (:id, :email, :type, :text, :movie_id, :movie_id_2, :status, :created_at)
	`

	if _, err := d.db.NamedExecContext(ctx, query, dtos); err != nil {
		return fmt.Errorf("failed to store notifications: %w", err)
	}
	return nil
}

func (d *Driver) DeleteByUser(ctx context.Context, email string) error {
	query := `DELETE FROM notification WHERE email = $1`

	if _, err := d.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}
