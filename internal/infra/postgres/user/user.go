package infra_postgres_user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cineverse/core/internal/model"
	service_session_auth "github.com/cineverse/core/internal/service/auth/session"
	usecase_user "github.com/cineverse/core/internal/usecase/user"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type userDTO struct {
	Email        string `db:"email"`
	Name         string `db:"name"`
	AvatarURL    string `db:"avatar_url"`
	Gender       string `db:"gender"`
	Role         string `db:"role"`
	Verified     bool   `db:"verified"`
	PasswordHash []byte `db:"password_hash"`
}

func (d userDTO) toDomain() model.User {
	return model.User{
		Email:        d.Email,
		Name:         d.Name,
		AvatarURL:    d.AvatarURL,
		Gender:       d.Gender,
		Role:         model.Role(d.Role),
		Verified:     d.Verified,
		PasswordHash: d.PasswordHash,
	}
}

func (d *Driver) Store(ctx context.Context, u model.User) error {
	query := `
		INSERT INTO users (email, name, avatar_url, gender, role, verified, password_hash)
		VALUES (:email, :name, :avatar_url, :gender, :role, :verified, :password_hash)
	`

	_, err := d.db.NamedExecContext(ctx, query, userDTO{
		Email:        u.Email,
		Name:         u.Name,
		AvatarURL:    u.AvatarURL,
		Gender:       u.Gender,
		Role:         string(u.Role),
		Verified:     u.Verified,
		PasswordHash: u.PasswordHash,
	})
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return service_session_auth.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to store user: %w", err)
	}
	return nil
}

func (d *Driver) LoadByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
		SELECT email, name, avatar_url, gender, role, verified, password_hash
		FROM users
		WHERE email = $1
	`

	var dto userDTO
	if err := d.db.GetContext(ctx, &dto, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, usecase_user.ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("failed to load user: %w", err)
	}

	return dto.toDomain(), nil
}

func (d *Driver) LoadAllEmails(ctx context.Context) ([]string, error) {
	query := `SELECT email FROM users`

	var emails []string
	if err := d.db.SelectContext(ctx, &emails, query); err != nil {
		return nil, fmt.Errorf("failed to load emails: %w", err)
	}
	return emails, nil
}

func (d *Driver) UpdateProfile(ctx context.Context, u model.User) error {
	query := `
		UPDATE users
		SET name = $2, avatar_url = $3, gender = $4
		WHERE email = $1
	`

	result, err := d.db.ExecContext(ctx, query, u.Email, u.Name, u.AvatarURL, u.Gender)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_user.ErrUserNotFound
	}
	return nil
}

func (d *Driver) SetVerified(ctx context.Context, email string) error {
	query := `UPDATE users SET verified = TRUE WHERE email = $1`

	result, err := d.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to verify user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_user.ErrUserNotFound
	}
	return nil
}
