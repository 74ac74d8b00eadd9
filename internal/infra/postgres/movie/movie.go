package infra_postgres_movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cineverse/core/internal/model"
	usecase_movie "github.com/cineverse/core/internal/usecase/movie"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Store writes the movie row and its cast and streaming-link children in
// one transaction: either the whole title lands or nothing does.
func (r *Repository) Store(ctx context.Context, m model.Movie) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	movieDB := FromDomain(m)

	query := `
		INSERT INTO movies (id, title, year, duration, description, poster_url, trailer_url, language, kind, genres, ai_summary)
		VALUES (:id, :title, :year, :duration, :description, :poster_url, :trailer_url, :language, :kind, :genres, :ai_summary)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			duration = EXCLUDED.duration,
			description = EXCLUDED.description,
			poster_url = EXCLUDED.poster_url,
			trailer_url = EXCLUDED.trailer_url,
			language = EXCLUDED.language,
			kind = EXCLUDED.kind,
			genres = EXCLUDED.genres
	`

	if _, err := tx.NamedExecContext(ctx, query, movieDB); err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}

	if err := r.storeChildren(ctx, tx, m); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) storeChildren(ctx context.Context, tx *sqlx.Tx, m model.Movie) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM cast_in_movies WHERE movie_id = $1`, m.ID); err != nil {
		return fmt.Errorf("failed to clear cast: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM url_in_movies WHERE movie_id = $1`, m.ID); err != nil {
		return fmt.Errorf("failed to clear streaming links: %w", err)
	}

	if len(m.Cast) > 0 {
		rows := make([]CastDB, len(m.Cast))
		for i, c := range m.Cast {
			rows[i] = CastDB{MovieID: m.ID, Name: c.Name, Role: c.Role, PhotoURL: c.PhotoURL}
		}
		query := `
			INSERT INTO cast_in_movies (movie_id, name, role, photo_url)
			VALUES (:movie_id, :name, :role, :photo_url)
		`
		if _, err := tx.NamedExecContext(ctx, query, rows); err != nil {
			return fmt.Errorf("failed to store cast: %w", err)
		}
	}

	if len(m.OTTLinks) > 0 {
		rows := make([]OTTLinkDB, len(m.OTTLinks))
		for i, l := range m.OTTLinks {
			rows[i] = OTTLinkDB{MovieID: m.ID, Platform: l.Platform, URL: l.URL}
		}
		query := `
			INSERT INTO url_in_movies (movie_id, platform, url)
			VALUES (:movie_id, :platform, :url)
		`
		if _, err := tx.NamedExecContext(ctx, query, rows); err != nil {
			return fmt.Errorf("failed to store streaming links: %w", err)
		}
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, m model.Movie) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	movieDB := FromDomain(m)
	query := `
		UPDATE movies
		SET title = :title, year = :year, duration = :duration, description = :description,
			poster_url = :poster_url, trailer_url = :trailer_url, language = :language,
			kind = :kind, genres = :genres
		WHERE id = :id
	`

	result, err := tx.NamedExecContext(ctx, query, movieDB)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_movie.ErrMovieNotFound
	}

	if err := r.storeChildren(ctx, tx, m); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) Load(ctx context.Context) ([]*model.Movie, error) {
	query := `
		SELECT id, title, year, duration, description, poster_url, trailer_url, language, kind, genres, ai_summary
		FROM movies
		ORDER BY title
	`

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query); err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	return r.toDomainList(moviesDB), nil
}

func (r *Repository) LoadByID(ctx context.Context, id uuid.UUID) (model.Movie, error) {
	query := `
		SELECT id, title, year, duration, description, poster_url, trailer_url, language, kind, genres, ai_summary
		FROM movies
		WHERE id = $1
	`

	var movieDB MovieDB
	if err := r.db.GetContext(ctx, &movieDB, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, usecase_movie.ErrMovieNotFound
		}
		return model.Movie{}, fmt.Errorf("failed to load movie by id: %w", err)
	}

	m := movieDB.ToDomain()
	if err := r.loadChildren(ctx, &m); err != nil {
		return model.Movie{}, err
	}

	return m, nil
}

func (r *Repository) loadChildren(ctx context.Context, m *model.Movie) error {
	var castDB []CastDB
	castQuery := `
		SELECT movie_id, name, role, photo_url
		FROM cast_in_movies
		WHERE movie_id = $1
	`
	if err := r.db.SelectContext(ctx, &castDB, castQuery, m.ID); err != nil {
		return fmt.Errorf("failed to load cast: %w", err)
	}
	for _, c := range castDB {
		m.Cast = append(m.Cast, model.CastMember{Name: c.Name, Role: c.Role, PhotoURL: c.PhotoURL})
	}

	var linksDB []OTTLinkDB
	linksQuery := `
		SELECT movie_id, platform, url
		FROM url_in_movies
		WHERE movie_id = $1
	`
	if err := r.db.SelectContext(ctx, &linksDB, linksQuery, m.ID); err != nil {
		return fmt.Errorf("failed to load streaming links: %w", err)
	}
	for _, l := range linksDB {
		m.OTTLinks = append(m.OTTLinks, model.OTTLink{Platform: l.Platform, URL: l.URL})
	}

	return nil
}

func (r *Repository) LoadByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Movie, error) {
	if len(ids) == 0 {
		return []*model.Movie{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, title, year, duration, description, poster_url, trailer_url, language, kind, genres, ai_summary
		FROM movies
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	query = r.db.Rebind(query)
	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query movies by ids: %w", err)
	}

	return r.toDomainList(moviesDB), nil
}

func (r *Repository) Search(ctx context.Context, title string) ([]*model.Movie, error) {
	query := `
		SELECT id, title, year, duration, description, poster_url, trailer_url, language, kind, genres, ai_summary
		FROM movies
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY title
	`

	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, title); err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	return r.toDomainList(moviesDB), nil
}

func (r *Repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_movie.ErrMovieNotFound
	}

	return nil
}

func (r *Repository) SetAISummary(ctx context.Context, id uuid.UUID, text string) error {
	query := `UPDATE movies SET ai_summary = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, text)
	if err != nil {
		return fmt.Errorf("failed to set review digest: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_movie.ErrMovieNotFound
	}

	return nil
}

func (r *Repository) toDomainList(moviesDB []MovieDB) []*model.Movie {
	movies := make([]*model.Movie, len(moviesDB))
	for i, movieDB := range moviesDB {
		domainMovie := movieDB.ToDomain()
		movies[i] = &domainMovie
	}
	return movies
}
