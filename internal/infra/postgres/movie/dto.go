package infra_postgres_movie

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cineverse/core/internal/model"
)

type MovieDB struct {
	ID          uuid.UUID      `db:"id"`
	Title       string         `db:"title"`
	Year        int            `db:"year"`
	Duration    int            `db:"duration"`
	Description string         `db:"description"`
	PosterURL   string         `db:"poster_url"`
	TrailerURL  string         `db:"trailer_url"`
	Language    string         `db:"language"`
	Kind        string         `db:"kind"`
	Genres      pq.StringArray `db:"genres"`
	AISummary   sql.NullString `db:"ai_summary"`
}

type CastDB struct {
	MovieID  uuid.UUID `db:"movie_id"`
	Name     string    `db:"name"`
	Role     string    `db:"role"`
	PhotoURL string    `db:"photo_url"`
}

type OTTLinkDB struct {
	MovieID  uuid.UUID `db:"movie_id"`
	Platform string    `db:"platform"`
	URL      string    `db:"url"`
}

func (m *MovieDB) ToDomain() model.Movie {
	return model.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Year:        m.Year,
		Duration:    m.Duration,
		Description: m.Description,
		PosterURL:   m.PosterURL,
		TrailerURL:  m.TrailerURL,
		Language:    m.Language,
		Kind:        model.TitleKind(m.Kind),
		Genres:      []string(m.Genres),
		AISummary:   m.AISummary.String,
	}
}

func FromDomain(m model.Movie) MovieDB {
	return MovieDB{
		ID:          m.ID,
		Title:       m.Title,
		Year:        m.Year,
		Duration:    m.Duration,
		Description: m.Description,
		PosterURL:   m.PosterURL,
		TrailerURL:  m.TrailerURL,
		Language:    m.Language,
		Kind:        string(m.Kind),
		Genres:      pq.StringArray(m.Genres),
		AISummary:   sql.NullString{String: m.AISummary, Valid: m.AISummary != ""},
	}
}
