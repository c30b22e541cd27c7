package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/s0up4200/tmdbkit/tmdb"
)

// jsonColumn stores a nested value as JSON text
type jsonColumn[T any] struct {
	V T
}

func (c jsonColumn[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(c.V)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *jsonColumn[T]) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		var zero T
		c.V = zero
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("incompatible type %T for JSON column", src)
	}
	return json.Unmarshal(data, &c.V)
}

// movieRow is the movies table layout
type movieRow struct {
	ID                  int                         `db:"id"`
	Title               string                      `db:"title"`
	OriginalTitle       string                      `db:"original_title"`
	OriginalLanguage    string                      `db:"original_language"`
	Overview            string                      `db:"overview"`
	Tagline             string                      `db:"tagline"`
	Status              string                      `db:"status"`
	Homepage            string                      `db:"homepage"`
	IMDbID              string                      `db:"imdb_id"`
	ReleaseDate         string                      `db:"release_date"`
	Runtime             int                         `db:"runtime"`
	Budget              int64                       `db:"budget"`
	Revenue             int64                       `db:"revenue"`
	Adult               bool                        `db:"adult"`
	Video               bool                        `db:"video"`
	Popularity          float64                     `db:"popularity"`
	VoteAverage         float64                     `db:"vote_average"`
	VoteCount           int                         `db:"vote_count"`
	PosterPath          string                      `db:"poster_path"`
	BackdropPath        string                      `db:"backdrop_path"`
	Genres              jsonColumn[[]tmdb.Genre]    `db:"genres"`
	GenreIDs            jsonColumn[[]int]           `db:"genre_ids"`
	Credits             jsonColumn[*tmdb.Credits]   `db:"credits"`
	ProductionCompanies jsonColumn[[]tmdb.Company]  `db:"production_companies"`
	SpokenLanguages     jsonColumn[[]tmdb.Language] `db:"spoken_languages"`
	UpdatedAt           int64                       `db:"updated_at"`
}

const movieColumns = `id, title, original_title, original_language, overview, tagline, status,
	homepage, imdb_id, release_date, runtime, budget, revenue, adult, video, popularity,
	vote_average, vote_count, poster_path, backdrop_path, genres, genre_ids, credits,
	production_companies, spoken_languages, updated_at`

func toRow(m tmdb.Movie) movieRow {
	return movieRow{
		ID:                  m.ID,
		Title:               m.Title,
		OriginalTitle:       m.OriginalTitle,
		OriginalLanguage:    m.OriginalLanguage,
		Overview:            m.Overview,
		Tagline:             m.Tagline,
		Status:              m.Status,
		Homepage:            m.Homepage,
		IMDbID:              m.IMDbID,
		ReleaseDate:         m.ReleaseDate,
		Runtime:             m.Runtime,
		Budget:              m.Budget,
		Revenue:             m.Revenue,
		Adult:               m.Adult,
		Video:               m.Video,
		Popularity:          m.Popularity,
		VoteAverage:         m.VoteAverage,
		VoteCount:           m.VoteCount,
		PosterPath:          m.PosterPath,
		BackdropPath:        m.BackdropPath,
		Genres:              jsonColumn[[]tmdb.Genre]{m.Genres},
		GenreIDs:            jsonColumn[[]int]{m.GenreIDs},
		Credits:             jsonColumn[*tmdb.Credits]{m.Credits},
		ProductionCompanies: jsonColumn[[]tmdb.Company]{m.ProductionCompanies},
		SpokenLanguages:     jsonColumn[[]tmdb.Language]{m.SpokenLanguages},
		UpdatedAt:           time.Now().Unix(),
	}
}

func (r movieRow) movie() tmdb.Movie {
	return tmdb.Movie{
		ID:                  r.ID,
		Title:               r.Title,
		OriginalTitle:       r.OriginalTitle,
		OriginalLanguage:    r.OriginalLanguage,
		Overview:            r.Overview,
		Tagline:             r.Tagline,
		Status:              r.Status,
		Homepage:            r.Homepage,
		IMDbID:              r.IMDbID,
		ReleaseDate:         r.ReleaseDate,
		Runtime:             r.Runtime,
		Budget:              r.Budget,
		Revenue:             r.Revenue,
		Adult:               r.Adult,
		Video:               r.Video,
		Popularity:          r.Popularity,
		VoteAverage:         r.VoteAverage,
		VoteCount:           r.VoteCount,
		PosterPath:          r.PosterPath,
		BackdropPath:        r.BackdropPath,
		Genres:              r.Genres.V,
		GenreIDs:            r.GenreIDs.V,
		Credits:             r.Credits.V,
		ProductionCompanies: r.ProductionCompanies.V,
		SpokenLanguages:     r.SpokenLanguages.V,
	}
}

// GetMovie returns the cached movie with the given id
func (s *Store) GetMovie(ctx context.Context, id int) (*tmdb.Movie, error) {
	var row movieRow
	err := s.db.GetContext(ctx, &row, "SELECT "+movieColumns+" FROM movies WHERE id = ? LIMIT 1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	m := row.movie()
	return &m, nil
}

// ListMovies returns every cached movie ordered by title
func (s *Store) ListMovies(ctx context.Context) ([]tmdb.Movie, error) {
	var rows []movieRow
	if err := s.db.SelectContext(ctx, &rows, "SELECT "+movieColumns+" FROM movies ORDER BY title, id"); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	movies := make([]tmdb.Movie, 0, len(rows))
	for _, r := range rows {
		movies = append(movies, r.movie())
	}
	return movies, nil
}

// InsertMovie stores a movie, replacing any row with the same id
func (s *Store) InsertMovie(ctx context.Context, m tmdb.Movie) error {
	_, err := s.db.NamedExecContext(ctx, `
	  INSERT INTO movies (`+movieColumns+`)
	  VALUES (:id, :title, :original_title, :original_language, :overview, :tagline, :status,
	    :homepage, :imdb_id, :release_date, :runtime, :budget, :revenue, :adult, :video, :popularity,
	    :vote_average, :vote_count, :poster_path, :backdrop_path, :genres, :genre_ids, :credits,
	    :production_companies, :spoken_languages, :updated_at)
	  ON CONFLICT (id) DO UPDATE SET
	    title = excluded.title,
	    original_title = excluded.original_title,
	    original_language = excluded.original_language,
	    overview = excluded.overview,
	    tagline = excluded.tagline,
	    status = excluded.status,
	    homepage = excluded.homepage,
	    imdb_id = excluded.imdb_id,
	    release_date = excluded.release_date,
	    runtime = excluded.runtime,
	    budget = excluded.budget,
	    revenue = excluded.revenue,
	    adult = excluded.adult,
	    video = excluded.video,
	    popularity = excluded.popularity,
	    vote_average = excluded.vote_average,
	    vote_count = excluded.vote_count,
	    poster_path = excluded.poster_path,
	    backdrop_path = excluded.backdrop_path,
	    genres = excluded.genres,
	    genre_ids = excluded.genre_ids,
	    credits = excluded.credits,
	    production_companies = excluded.production_companies,
	    spoken_languages = excluded.spoken_languages,
	    updated_at = excluded.updated_at`,
		toRow(m))
	if err != nil {
		return fmt.Errorf("failed to insert movie %d: %w", m.ID, err)
	}

	s.logger.Debug().Int("movie_id", m.ID).Str("title", m.Title).Msg("Cached movie")
	s.notify(m)
	return nil
}

// UpdateMovie overwrites an existing movie. ErrNotFound is returned when no
// row has the movie's id.
func (s *Store) UpdateMovie(ctx context.Context, m tmdb.Movie) error {
	res, err := s.db.NamedExecContext(ctx, `
	  UPDATE movies SET
	    title = :title,
	    original_title = :original_title,
	    original_language = :original_language,
	    overview = :overview,
	    tagline = :tagline,
	    status = :status,
	    homepage = :homepage,
	    imdb_id = :imdb_id,
	    release_date = :release_date,
	    runtime = :runtime,
	    budget = :budget,
	    revenue = :revenue,
	    adult = :adult,
	    video = :video,
	    popularity = :popularity,
	    vote_average = :vote_average,
	    vote_count = :vote_count,
	    poster_path = :poster_path,
	    backdrop_path = :backdrop_path,
	    genres = :genres,
	    genre_ids = :genre_ids,
	    credits = :credits,
	    production_companies = :production_companies,
	    spoken_languages = :spoken_languages,
	    updated_at = :updated_at
	  WHERE id = :id`,
		toRow(m))
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", m.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", m.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("movie %d: %w", m.ID, ErrNotFound)
	}

	s.notify(m)
	return nil
}

// DeleteMovie removes a movie. ErrNotFound is returned when it was not cached.
func (s *Store) DeleteMovie(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return nil
}
