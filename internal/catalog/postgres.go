package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// LoadPostgres bulk-loads the catalog from the users / movies / movie_genres /
// ratings tables into the same in-memory index the file loader produces. The
// pipeline itself never touches the database; Postgres is only an alternative
// ingestion path.
func LoadPostgres(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) (*Index, error) {
	idx := NewIndex()

	userCount, err := loadUsers(ctx, pool, idx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	movieCount, err := loadMovies(ctx, pool, idx)
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}

	ratingCount, err := loadRatings(ctx, pool, idx)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}

	if err := idx.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize index: %w", err)
	}

	log.Info().
		Int("users", userCount).
		Int("movies", movieCount).
		Int("ratings", ratingCount).
		Msg("catalog loaded from postgres")
	return idx, nil
}

func loadUsers(ctx context.Context, pool *pgxpool.Pool, idx *Index) (int, error) {
	rows, err := pool.Query(ctx,
		`SELECT id, gender, age, occupation, zipcode FROM users`)
	if err != nil {
		return 0, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Gender, &u.Age, &u.Occupation, &u.Zipcode); err != nil {
			return 0, fmt.Errorf("scan user: %w", err)
		}
		idx.AddUser(u)
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate users: %w", err)
	}
	return count, nil
}

func loadMovies(ctx context.Context, pool *pgxpool.Pool, idx *Index) (int, error) {
	rows, err := pool.Query(ctx,
		`SELECT m.id, m.title, COALESCE(m.year, 0),
		        COALESCE(array_agg(g.genre) FILTER (WHERE g.genre IS NOT NULL), '{}')
		 FROM movies m
		 LEFT JOIN movie_genres g ON g.movie_id = m.id
		 GROUP BY m.id, m.title, m.year`)
	if err != nil {
		return 0, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var m Movie
		var genres []string
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &genres); err != nil {
			return 0, fmt.Errorf("scan movie: %w", err)
		}
		for _, g := range genres {
			m.Genres = append(m.Genres, Genre(g))
		}
		idx.AddMovie(m)
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate movies: %w", err)
	}
	return count, nil
}

func loadRatings(ctx context.Context, pool *pgxpool.Pool, idx *Index) (int, error) {
	rows, err := pool.Query(ctx,
		`SELECT user_id, movie_id, rating, rated_at FROM ratings`)
	if err != nil {
		return 0, fmt.Errorf("query ratings: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var r Rating
		if err := rows.Scan(&r.UserID, &r.MovieID, &r.Rating, &r.Timestamp); err != nil {
			return 0, fmt.Errorf("scan rating: %w", err)
		}
		idx.AddRating(r)
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate ratings: %w", err)
	}
	return count, nil
}
