// Package seeds populates an empty Postgres catalog with a small synthetic
// MovieLens-shaped dataset for local development. The generator is seeded, so
// every run produces the same catalog.
package seeds

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const (
	seedUserCount   = 50
	seedMovieCount  = 100
	seedRatingCount = 2000
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         INTEGER PRIMARY KEY,
	gender     CHAR(1) NOT NULL,
	age        INTEGER NOT NULL,
	occupation INTEGER NOT NULL,
	zipcode    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS movies (
	id    INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	year  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS movie_genres (
	movie_id INTEGER NOT NULL REFERENCES movies(id),
	genre    TEXT NOT NULL,
	PRIMARY KEY (movie_id, genre)
);

CREATE TABLE IF NOT EXISTS ratings (
	user_id  INTEGER NOT NULL REFERENCES users(id),
	movie_id INTEGER NOT NULL REFERENCES movies(id),
	rating   DOUBLE PRECISION NOT NULL,
	rated_at BIGINT NOT NULL,
	PRIMARY KEY (user_id, movie_id)
);
`

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	log.Info().Msg("seed: truncating existing data")
	if _, err := pool.Exec(ctx, `TRUNCATE ratings, movie_genres, movies, users CASCADE`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Info().Msg("seed: inserting users")
	if err := seedUsers(ctx, pool, rng, seedUserCount); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Info().Msg("seed: inserting movies")
	if err := seedMovies(ctx, pool, rng, seedMovieCount); err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}

	log.Info().Msg("seed: inserting ratings")
	if err := seedRatings(ctx, pool, rng, seedRatingCount); err != nil {
		return fmt.Errorf("seed ratings: %w", err)
	}

	log.Info().Msg("seed: complete")
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	// MovieLens age buckets.
	ages := []int{1, 18, 25, 35, 45, 50, 56}

	rows := []string{}
	args := []any{}
	for i := 1; i <= n; i++ {
		gender := "M"
		if rng.Float64() < 0.3 {
			gender = "F"
		}
		age := ages[rng.Intn(len(ages))]
		occupation := rng.Intn(21)
		zipcode := fmt.Sprintf("%05d", rng.Intn(100000))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
		args = append(args, i, gender, age, occupation, zipcode)
	}

	query := "INSERT INTO users (id, gender, age, occupation, zipcode) VALUES " + strings.Join(rows, ", ")
	_, err := pool.Exec(ctx, query, args...)
	return err
}

var seedGenres = []string{"Action", "Comedy", "Drama", "Thriller", "Sci-Fi", "Romance", "Horror", "Animation"}

func seedMovies(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	movieRows := []string{}
	movieArgs := []any{}
	genreRows := []string{}
	genreArgs := []any{}

	for i := 1; i <= n; i++ {
		year := 1960 + rng.Intn(41)
		title := fmt.Sprintf("Seed Movie %d (%d)", i, year)

		base := len(movieArgs)
		movieRows = append(movieRows, fmt.Sprintf("($%d, $%d, $%d)", base+1, base+2, base+3))
		movieArgs = append(movieArgs, i, title, year)

		// One to three genres per movie.
		count := 1 + rng.Intn(3)
		offset := rng.Intn(len(seedGenres))
		for j := 0; j < count; j++ {
			genre := seedGenres[(offset+j)%len(seedGenres)]
			gbase := len(genreArgs)
			genreRows = append(genreRows, fmt.Sprintf("($%d, $%d)", gbase+1, gbase+2))
			genreArgs = append(genreArgs, i, genre)
		}
	}

	query := "INSERT INTO movies (id, title, year) VALUES " + strings.Join(movieRows, ", ")
	if _, err := pool.Exec(ctx, query, movieArgs...); err != nil {
		return err
	}

	query = "INSERT INTO movie_genres (movie_id, genre) VALUES " + strings.Join(genreRows, ", ")
	_, err := pool.Exec(ctx, query, genreArgs...)
	return err
}

func seedRatings(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	seen := make(map[[2]int]bool)

	rows := []string{}
	args := []any{}
	ratedAt := int64(978300000)
	for range n {
		// Power-law skew so some users and movies are far more active.
		userID := int(math.Ceil(math.Pow(rng.Float64(), 1.5) * seedUserCount))
		userID = max(1, min(userID, seedUserCount))
		movieID := int(math.Ceil(math.Pow(rng.Float64(), 1.3) * seedMovieCount))
		movieID = max(1, min(movieID, seedMovieCount))

		key := [2]int{userID, movieID}
		if seen[key] {
			continue
		}
		seen[key] = true

		rating := float64(1 + rng.Intn(5))
		ratedAt += int64(rng.Intn(3600))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, userID, movieID, rating, ratedAt)
	}

	if len(rows) == 0 {
		return nil
	}
	query := "INSERT INTO ratings (user_id, movie_id, rating, rated_at) VALUES " + strings.Join(rows, ", ")
	_, err := pool.Exec(ctx, query, args...)
	return err
}
