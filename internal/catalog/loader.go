package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// The MovieLens 1M files are "::"-separated and encoded as ISO-8859-1:
//
//	users.dat    userID::gender::age::occupation::zipcode
//	movies.dat   movieID::title::genre|genre|...
//	ratings.dat  userID::movieID::rating::timestamp

var yearSuffix = regexp.MustCompile(`\((\d{4})\)\s*$`)

// LoadDir reads a MovieLens-format dataset directory and returns a finalized
// read-only index.
func LoadDir(dir string, log zerolog.Logger) (*Index, error) {
	idx := NewIndex()

	users, err := parseUsers(filepath.Join(dir, "users.dat"))
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		idx.AddUser(u)
	}

	movies, err := parseMovies(filepath.Join(dir, "movies.dat"))
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}
	for _, m := range movies {
		idx.AddMovie(m)
	}

	ratings, err := parseRatings(filepath.Join(dir, "ratings.dat"))
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	for _, r := range ratings {
		idx.AddRating(r)
	}

	if err := idx.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize index: %w", err)
	}

	log.Info().
		Int("users", len(users)).
		Int("movies", len(movies)).
		Int("ratings", len(ratings)).
		Str("dir", dir).
		Msg("catalog loaded")
	return idx, nil
}

// readLinesLatin1 reads a whole file and decodes it as ISO-8859-1, where each
// byte maps directly to the same Unicode code point.
func readLinesLatin1(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		b.WriteRune(rune(c))
	}
	return strings.Split(strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n"), nil
}

func parseUsers(path string) ([]User, error) {
	lines, err := readLinesLatin1(path)
	if err != nil {
		return nil, err
	}

	var users []User
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "::")
		if len(parts) != 5 {
			return nil, fmt.Errorf("users.dat line %d: expected 5 fields, got %d", i+1, len(parts))
		}
		id, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("users.dat line %d: bad user id %q", i+1, parts[0])
		}
		age, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("users.dat line %d: bad age %q", i+1, parts[2])
		}
		occupation, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, fmt.Errorf("users.dat line %d: bad occupation %q", i+1, parts[3])
		}
		users = append(users, User{
			ID:         UserID(id),
			Gender:     parts[1],
			Age:        age,
			Occupation: occupation,
			Zipcode:    parts[4],
		})
	}
	return users, nil
}

func parseMovies(path string) ([]Movie, error) {
	lines, err := readLinesLatin1(path)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "::")
		if len(parts) != 3 {
			return nil, fmt.Errorf("movies.dat line %d: expected 3 fields, got %d", i+1, len(parts))
		}
		id, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("movies.dat line %d: bad movie id %q", i+1, parts[0])
		}

		title := parts[1]
		year := 0
		if m := yearSuffix.FindStringSubmatch(title); m != nil {
			year, _ = strconv.Atoi(m[1])
		}

		var genres []Genre
		for _, g := range strings.Split(parts[2], "|") {
			if g != "" {
				genres = append(genres, Genre(g))
			}
		}

		movies = append(movies, Movie{
			ID:     MovieID(id),
			Title:  title,
			Year:   year,
			Genres: genres,
		})
	}
	return movies, nil
}

func parseRatings(path string) ([]Rating, error) {
	lines, err := readLinesLatin1(path)
	if err != nil {
		return nil, err
	}

	var ratings []Rating
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "::")
		if len(parts) != 4 {
			return nil, fmt.Errorf("ratings.dat line %d: expected 4 fields, got %d", i+1, len(parts))
		}
		userID, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ratings.dat line %d: bad user id %q", i+1, parts[0])
		}
		movieID, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("ratings.dat line %d: bad movie id %q", i+1, parts[1])
		}
		value, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("ratings.dat line %d: bad rating %q", i+1, parts[2])
		}
		ts, err := strconv.ParseInt(parts[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ratings.dat line %d: bad timestamp %q", i+1, parts[3])
		}
		ratings = append(ratings, Rating{
			UserID:    UserID(userID),
			MovieID:   MovieID(movieID),
			Rating:    value,
			Timestamp: ts,
		})
	}
	return ratings, nil
}
