package domain

import (
	"sort"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
)

// UserContext is the per-request profile derived from the catalog once, before
// candidate generation. It is shared read-only across all parallel stages; no
// stage may mutate it.
type UserContext struct {
	UserID catalog.UserID

	// WatchedMovies holds every movie the user has rated.
	WatchedMovies map[catalog.MovieID]struct{}

	// HighlyRated lists movies the user rated >= 4.0.
	HighlyRated []catalog.MovieID

	// GenrePreferences maps each genre the user has rated to the user's
	// average rating for that genre.
	GenrePreferences map[catalog.Genre]float64

	// PreferredEra is the median release year of the user's highly rated
	// movies, or 0 when unknown.
	PreferredEra int

	AvgRating float64
}

func NewUserContext(userID catalog.UserID) *UserContext {
	return &UserContext{
		UserID:           userID,
		WatchedMovies:    make(map[catalog.MovieID]struct{}),
		GenrePreferences: make(map[catalog.Genre]float64),
	}
}

func (c *UserContext) Watched(id catalog.MovieID) bool {
	_, ok := c.WatchedMovies[id]
	return ok
}

// TopGenres returns the user's n highest-weighted genres, ordered by weight
// descending with genre name as the tie-break so the result is deterministic.
func (c *UserContext) TopGenres(n int) []catalog.Genre {
	genres := make([]catalog.Genre, 0, len(c.GenrePreferences))
	for g := range c.GenrePreferences {
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool {
		wi, wj := c.GenrePreferences[genres[i]], c.GenrePreferences[genres[j]]
		if wi != wj {
			return wi > wj
		}
		return genres[i] < genres[j]
	})
	if len(genres) > n {
		genres = genres[:n]
	}
	return genres
}
