package source

import (
	"fmt"
	"sort"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

const highRatingThreshold = 4.0

// BuildUserContext aggregates everything the pipeline needs to know about a
// user into one read-only snapshot: watched set, highly rated movies, average
// rating per genre, and the preferred era (median year of highly rated
// movies). Users with no ratings get an empty context; unknown users fail
// with domain.ErrUserNotFound.
func BuildUserContext(idx *catalog.Index, userID catalog.UserID) (*domain.UserContext, error) {
	if _, ok := idx.GetUser(userID); !ok {
		return nil, fmt.Errorf("build context for user %d: %w", userID, domain.ErrUserNotFound)
	}

	ctx := domain.NewUserContext(userID)

	ratings := idx.UserRatings(userID)
	if len(ratings) == 0 {
		return ctx, nil
	}

	var total float64
	for _, r := range ratings {
		total += r.Rating
		ctx.WatchedMovies[r.MovieID] = struct{}{}
		if r.Rating >= highRatingThreshold {
			ctx.HighlyRated = append(ctx.HighlyRated, r.MovieID)
		}
	}
	ctx.AvgRating = total / float64(len(ratings))
	ctx.GenrePreferences = genrePreferences(idx, ratings)
	ctx.PreferredEra = preferredEra(idx, ctx.HighlyRated)

	return ctx, nil
}

// genrePreferences computes the user's average rating per genre.
func genrePreferences(idx *catalog.Index, ratings []catalog.Rating) map[catalog.Genre]float64 {
	type sumCount struct {
		sum   float64
		count int
	}
	agg := make(map[catalog.Genre]sumCount)
	for _, r := range ratings {
		movie, ok := idx.GetMovie(r.MovieID)
		if !ok {
			continue
		}
		for _, g := range movie.Genres {
			sc := agg[g]
			sc.sum += r.Rating
			sc.count++
			agg[g] = sc
		}
	}

	prefs := make(map[catalog.Genre]float64, len(agg))
	for g, sc := range agg {
		prefs[g] = sc.sum / float64(sc.count)
	}
	return prefs
}

// preferredEra is the median release year of the user's highly rated movies,
// or 0 when none of them has a known year.
func preferredEra(idx *catalog.Index, highlyRated []catalog.MovieID) int {
	var years []int
	for _, movieID := range highlyRated {
		if movie, ok := idx.GetMovie(movieID); ok && movie.Year != 0 {
			years = append(years, movie.Year)
		}
	}
	if len(years) == 0 {
		return 0
	}
	sort.Ints(years)
	return years[len(years)/2]
}
