package pipeline

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

func buildIndex(t *testing.T, movies []catalog.Movie, users []catalog.User, ratings []catalog.Rating) *catalog.Index {
	t.Helper()
	idx := catalog.NewIndex()
	for _, m := range movies {
		idx.AddMovie(m)
	}
	for _, u := range users {
		idx.AddUser(u)
	}
	for _, r := range ratings {
		idx.AddRating(r)
	}
	require.NoError(t, idx.Finalize())
	return idx
}

// filterFixture builds a catalog with movies spanning the quality gates:
//
//	1: watched by the user
//	2: well rated Drama from 1994
//	3: avg 3.2 across 50 ratings (popular but below the rating bar)
//	4: avg 3.2 across 5 ratings (below both bars)
//	5: well rated Comedy, outside the user's top genres
//	6: well rated Drama with no known year
func filterFixture(t *testing.T) (*catalog.Index, *domain.UserContext) {
	t.Helper()
	movies := []catalog.Movie{
		{ID: 1, Title: "Watched (1994)", Year: 1994, Genres: []catalog.Genre{"Drama"}},
		{ID: 2, Title: "Good Drama (1994)", Year: 1994, Genres: []catalog.Genre{"Drama"}},
		{ID: 3, Title: "Popular Average (1994)", Year: 1994, Genres: []catalog.Genre{"Drama"}},
		{ID: 4, Title: "Obscure Average (1994)", Year: 1994, Genres: []catalog.Genre{"Drama"}},
		{ID: 5, Title: "Good Comedy (1994)", Year: 1994, Genres: []catalog.Genre{"Comedy"}},
		{ID: 6, Title: "Undated Drama", Year: 0, Genres: []catalog.Genre{"Drama"}},
	}

	var users []catalog.User
	for id := catalog.UserID(1); id <= 60; id++ {
		users = append(users, catalog.User{ID: id})
	}

	ratings := []catalog.Rating{{UserID: 1, MovieID: 1, Rating: 5}}
	// Movie 2 and 5 and 6: avg 4.0 from 10 raters.
	for id := catalog.UserID(2); id <= 11; id++ {
		ratings = append(ratings,
			catalog.Rating{UserID: id, MovieID: 2, Rating: 4},
			catalog.Rating{UserID: id, MovieID: 5, Rating: 4},
			catalog.Rating{UserID: id, MovieID: 6, Rating: 4},
		)
	}
	// Movie 3: 50 ratings alternating 3 and 3.4 for avg 3.2.
	for i := 0; i < 50; i++ {
		val := 3.0
		if i%2 == 1 {
			val = 3.4
		}
		ratings = append(ratings, catalog.Rating{UserID: catalog.UserID(i%60 + 1), MovieID: 3, Rating: val})
	}
	// Movie 4: 5 ratings, same 3.2 average.
	ratings = append(ratings,
		catalog.Rating{UserID: 2, MovieID: 4, Rating: 3},
		catalog.Rating{UserID: 3, MovieID: 4, Rating: 3.4},
		catalog.Rating{UserID: 4, MovieID: 4, Rating: 3},
		catalog.Rating{UserID: 5, MovieID: 4, Rating: 3.4},
		catalog.Rating{UserID: 6, MovieID: 4, Rating: 3.2},
	)

	idx := buildIndex(t, movies, users, ratings)

	uctx := domain.NewUserContext(1)
	uctx.WatchedMovies[1] = struct{}{}
	uctx.GenrePreferences = map[catalog.Genre]float64{"Drama": 5}
	uctx.PreferredEra = 1994
	return idx, uctx
}

func candidatesFor(ids ...catalog.MovieID) []domain.Candidate {
	out := make([]domain.Candidate, len(ids))
	for i, id := range ids {
		out[i] = domain.Candidate{MovieID: id, Source: domain.SourceDiscovery, BaseScore: 1}
	}
	return out
}

func TestAlreadyWatchedFilter(t *testing.T) {
	_, uctx := filterFixture(t)

	out, err := NewAlreadyWatchedFilter().Apply(candidatesFor(1, 2, 3), uctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, catalog.MovieID(2), out[0].MovieID)
	assert.Equal(t, catalog.MovieID(3), out[1].MovieID)
}

func TestMinimumRatingFilter(t *testing.T) {
	idx, uctx := filterFixture(t)
	f := NewMinimumRatingFilter(idx, 3.5, 10)

	out, err := f.Apply(candidatesFor(2, 3, 4), uctx)
	require.NoError(t, err)

	ids := make([]catalog.MovieID, len(out))
	for i, c := range out {
		ids[i] = c.MovieID
	}
	// Only movie 2 clears both gates; movies 3 and 4 fall below the rating
	// bar regardless of how many ratings they have.
	assert.Equal(t, []catalog.MovieID{2}, ids)
}

func TestMinimumRatingFilterRequiresBothGates(t *testing.T) {
	idx, uctx := filterFixture(t)
	f := NewMinimumRatingFilter(idx, 3.5, 10)

	// Movie 3: avg 3.2 across 50 ratings. Popularity alone does not rescue a
	// sub-threshold average.
	out, err := f.Apply(candidatesFor(3), uctx)
	require.NoError(t, err)
	assert.Empty(t, out)

	// Movie 2: avg 4.0 across exactly 10 ratings clears both gates.
	out, err = f.Apply(candidatesFor(2), uctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, catalog.MovieID(2), out[0].MovieID)
}

func TestMinimumRatingFilterNoStats(t *testing.T) {
	idx, uctx := filterFixture(t)
	f := NewMinimumRatingFilter(idx, 3.5, 10)

	out, err := f.Apply(candidatesFor(999), uctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGenrePreferenceFilter(t *testing.T) {
	idx, uctx := filterFixture(t)
	f := NewGenrePreferenceFilter(idx, 3)

	out, err := f.Apply(candidatesFor(2, 5), uctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, catalog.MovieID(2), out[0].MovieID)
}

func TestGenrePreferenceFilterNoPreferencesDropsAll(t *testing.T) {
	idx, _ := filterFixture(t)
	uctx := domain.NewUserContext(1)
	f := NewGenrePreferenceFilter(idx, 3)

	// No preferences means no genre can intersect, so nothing survives.
	out, err := f.Apply(candidatesFor(2, 5), uctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRecencyFilter(t *testing.T) {
	idx, uctx := filterFixture(t)
	f := NewRecencyFilter(idx, 3)

	out, err := f.Apply(candidatesFor(2, 6), uctx)
	require.NoError(t, err)

	// Movie 2 (1994) is inside the window; movie 6 has no year and is kept.
	require.Len(t, out, 2)

	uctx.PreferredEra = 1960
	out, err = f.Apply(candidatesFor(2, 6), uctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, catalog.MovieID(6), out[0].MovieID)
}

func TestRecencyFilterNoEraIsNoOp(t *testing.T) {
	idx, _ := filterFixture(t)
	uctx := domain.NewUserContext(1)
	f := NewRecencyFilter(idx, 3)

	in := candidatesFor(6, 2, 5)
	out, err := f.Apply(in, uctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestChainAppliesInOrder(t *testing.T) {
	idx, uctx := filterFixture(t)
	chain := NewChain(zerolog.Nop(),
		NewAlreadyWatchedFilter(),
		NewMinimumRatingFilter(idx, 3.5, 10),
		NewGenrePreferenceFilter(idx, 3),
		NewRecencyFilter(idx, 3),
	)

	out, err := chain.Apply(candidatesFor(1, 2, 3, 4, 5, 6), uctx)
	require.NoError(t, err)

	ids := make([]catalog.MovieID, len(out))
	for i, c := range out {
		ids[i] = c.MovieID
	}
	// 1 watched, 3 and 4 below the rating bar, 5 wrong genre; 2 and 6
	// survive, in input order.
	assert.Equal(t, []catalog.MovieID{2, 6}, ids)
}

func TestChainNeverGrowsCandidateList(t *testing.T) {
	idx, uctx := filterFixture(t)
	chain := NewChain(zerolog.Nop(),
		NewAlreadyWatchedFilter(),
		NewMinimumRatingFilter(idx, 3.5, 10),
		NewGenrePreferenceFilter(idx, 3),
	)

	in := candidatesFor(1, 2, 3, 4, 5, 6)
	out, err := chain.Apply(in, uctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), len(in))
}
