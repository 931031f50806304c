package source

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

// collaborativeFixture builds a catalog where users 2 and 3 share three highly
// rated movies with user 1, while user 4 shares only one.
func collaborativeFixture(t *testing.T) *catalog.Index {
	t.Helper()
	movies := []catalog.Movie{
		{ID: 1, Title: "A (1990)", Year: 1990, Genres: []catalog.Genre{"Drama"}},
		{ID: 2, Title: "B (1991)", Year: 1991, Genres: []catalog.Genre{"Drama"}},
		{ID: 3, Title: "C (1992)", Year: 1992, Genres: []catalog.Genre{"Drama"}},
		{ID: 4, Title: "D (1993)", Year: 1993, Genres: []catalog.Genre{"Action"}},
		{ID: 5, Title: "E (1994)", Year: 1994, Genres: []catalog.Genre{"Action"}},
	}
	users := []catalog.User{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	ratings := []catalog.Rating{
		// Target user highly rates movies 1-3.
		{UserID: 1, MovieID: 1, Rating: 5},
		{UserID: 1, MovieID: 2, Rating: 4},
		{UserID: 1, MovieID: 3, Rating: 5},

		// User 2 shares all three and highly rates movie 4.
		{UserID: 2, MovieID: 1, Rating: 4},
		{UserID: 2, MovieID: 2, Rating: 5},
		{UserID: 2, MovieID: 3, Rating: 4},
		{UserID: 2, MovieID: 4, Rating: 5},

		// User 3 shares all three and highly rates movies 4 and 5.
		{UserID: 3, MovieID: 1, Rating: 5},
		{UserID: 3, MovieID: 2, Rating: 4},
		{UserID: 3, MovieID: 3, Rating: 4},
		{UserID: 3, MovieID: 4, Rating: 4},
		{UserID: 3, MovieID: 5, Rating: 5},

		// User 4 shares only one, below the similarity bar.
		{UserID: 4, MovieID: 1, Rating: 5},
		{UserID: 4, MovieID: 5, Rating: 5},
	}
	return buildIndex(t, movies, users, ratings)
}

func TestCollaborativeCandidates(t *testing.T) {
	idx := collaborativeFixture(t)
	uctx, err := BuildUserContext(idx, 1)
	require.NoError(t, err)

	src := NewCollaborativeSource(idx, zerolog.Nop())
	cands, err := src.Candidates(context.Background(), uctx, 10)
	require.NoError(t, err)

	require.Len(t, cands, 2)

	// Movie 4 is backed by both similar users, movie 5 by one.
	assert.Equal(t, catalog.MovieID(4), cands[0].MovieID)
	assert.Equal(t, 2.0, cands[0].BaseScore)
	assert.Equal(t, uint32(2), cands[0].Metadata.SimilarUsersCount)

	assert.Equal(t, catalog.MovieID(5), cands[1].MovieID)
	assert.Equal(t, 1.0, cands[1].BaseScore)

	for _, c := range cands {
		assert.Equal(t, domain.SourceCollaborative, c.Source)
		assert.False(t, uctx.Watched(c.MovieID), "watched movie leaked into candidates")
	}
}

func TestCollaborativeNoSimilarUsers(t *testing.T) {
	idx := buildIndex(t,
		[]catalog.Movie{{ID: 1, Title: "A (1990)", Year: 1990, Genres: []catalog.Genre{"Drama"}}},
		[]catalog.User{{ID: 1}, {ID: 2}},
		[]catalog.Rating{
			{UserID: 1, MovieID: 1, Rating: 5},
			{UserID: 2, MovieID: 1, Rating: 2},
		},
	)
	uctx, err := BuildUserContext(idx, 1)
	require.NoError(t, err)

	src := NewCollaborativeSource(idx, zerolog.Nop())
	cands, err := src.Candidates(context.Background(), uctx, 10)
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestCollaborativeRespectsLimit(t *testing.T) {
	idx := collaborativeFixture(t)
	uctx, err := BuildUserContext(idx, 1)
	require.NoError(t, err)

	src := NewCollaborativeSource(idx, zerolog.Nop())
	cands, err := src.Candidates(context.Background(), uctx, 1)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, catalog.MovieID(4), cands[0].MovieID)
}

func TestCollaborativeCancelledContext(t *testing.T) {
	idx := collaborativeFixture(t)
	uctx, err := BuildUserContext(idx, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewCollaborativeSource(idx, zerolog.Nop())
	_, err = src.Candidates(ctx, uctx, 10)
	require.ErrorIs(t, err, context.Canceled)
}
