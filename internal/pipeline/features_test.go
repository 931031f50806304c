package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

func featureFixture(t *testing.T) (*catalog.Index, *domain.UserContext) {
	t.Helper()
	movies := []catalog.Movie{
		{ID: 1, Title: "A (1994)", Year: 1994, Genres: []catalog.Genre{"Drama", "Crime"}},
		{ID: 2, Title: "B (2000)", Year: 2000, Genres: []catalog.Genre{"Comedy"}},
		{ID: 3, Title: "C", Year: 0, Genres: []catalog.Genre{"Drama"}},
	}
	users := []catalog.User{{ID: 1}, {ID: 2}, {ID: 3}}
	ratings := []catalog.Rating{
		{UserID: 1, MovieID: 1, Rating: 5},
		{UserID: 2, MovieID: 1, Rating: 4},
		{UserID: 3, MovieID: 1, Rating: 3},
		{UserID: 2, MovieID: 2, Rating: 4},
	}
	idx := buildIndex(t, movies, users, ratings)

	uctx := domain.NewUserContext(10)
	uctx.GenrePreferences = map[catalog.Genre]float64{"Drama": 5, "Crime": 4, "Thriller": 3}
	uctx.PreferredEra = 1994
	return idx, uctx
}

func newTestEngine(idx *catalog.Index, now time.Time) *Engine {
	e := NewEngine(idx)
	e.now = func() time.Time { return now }
	return e
}

func TestComputeAlignment(t *testing.T) {
	idx, uctx := featureFixture(t)
	engine := newTestEngine(idx, time.Date(2003, 6, 1, 0, 0, 0, 0, time.UTC))

	cands := []domain.Candidate{
		{MovieID: 2, Source: domain.SourceDiscovery, BaseScore: 0.8},
		{MovieID: 1, Source: domain.SourceCollaborative, BaseScore: 7, Metadata: domain.CandidateMetadata{SimilarUsersCount: 7}},
		{MovieID: 3, Source: domain.SourceDiscovery, BaseScore: 0.5},
	}

	feats, err := engine.Compute(context.Background(), cands, uctx)
	require.NoError(t, err)
	require.Len(t, feats, len(cands))

	// Output slot i always belongs to candidate i.
	for i, c := range cands {
		assert.Equal(t, c.MovieID, feats[i].MovieID)
		assert.Equal(t, c.BaseScore, feats[i].CollaborativeScore)
		assert.Equal(t, c.Metadata.SimilarUsersCount, feats[i].SimilarUsersCount)
	}
}

func TestComputeFeatureValues(t *testing.T) {
	idx, uctx := featureFixture(t)
	engine := newTestEngine(idx, time.Date(2003, 6, 1, 0, 0, 0, 0, time.UTC))

	feats, err := engine.Compute(context.Background(),
		[]domain.Candidate{{MovieID: 1, Source: domain.SourceCollaborative, BaseScore: 7}}, uctx)
	require.NoError(t, err)
	require.Len(t, feats, 1)
	f := feats[0]

	// Genres {Drama, Crime} vs top genres {Drama, Crime, Thriller}:
	// intersection 2, union 3.
	assert.InDelta(t, 2.0/3.0, f.GenreOverlapScore, 1e-9)

	assert.InDelta(t, 4.0, f.AvgRating, 1e-9)
	assert.Equal(t, uint32(3), f.RatingCount)
	assert.InDelta(t, 1.0, f.PopularityPercentile, 1e-9)

	assert.Equal(t, 1994, f.MovieYear)
	// Year matches the era exactly.
	assert.InDelta(t, 1.0, f.YearPreferenceScore, 1e-9)
	assert.InDelta(t, float64(2003-1994)*365, f.DaysSinceReleased, 1e-9)
}

func TestComputeUnknownYear(t *testing.T) {
	idx, uctx := featureFixture(t)
	engine := newTestEngine(idx, time.Date(2003, 6, 1, 0, 0, 0, 0, time.UTC))

	feats, err := engine.Compute(context.Background(),
		[]domain.Candidate{{MovieID: 3, Source: domain.SourceDiscovery}}, uctx)
	require.NoError(t, err)

	f := feats[0]
	assert.Zero(t, f.MovieYear)
	assert.InDelta(t, neutralYearPreference, f.YearPreferenceScore, 1e-9)
	assert.Zero(t, f.DaysSinceReleased)
}

func TestComputeMissingMovie(t *testing.T) {
	idx, uctx := featureFixture(t)
	engine := newTestEngine(idx, time.Date(2003, 6, 1, 0, 0, 0, 0, time.UTC))

	feats, err := engine.Compute(context.Background(),
		[]domain.Candidate{{MovieID: 999, Source: domain.SourceDiscovery, BaseScore: 2}}, uctx)
	require.NoError(t, err)

	f := feats[0]
	assert.Equal(t, catalog.MovieID(999), f.MovieID)
	assert.Equal(t, 2.0, f.CollaborativeScore)
	assert.Zero(t, f.GenreOverlapScore)
	assert.Zero(t, f.AvgRating)
	assert.InDelta(t, neutralYearPreference, f.YearPreferenceScore, 1e-9)
}

func TestYearPreferenceDecay(t *testing.T) {
	assert.InDelta(t, 1.0, yearPreference(1994, 1994), 1e-9)
	assert.InDelta(t, 0.8, yearPreference(2004, 1994), 1e-9)
	assert.InDelta(t, 0.8, yearPreference(1984, 1994), 1e-9)
	// Beyond maxEraDistance the score clamps to 0.
	assert.Zero(t, yearPreference(1900, 1994))
	assert.InDelta(t, neutralYearPreference, yearPreference(0, 1994), 1e-9)
	assert.InDelta(t, neutralYearPreference, yearPreference(1994, 0), 1e-9)
}

func TestComputeEmptyInput(t *testing.T) {
	idx, uctx := featureFixture(t)
	engine := newTestEngine(idx, time.Now())

	feats, err := engine.Compute(context.Background(), nil, uctx)
	require.NoError(t, err)
	assert.Empty(t, feats)
}
