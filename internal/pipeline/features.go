package pipeline

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

const (
	// featureTopGenres is how many of the user's top genres the genre
	// overlap is computed against.
	featureTopGenres = 3
	// maxEraDistance caps how far a release year can be from the preferred
	// era before the year preference bottoms out at 0.
	maxEraDistance = 50.0
	// neutralYearPreference is used when either the movie year or the
	// preferred era is unknown.
	neutralYearPreference = 0.5
)

// Features is the per-candidate feature vector handed to the scoring service.
// Features[i] always describes candidate i of the filtered list.
type Features struct {
	MovieID              catalog.MovieID
	GenreOverlapScore    float64
	CollaborativeScore   float64
	SimilarUsersCount    uint32
	AvgRating            float64
	RatingCount          uint32
	PopularityPercentile float64
	MovieYear            int
	YearPreferenceScore  float64
	DaysSinceReleased    float64
}

// Engine derives feature vectors for filtered candidates. Candidates are
// independent, so derivation fans out across a bounded worker group; each
// worker writes its own output slot, preserving candidate order.
type Engine struct {
	idx     *catalog.Index
	workers int
	now     func() time.Time
}

func NewEngine(idx *catalog.Index) *Engine {
	return &Engine{
		idx:     idx,
		workers: runtime.GOMAXPROCS(0),
		now:     time.Now,
	}
}

func (e *Engine) Compute(ctx context.Context, cands []domain.Candidate, uctx *domain.UserContext) ([]Features, error) {
	out := make([]Features, len(cands))
	topGenres := uctx.TopGenres(featureTopGenres)
	currentYear := e.now().UTC().Year()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, c := range cands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = e.compute(c, uctx, topGenres, currentYear)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) compute(c domain.Candidate, uctx *domain.UserContext, topGenres []catalog.Genre, currentYear int) Features {
	f := Features{
		MovieID:            c.MovieID,
		CollaborativeScore: c.BaseScore,
		SimilarUsersCount:  c.Metadata.SimilarUsersCount,
	}

	movie, ok := e.idx.GetMovie(c.MovieID)
	if !ok {
		f.YearPreferenceScore = neutralYearPreference
		return f
	}

	f.GenreOverlapScore = jaccard(movie.Genres, topGenres)

	if stats, ok := e.idx.GetMovieStats(c.MovieID); ok {
		f.AvgRating = stats.AvgRating
		f.RatingCount = stats.RatingCount
		f.PopularityPercentile = stats.PopularityPercentile
	}

	f.MovieYear = movie.Year
	f.YearPreferenceScore = yearPreference(movie.Year, uctx.PreferredEra)
	if movie.Year != 0 && movie.Year <= currentYear {
		f.DaysSinceReleased = float64(currentYear-movie.Year) * 365
	}

	return f
}

// jaccard is the Jaccard similarity between the movie's genres and the user's
// top genres: intersection size over union size, 0 when either set is empty.
func jaccard(movieGenres, topGenres []catalog.Genre) float64 {
	if len(movieGenres) == 0 || len(topGenres) == 0 {
		return 0
	}
	set := make(map[catalog.Genre]struct{}, len(movieGenres))
	for _, g := range movieGenres {
		set[g] = struct{}{}
	}
	intersection := 0
	for _, g := range topGenres {
		if _, ok := set[g]; ok {
			intersection++
		}
	}
	union := len(set) + len(topGenres) - intersection
	return float64(intersection) / float64(union)
}

// yearPreference scores how close a release year is to the preferred era,
// linearly decaying from 1 at the era itself to 0 at maxEraDistance years
// away. Unknown year or era yields the neutral score.
func yearPreference(year, era int) float64 {
	if year == 0 || era == 0 {
		return neutralYearPreference
	}
	diff := float64(year - era)
	if diff < 0 {
		diff = -diff
	}
	score := 1.0 - diff/maxEraDistance
	if score < 0 {
		return 0
	}
	return score
}
