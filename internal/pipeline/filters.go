package pipeline

import (
	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

// AlreadyWatchedFilter drops candidates the user has already rated.
type AlreadyWatchedFilter struct{}

func NewAlreadyWatchedFilter() *AlreadyWatchedFilter { return &AlreadyWatchedFilter{} }

func (f *AlreadyWatchedFilter) Name() string { return "already_watched" }

func (f *AlreadyWatchedFilter) Apply(cands []domain.Candidate, uctx *domain.UserContext) ([]domain.Candidate, error) {
	kept := cands[:0]
	for _, c := range cands {
		if !uctx.Watched(c.MovieID) {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// MinimumRatingFilter keeps only candidates that clear both quality gates:
// average rating at or above the minimum and rating count at or above the
// minimum. Candidates with no rating stats are dropped.
type MinimumRatingFilter struct {
	idx       *catalog.Index
	minRating float64
	minCount  uint32
}

func NewMinimumRatingFilter(idx *catalog.Index, minRating float64, minCount uint32) *MinimumRatingFilter {
	return &MinimumRatingFilter{idx: idx, minRating: minRating, minCount: minCount}
}

func (f *MinimumRatingFilter) Name() string { return "minimum_rating" }

func (f *MinimumRatingFilter) Apply(cands []domain.Candidate, uctx *domain.UserContext) ([]domain.Candidate, error) {
	kept := cands[:0]
	for _, c := range cands {
		stats, ok := f.idx.GetMovieStats(c.MovieID)
		if !ok {
			continue
		}
		if stats.AvgRating >= f.minRating && stats.RatingCount >= f.minCount {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// GenrePreferenceFilter keeps candidates sharing at least one genre with the
// user's top genres. Nothing intersects an empty preference set, so users
// without genre preferences keep no candidates; movies missing from the
// catalog are dropped.
type GenrePreferenceFilter struct {
	idx  *catalog.Index
	topN int
}

func NewGenrePreferenceFilter(idx *catalog.Index, topN int) *GenrePreferenceFilter {
	return &GenrePreferenceFilter{idx: idx, topN: topN}
}

func (f *GenrePreferenceFilter) Name() string { return "genre_preference" }

func (f *GenrePreferenceFilter) Apply(cands []domain.Candidate, uctx *domain.UserContext) ([]domain.Candidate, error) {
	top := uctx.TopGenres(f.topN)
	topSet := make(map[catalog.Genre]struct{}, len(top))
	for _, g := range top {
		topSet[g] = struct{}{}
	}

	kept := cands[:0]
	for _, c := range cands {
		movie, ok := f.idx.GetMovie(c.MovieID)
		if !ok {
			continue
		}
		for _, g := range movie.Genres {
			if _, match := topSet[g]; match {
				kept = append(kept, c)
				break
			}
		}
	}
	return kept, nil
}

// RecencyFilter keeps candidates released within toleranceYears of the user's
// preferred era. Users without a preferred era keep everything; candidates
// with an unknown release year are kept, since the era signal is advisory.
type RecencyFilter struct {
	idx            *catalog.Index
	toleranceYears int
}

func NewRecencyFilter(idx *catalog.Index, toleranceYears int) *RecencyFilter {
	return &RecencyFilter{idx: idx, toleranceYears: toleranceYears}
}

func (f *RecencyFilter) Name() string { return "recency" }

func (f *RecencyFilter) Apply(cands []domain.Candidate, uctx *domain.UserContext) ([]domain.Candidate, error) {
	if uctx.PreferredEra == 0 {
		return cands, nil
	}

	kept := cands[:0]
	for _, c := range cands {
		movie, ok := f.idx.GetMovie(c.MovieID)
		if !ok {
			continue
		}
		if movie.Year == 0 {
			kept = append(kept, c)
			continue
		}
		diff := movie.Year - uctx.PreferredEra
		if diff < 0 {
			diff = -diff
		}
		if diff <= f.toleranceYears {
			kept = append(kept, c)
		}
	}
	return kept, nil
}
