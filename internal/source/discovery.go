package source

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

const (
	defaultMinAvgRating   = 3.5
	defaultMinRatingCount = 10
	discoveryTopGenres    = 3
	eraWindowYears        = 5
)

// DiscoverySource finds out-of-network candidates through three strategies:
// highly rated movies in the user's preferred genres, generally popular
// movies, and movies from the user's preferred era. Movies surfaced by more
// than one strategy have their scores averaged.
type DiscoverySource struct {
	idx            *catalog.Index
	minAvgRating   float64
	minRatingCount uint32
	log            zerolog.Logger
}

func NewDiscoverySource(idx *catalog.Index, log zerolog.Logger) *DiscoverySource {
	return &DiscoverySource{
		idx:            idx,
		minAvgRating:   defaultMinAvgRating,
		minRatingCount: defaultMinRatingCount,
		log:            log.With().Str("source", "discovery").Logger(),
	}
}

func (s *DiscoverySource) Name() string { return "discovery" }

func (s *DiscoverySource) Candidates(ctx context.Context, uctx *domain.UserContext, limit int) ([]domain.Candidate, error) {
	merged := make(map[catalog.MovieID]domain.Candidate)

	for _, c := range s.genreBased(uctx, limit/2) {
		merged[c.MovieID] = c
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, c := range s.popularityBased(uctx, limit/3) {
		if existing, ok := merged[c.MovieID]; ok {
			existing.BaseScore = (existing.BaseScore + c.BaseScore) / 2
			existing.Metadata.FromPopularity = true
			merged[c.MovieID] = existing
		} else {
			merged[c.MovieID] = c
		}
	}

	if uctx.PreferredEra != 0 {
		for _, c := range s.temporal(uctx, limit/3) {
			if existing, ok := merged[c.MovieID]; ok {
				existing.BaseScore = (existing.BaseScore + c.BaseScore) / 2
				existing.Metadata.FromTemporal = true
				merged[c.MovieID] = existing
			} else {
				merged[c.MovieID] = c
			}
		}
	}

	cands := make([]domain.Candidate, 0, len(merged))
	for _, c := range merged {
		cands = append(cands, c)
	}
	cands = sortAndTruncate(cands, limit)

	s.log.Debug().
		Uint32("user_id", uint32(uctx.UserID)).
		Int("candidates", len(cands)).
		Msg("generated discovery candidates")
	return cands, nil
}

func (s *DiscoverySource) qualityStats(movieID catalog.MovieID) (catalog.RatingStats, bool) {
	stats, ok := s.idx.GetMovieStats(movieID)
	if !ok || stats.AvgRating < s.minAvgRating || stats.RatingCount < s.minRatingCount {
		return catalog.RatingStats{}, false
	}
	return stats, true
}

// genreBased surfaces unwatched, quality-gated movies from the user's top
// genres, scored by normalized rating weighted by the genre preference.
func (s *DiscoverySource) genreBased(uctx *domain.UserContext, limit int) []domain.Candidate {
	var cands []domain.Candidate
	for _, genre := range uctx.TopGenres(discoveryTopGenres) {
		weight := uctx.GenrePreferences[genre]
		for _, movieID := range s.idx.MoviesByGenre(genre) {
			if uctx.Watched(movieID) {
				continue
			}
			stats, ok := s.qualityStats(movieID)
			if !ok {
				continue
			}
			c := domain.Candidate{
				MovieID:   movieID,
				Source:    domain.SourceDiscovery,
				BaseScore: (stats.AvgRating / 5.0) * weight,
			}
			c.Metadata.MatchedGenres = append(c.Metadata.MatchedGenres, genre)
			cands = append(cands, c)
		}
	}
	return sortAndTruncate(cands, limit)
}

// popularityBased surfaces unwatched, quality-gated movies scored by their
// precomputed popularity score.
func (s *DiscoverySource) popularityBased(uctx *domain.UserContext, limit int) []domain.Candidate {
	var cands []domain.Candidate
	for _, movieID := range s.idx.AllMovieIDs() {
		if uctx.Watched(movieID) {
			continue
		}
		stats, ok := s.qualityStats(movieID)
		if !ok {
			continue
		}
		cands = append(cands, domain.Candidate{
			MovieID:   movieID,
			Source:    domain.SourceDiscovery,
			BaseScore: stats.PopularityScore,
			Metadata:  domain.CandidateMetadata{FromPopularity: true},
		})
	}
	return sortAndTruncate(cands, limit)
}

// temporal surfaces movies released within eraWindowYears of the user's
// preferred era, scored by a blend of year proximity and rating.
func (s *DiscoverySource) temporal(uctx *domain.UserContext, limit int) []domain.Candidate {
	era := uctx.PreferredEra
	var cands []domain.Candidate
	for _, movieID := range s.idx.MoviesInYearRange(era-eraWindowYears, era+eraWindowYears) {
		if uctx.Watched(movieID) {
			continue
		}
		movie, ok := s.idx.GetMovie(movieID)
		if !ok || movie.Year == 0 {
			continue
		}
		stats, ok := s.qualityStats(movieID)
		if !ok {
			continue
		}

		yearDiff := movie.Year - era
		if yearDiff < 0 {
			yearDiff = -yearDiff
		}
		yearScore := 1.0 - min(float64(yearDiff)/10.0, 1.0)
		ratingScore := stats.AvgRating / 5.0

		cands = append(cands, domain.Candidate{
			MovieID:   movieID,
			Source:    domain.SourceDiscovery,
			BaseScore: (yearScore + ratingScore) / 2,
			Metadata:  domain.CandidateMetadata{FromTemporal: true},
		})
	}
	return sortAndTruncate(cands, limit)
}
