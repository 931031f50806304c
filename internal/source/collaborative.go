package source

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

const (
	defaultMinSharedMovies = 3
	maxSimilarUsers        = 500
)

// CollaborativeSource finds in-network candidates: users who highly rated the
// same movies as the target user ("similar users"), then the movies those
// users highly rated that the target has not seen. A candidate's base score
// is the number of similar users backing it.
type CollaborativeSource struct {
	idx             *catalog.Index
	ratingThreshold float64
	minSharedMovies int
	log             zerolog.Logger
}

func NewCollaborativeSource(idx *catalog.Index, log zerolog.Logger) *CollaborativeSource {
	return &CollaborativeSource{
		idx:             idx,
		ratingThreshold: highRatingThreshold,
		minSharedMovies: defaultMinSharedMovies,
		log:             log.With().Str("source", "collaborative").Logger(),
	}
}

func (s *CollaborativeSource) Name() string { return "collaborative" }

func (s *CollaborativeSource) Candidates(ctx context.Context, uctx *domain.UserContext, limit int) ([]domain.Candidate, error) {
	similar := s.findSimilarUsers(uctx)
	s.log.Debug().
		Uint32("user_id", uint32(uctx.UserID)).
		Int("similar_users", len(similar)).
		Msg("found similar users")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := s.candidateScores(similar, uctx)

	cands := make([]domain.Candidate, 0, len(scores))
	for movieID, count := range scores {
		cands = append(cands, domain.Candidate{
			MovieID:   movieID,
			Source:    domain.SourceCollaborative,
			BaseScore: float64(count),
			Metadata:  domain.CandidateMetadata{SimilarUsersCount: count},
		})
	}
	cands = sortAndTruncate(cands, limit)

	s.log.Debug().Int("candidates", len(cands)).Msg("generated collaborative candidates")
	return cands, nil
}

// findSimilarUsers returns up to maxSimilarUsers users who share at least
// minSharedMovies highly rated movies with the target user, preferring the
// users with the most shared movies.
func (s *CollaborativeSource) findSimilarUsers(uctx *domain.UserContext) map[catalog.UserID]struct{} {
	shared := make(map[catalog.UserID]int)
	for _, movieID := range uctx.HighlyRated {
		for _, r := range s.idx.MovieRatings(movieID) {
			if r.UserID != uctx.UserID && r.Rating >= s.ratingThreshold {
				shared[r.UserID]++
			}
		}
	}

	type userCount struct {
		id    catalog.UserID
		count int
	}
	ranked := make([]userCount, 0, len(shared))
	for id, count := range shared {
		if count >= s.minSharedMovies {
			ranked = append(ranked, userCount{id, count})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].id < ranked[j].id
	})
	if len(ranked) > maxSimilarUsers {
		ranked = ranked[:maxSimilarUsers]
	}

	similar := make(map[catalog.UserID]struct{}, len(ranked))
	for _, uc := range ranked {
		similar[uc.id] = struct{}{}
	}
	return similar
}

// candidateScores counts, per unwatched movie, how many similar users rated
// it at or above the threshold.
func (s *CollaborativeSource) candidateScores(similar map[catalog.UserID]struct{}, uctx *domain.UserContext) map[catalog.MovieID]uint32 {
	scores := make(map[catalog.MovieID]uint32)
	for userID := range similar {
		for _, r := range s.idx.UserRatings(userID) {
			if r.Rating >= s.ratingThreshold && !uctx.Watched(r.MovieID) {
				scores[r.MovieID]++
			}
		}
	}
	return scores
}
