package source

import (
	"context"
	"sort"

	"github.com/reelrecs/recommendation-engine/internal/domain"
)

// Source produces a bounded list of scored candidates for a user context.
// Implementations are CPU-bound and must be safe for concurrent use; the
// orchestrator runs them in parallel and checks ctx between phases.
type Source interface {
	Name() string
	Candidates(ctx context.Context, uctx *domain.UserContext, limit int) ([]domain.Candidate, error)
}

// sortAndTruncate orders candidates by score descending, breaking ties by
// movie ID so identical inputs always produce the same list, then truncates.
func sortAndTruncate(cands []domain.Candidate, limit int) []domain.Candidate {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].BaseScore != cands[j].BaseScore {
			return cands[i].BaseScore > cands[j].BaseScore
		}
		return cands[i].MovieID < cands[j].MovieID
	})
	if len(cands) > limit {
		cands = cands[:limit]
	}
	return cands
}
