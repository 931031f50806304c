package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

func collab(id catalog.MovieID, score float64) domain.Candidate {
	return domain.Candidate{MovieID: id, Source: domain.SourceCollaborative, BaseScore: score}
}

func discovery(id catalog.MovieID, score float64) domain.Candidate {
	return domain.Candidate{MovieID: id, Source: domain.SourceDiscovery, BaseScore: score}
}

func TestMergeDisjointLists(t *testing.T) {
	merged := MergeCandidates(
		[]domain.Candidate{collab(1, 3), collab(2, 2)},
		[]domain.Candidate{discovery(3, 0.9)},
	)

	require.Len(t, merged, 3)
	assert.Equal(t, catalog.MovieID(1), merged[0].MovieID)
	assert.Equal(t, catalog.MovieID(2), merged[1].MovieID)
	assert.Equal(t, catalog.MovieID(3), merged[2].MovieID)
}

func TestMergeDuplicateKeepsHigherScore(t *testing.T) {
	merged := MergeCandidates(
		[]domain.Candidate{collab(1, 2)},
		[]domain.Candidate{discovery(1, 5)},
	)

	require.Len(t, merged, 1)
	assert.Equal(t, 5.0, merged[0].BaseScore)
	assert.Equal(t, domain.SourceDiscovery, merged[0].Source)
}

func TestMergeTieKeepsFirstSeen(t *testing.T) {
	merged := MergeCandidates(
		[]domain.Candidate{collab(1, 2)},
		[]domain.Candidate{discovery(1, 2)},
	)

	require.Len(t, merged, 1)
	assert.Equal(t, domain.SourceCollaborative, merged[0].Source)
}

func TestMergeEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeCandidates(nil, nil))
	assert.Len(t, MergeCandidates([]domain.Candidate{collab(1, 1)}, nil), 1)
	assert.Len(t, MergeCandidates(nil, []domain.Candidate{discovery(1, 1)}), 1)
}

func TestMergeOverlapCount(t *testing.T) {
	// 300 collaborative, 200 discovery, 50 shared movies: 450 out.
	var a, b []domain.Candidate
	for i := 1; i <= 300; i++ {
		a = append(a, collab(catalog.MovieID(i), float64(i)))
	}
	for i := 251; i <= 450; i++ {
		b = append(b, discovery(catalog.MovieID(i), 0.5))
	}

	merged := MergeCandidates(a, b)
	assert.Len(t, merged, 450)

	seen := make(map[catalog.MovieID]struct{})
	for _, c := range merged {
		_, dup := seen[c.MovieID]
		require.False(t, dup, "movie %d appears twice", c.MovieID)
		seen[c.MovieID] = struct{}{}
	}
}

func TestMergeDeterministicOrder(t *testing.T) {
	a := []domain.Candidate{collab(5, 1), collab(3, 2), collab(9, 3)}
	b := []domain.Candidate{discovery(3, 9), discovery(7, 1)}

	first := MergeCandidates(a, b)
	for range 10 {
		assert.Equal(t, first, MergeCandidates(a, b))
	}

	// First-seen order is preserved regardless of score.
	ids := make([]catalog.MovieID, len(first))
	for i, c := range first {
		ids[i] = c.MovieID
	}
	assert.Equal(t, []catalog.MovieID{5, 3, 9, 7}, ids, fmt.Sprintf("unexpected order %v", ids))
}
