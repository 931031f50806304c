package pipeline

import (
	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

// MergeCandidates combines candidate lists from multiple sources into a single
// deduplicated list. When the same movie appears in more than one list the
// candidate with the strictly higher base score wins; on an exact tie the
// earlier occurrence is kept. Output order is first-seen order, which makes
// the merge deterministic for identical inputs.
func MergeCandidates(lists ...[]domain.Candidate) []domain.Candidate {
	byMovie := make(map[catalog.MovieID]int)
	var merged []domain.Candidate

	for _, list := range lists {
		for _, c := range list {
			if i, ok := byMovie[c.MovieID]; ok {
				if c.BaseScore > merged[i].BaseScore {
					merged[i] = c
				}
				continue
			}
			byMovie[c.MovieID] = len(merged)
			merged = append(merged, c)
		}
	}
	return merged
}
