package domain

import "github.com/reelrecs/recommendation-engine/internal/catalog"

// SourceTag identifies which candidate source produced a candidate.
type SourceTag uint8

const (
	// SourceCollaborative is the in-network source: "users similar to you
	// liked this".
	SourceCollaborative SourceTag = iota
	// SourceDiscovery is the out-of-network source: genre, popularity and era
	// based exploration.
	SourceDiscovery
)

func (t SourceTag) String() string {
	switch t {
	case SourceCollaborative:
		return "collaborative"
	case SourceDiscovery:
		return "discovery"
	default:
		return "unknown"
	}
}

// CandidateMetadata carries optional provenance details attached by a source.
type CandidateMetadata struct {
	SimilarUsersCount uint32
	MatchedGenres     []catalog.Genre
	FromPopularity    bool
	FromTemporal      bool
}

// Candidate is a movie proposed for recommendation before filtering and
// scoring. Base scores are strategy-specific and not comparable across
// sources. A candidate is never mutated after creation, except that merge may
// overwrite the score of a duplicate with the higher one.
type Candidate struct {
	MovieID   catalog.MovieID
	Source    SourceTag
	BaseScore float64
	Metadata  CandidateMetadata
}
