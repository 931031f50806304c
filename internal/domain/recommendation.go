package domain

import "github.com/reelrecs/recommendation-engine/internal/catalog"

// Recommendation is the terminal, caller-facing record built by the ranker.
type Recommendation struct {
	MovieID     catalog.MovieID `json:"movie_id"`
	Title       string          `json:"title"`
	Genres      []string        `json:"genres"`
	Year        int             `json:"year,omitempty"`
	Score       float64         `json:"score"`
	Source      string          `json:"source"`
	Explanation string          `json:"explanation"`
}

// RecommendationResult pairs a ranked list with cache provenance.
type RecommendationResult struct {
	Recommendations []Recommendation
	CacheHit        bool
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

// Batch response types for the paged batch endpoint.

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type BatchUserResult struct {
	UserID          catalog.UserID   `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Status          string           `json:"status"`
	Error           string           `json:"error,omitempty"`
	Message         string           `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchResponse struct {
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalUsers int               `json:"total_users"`
	Results    []BatchUserResult `json:"results"`
	Summary    BatchSummary      `json:"summary"`
	Metadata   BatchMeta         `json:"metadata"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}
