package handler

import (
	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
)

type RecommendationResponse struct {
	UserID          catalog.UserID            `json:"user_id"`
	Recommendations []domain.Recommendation   `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
