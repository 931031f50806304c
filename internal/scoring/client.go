package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
	"github.com/reelrecs/recommendation-engine/internal/pipeline"
	"github.com/reelrecs/recommendation-engine/internal/scoring/scoringpb"
)

// Scorer assigns a final score to each candidate feature vector. Scores come
// back positionally: scores[i] belongs to feats[i].
type Scorer interface {
	Score(ctx context.Context, userID catalog.UserID, feats []pipeline.Features) ([]float64, error)
}

// Client calls the external scoring service over gRPC, behind a circuit
// breaker so a down scorer fails fast instead of tying up request deadlines.
type Client struct {
	grpc    scoringpb.ScorerClient
	breaker *gobreaker.CircuitBreaker[[]float64]
	log     zerolog.Logger
}

func NewClient(grpcClient scoringpb.ScorerClient, log zerolog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "scorer",
		Timeout: 15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &Client{
		grpc:    grpcClient,
		breaker: gobreaker.NewCircuitBreaker[[]float64](settings),
		log:     log.With().Str("component", "scoring_client").Logger(),
	}
}

func (c *Client) Score(ctx context.Context, userID catalog.UserID, feats []pipeline.Features) ([]float64, error) {
	req := &scoringpb.ScoreRequest{
		UserId:   uint32(userID),
		Features: toProto(feats),
	}

	scores, err := c.breaker.Execute(func() ([]float64, error) {
		resp, err := c.grpc.ScoreCandidates(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrScorerUnavailable, err)
		}
		if got, want := len(resp.GetScores()), len(feats); got != want {
			return nil, fmt.Errorf("%w: got %d scores for %d candidates", domain.ErrScoreMismatch, got, want)
		}
		out := make([]float64, len(resp.GetScores()))
		for i, s := range resp.GetScores() {
			out[i] = float64(s)
		}
		return out, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, fmt.Errorf("%w: %v", domain.ErrScorerUnavailable, err)
		}
		return nil, err
	}
	return scores, nil
}

func toProto(feats []pipeline.Features) []*scoringpb.CandidateFeatures {
	out := make([]*scoringpb.CandidateFeatures, len(feats))
	for i, f := range feats {
		out[i] = &scoringpb.CandidateFeatures{
			MovieId:              uint32(f.MovieID),
			GenreOverlapScore:    float32(f.GenreOverlapScore),
			CollaborativeScore:   float32(f.CollaborativeScore),
			SimilarUsersCount:    f.SimilarUsersCount,
			AvgRating:            float32(f.AvgRating),
			RatingCount:          f.RatingCount,
			PopularityPercentile: float32(f.PopularityPercentile),
			MovieYear:            uint32(f.MovieYear),
			YearPreferenceScore:  float32(f.YearPreferenceScore),
			DaysSinceReleased:    float32(f.DaysSinceReleased),
		}
	}
	return out
}
