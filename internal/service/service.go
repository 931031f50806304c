package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/reelrecs/recommendation-engine/internal/cache"
	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/domain"
	"github.com/reelrecs/recommendation-engine/internal/metrics"
	"github.com/reelrecs/recommendation-engine/internal/pipeline"
	"github.com/reelrecs/recommendation-engine/internal/scoring"
	"github.com/reelrecs/recommendation-engine/internal/source"
)

const (
	defaultLimit = 10
	maxLimit     = 50

	// Per-source candidate budgets before merge.
	collabCandidateLimit    = 300
	discoveryCandidateLimit = 200

	batchConcurrency = 10
	batchRecLimit    = 10
)

// Service orchestrates the recommendation pipeline: user context, parallel
// candidate generation, merge, filters, parallel feature derivation, external
// scoring and final ranking.
type Service struct {
	idx       *catalog.Index
	collab    source.Source
	discovery source.Source
	chain     *pipeline.Chain
	engine    *pipeline.Engine
	scorer    scoring.Scorer
	cache     *cache.Cache // nil when caching is disabled
	timeout   time.Duration
	log       zerolog.Logger
}

func NewService(
	idx *catalog.Index,
	collab, discovery source.Source,
	chain *pipeline.Chain,
	engine *pipeline.Engine,
	scorer scoring.Scorer,
	resultCache *cache.Cache,
	timeout time.Duration,
	log zerolog.Logger,
) *Service {
	return &Service{
		idx:       idx,
		collab:    collab,
		discovery: discovery,
		chain:     chain,
		engine:    engine,
		scorer:    scorer,
		cache:     resultCache,
		timeout:   timeout,
		log:       log.With().Str("component", "service").Logger(),
	}
}

func (s *Service) GetRecommendations(ctx context.Context, userID catalog.UserID, limit int) (*domain.RecommendationResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, userID, limit)
		if err != nil {
			s.log.Warn().Err(err).Uint32("user_id", uint32(userID)).Msg("cache get failed")
		}
		if found {
			metrics.CacheHits.WithLabelValues("hit").Inc()
			metrics.RequestsTotal.WithLabelValues("success").Inc()
			return &domain.RecommendationResult{Recommendations: cached, CacheHit: true}, nil
		}
		metrics.CacheHits.WithLabelValues("miss").Inc()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	recs, err := s.generate(ctx, userID, limit)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(statusLabel(err)).Inc()
		return nil, err
	}
	metrics.RequestsTotal.WithLabelValues("success").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, limit, recs); err != nil {
			s.log.Warn().Err(err).Uint32("user_id", uint32(userID)).Msg("cache set failed")
		}
	}

	return &domain.RecommendationResult{Recommendations: recs, CacheHit: false}, nil
}

func (s *Service) generate(ctx context.Context, userID catalog.UserID, limit int) ([]domain.Recommendation, error) {
	uctx, err := source.BuildUserContext(s.idx, userID)
	if err != nil {
		return nil, err
	}

	merged, err := s.generateCandidates(ctx, uctx)
	if err != nil {
		return nil, err
	}

	filterStart := time.Now()
	filtered, err := s.chain.Apply(merged, uctx)
	if err != nil {
		return nil, err
	}
	metrics.StageDuration.WithLabelValues("filter").Observe(time.Since(filterStart).Seconds())

	if len(filtered) == 0 {
		return []domain.Recommendation{}, nil
	}

	featureStart := time.Now()
	feats, err := s.engine.Compute(ctx, filtered, uctx)
	if err != nil {
		return nil, fmt.Errorf("derive features: %w", err)
	}
	metrics.StageDuration.WithLabelValues("features").Observe(time.Since(featureStart).Seconds())

	scoreStart := time.Now()
	scores, err := s.scorer.Score(ctx, userID, feats)
	if err != nil {
		return nil, err
	}
	metrics.StageDuration.WithLabelValues("score").Observe(time.Since(scoreStart).Seconds())

	// The client already validates this, but alignment is what the whole
	// ranking stage rests on, so check again at the point of use.
	if len(scores) != len(filtered) {
		return nil, fmt.Errorf("%w: got %d scores for %d candidates", domain.ErrScoreMismatch, len(scores), len(filtered))
	}

	return s.rank(filtered, scores, limit), nil
}

// generateCandidates runs both sources in parallel and merges their output,
// collaborative candidates first so they win merge ties.
func (s *Service) generateCandidates(ctx context.Context, uctx *domain.UserContext) ([]domain.Candidate, error) {
	start := time.Now()

	var collabCands, discoveryCands []domain.Candidate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		collabCands, err = s.collab.Candidates(gctx, uctx, collabCandidateLimit)
		if err != nil {
			return fmt.Errorf("source %s: %w", s.collab.Name(), err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		discoveryCands, err = s.discovery.Candidates(gctx, uctx, discoveryCandidateLimit)
		if err != nil {
			return fmt.Errorf("source %s: %w", s.discovery.Name(), err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	metrics.StageDuration.WithLabelValues("sources").Observe(time.Since(start).Seconds())

	merged := pipeline.MergeCandidates(collabCands, discoveryCands)

	seen := make(map[catalog.MovieID]struct{}, len(merged))
	for _, c := range merged {
		if _, dup := seen[c.MovieID]; dup {
			return nil, fmt.Errorf("%w: movie %d", domain.ErrDuplicateCandidate, c.MovieID)
		}
		seen[c.MovieID] = struct{}{}
	}

	s.log.Debug().
		Uint32("user_id", uint32(uctx.UserID)).
		Int("collaborative", len(collabCands)).
		Int("discovery", len(discoveryCands)).
		Int("merged", len(merged)).
		Msg("generated candidates")
	return merged, nil
}

// rank orders candidates by final score descending, truncates to the limit
// and resolves movie metadata. Candidates whose movie vanished from the
// catalog are skipped. The sort is stable, so equal scores keep merge order.
func (s *Service) rank(cands []domain.Candidate, scores []float64, limit int) []domain.Recommendation {
	type scored struct {
		cand  domain.Candidate
		score float64
	}
	ranked := make([]scored, len(cands))
	for i, c := range cands {
		ranked[i] = scored{cand: c, score: scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	recs := make([]domain.Recommendation, 0, limit)
	for _, r := range ranked {
		if len(recs) == limit {
			break
		}
		movie, ok := s.idx.GetMovie(r.cand.MovieID)
		if !ok {
			s.log.Warn().Uint32("movie_id", uint32(r.cand.MovieID)).Msg("ranked movie missing from catalog")
			continue
		}
		genres := make([]string, len(movie.Genres))
		for i, g := range movie.Genres {
			genres[i] = string(g)
		}
		recs = append(recs, domain.Recommendation{
			MovieID:     movie.ID,
			Title:       movie.Title,
			Genres:      genres,
			Year:        movie.Year,
			Score:       r.score,
			Source:      r.cand.Source.String(),
			Explanation: fmt.Sprintf("Score: %.2f, Source: %s", r.score, r.cand.Source),
		})
	}
	return recs
}

func (s *Service) GetBatchRecommendations(ctx context.Context, page, limit int) (*domain.BatchResponse, error) {
	start := time.Now()

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	allIDs := s.idx.AllUserIDs()
	offset := (page - 1) * limit
	var userIDs []catalog.UserID
	if offset < len(allIDs) {
		end := offset + limit
		if end > len(allIDs) {
			end = len(allIDs)
		}
		userIDs = allIDs[offset:end]
	}

	results := make([]domain.BatchUserResult, len(userIDs))
	sem := make(chan struct{}, batchConcurrency)
	var wg sync.WaitGroup
	for i, userID := range userIDs {
		wg.Add(1)
		go func(idx int, uid catalog.UserID) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = s.processUserForBatch(ctx, uid)
		}(i, userID)
	}
	wg.Wait()

	successCount, failedCount := 0, 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	return &domain.BatchResponse{
		Page:       page,
		Limit:      limit,
		TotalUsers: len(allIDs),
		Results:    results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

func (s *Service) processUserForBatch(ctx context.Context, userID catalog.UserID) domain.BatchUserResult {
	result, err := s.GetRecommendations(ctx, userID, batchRecLimit)
	if err != nil {
		s.log.Warn().Err(err).Uint32("user_id", uint32(userID)).Msg("batch user failed")
		code, msg := CategorizeError(err)
		return domain.BatchUserResult{
			UserID:  userID,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}
	return domain.BatchUserResult{
		UserID:          userID,
		Recommendations: result.Recommendations,
		Status:          domain.StatusSuccess,
	}
}

// CategorizeError maps pipeline errors onto stable machine-readable codes.
func CategorizeError(err error) (string, string) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found", "user not found"
	case errors.Is(err, domain.ErrScorerUnavailable):
		return "scorer_unavailable", "scoring service failed to respond"
	case errors.Is(err, domain.ErrScoreMismatch):
		return "protocol_violation", "scoring service returned a malformed response"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "request_timeout", "request timed out"
	default:
		return "internal_error", "an unexpected error occurred"
	}
}

func statusLabel(err error) string {
	code, _ := CategorizeError(err)
	return code
}
