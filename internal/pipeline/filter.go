package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reelrecs/recommendation-engine/internal/domain"
)

// Filter removes candidates that should not reach the ranking stage. Filters
// only ever drop candidates; they never add, reorder or rescore them.
type Filter interface {
	Name() string
	Apply(cands []domain.Candidate, uctx *domain.UserContext) ([]domain.Candidate, error)
}

// Chain applies filters in a fixed order, feeding each filter's output into
// the next. An error from any filter aborts the chain.
type Chain struct {
	filters []Filter
	log     zerolog.Logger
}

func NewChain(log zerolog.Logger, filters ...Filter) *Chain {
	return &Chain{filters: filters, log: log.With().Str("component", "filter_chain").Logger()}
}

func (c *Chain) Apply(cands []domain.Candidate, uctx *domain.UserContext) ([]domain.Candidate, error) {
	for _, f := range c.filters {
		in := len(cands)
		out, err := f.Apply(cands, uctx)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", f.Name(), err)
		}
		c.log.Debug().
			Str("filter", f.Name()).
			Int("in", in).
			Int("out", len(out)).
			Msg("applied filter")
		cands = out
	}
	return cands, nil
}
