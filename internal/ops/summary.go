package ops

import (
	"github.com/origamifold/origami/internal/errors"
	"github.com/origamifold/origami/internal/fold"
	"github.com/origamifold/origami/internal/store"
)

// WriteSummaryInput replaces a fold's summary wholesale.
type WriteSummaryInput struct {
	FoldID  string
	Summary string
}

// WriteSummaryOutput reports the recomputed token figures.
type WriteSummaryOutput struct {
	ID                 string
	SummaryTokens      int
	TotalSummaryTokens int
}

// WriteSummary overwrites a fold's summary, re-estimates its token count
// and recomputes the index-wide total from scratch.
func WriteSummary(s *store.Store, in WriteSummaryInput) (*WriteSummaryOutput, error) {
	id, err := canonicalID(in.FoldID)
	if err != nil {
		return nil, err
	}

	st := s.Load()
	f := st.Find(id)
	if f == nil {
		return nil, errors.NewNotFound(id)
	}

	f.Summary = in.Summary
	f.SummaryTokens = fold.EstimateTokens(in.Summary)
	st.RecalcSummaryTokens()

	if err := s.Save(st); err != nil {
		return nil, err
	}

	return &WriteSummaryOutput{
		ID:                 id,
		SummaryTokens:      f.SummaryTokens,
		TotalSummaryTokens: st.TotalSummaryTokens,
	}, nil
}
