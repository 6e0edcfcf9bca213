package ops

import (
	"time"

	"github.com/origamifold/origami/internal/errors"
	"github.com/origamifold/origami/internal/fold"
	"github.com/origamifold/origami/internal/store"
)

// AddInput describes a new section to fold away. Summary is optional; a
// missing one is derived from the detail text, truncated to
// SummaryMaxChars (0 means the built-in default).
type AddInput struct {
	Summary         string
	Detail          string
	TurnRange       []int
	RelevanceScore  float64
	FilesTouched    []string
	Tags            []string
	SummaryMaxChars int
}

// AddOutput reports the assigned id and token figures of the new fold.
type AddOutput struct {
	ID            string `json:"id"`
	SummaryTokens int    `json:"summary_tokens"`
	DetailTokens  int    `json:"detail_tokens"`
}

// AddFold stores a new section: the detail blob goes to disk first, then
// the index entry is appended with the next sequential id. The first fold
// of a fresh store stamps the index with a session id.
func AddFold(s *store.Store, in AddInput) (*AddOutput, error) {
	if in.Detail == "" {
		return nil, errors.NewInvalidRequest("detail must not be empty")
	}
	if in.RelevanceScore < 0 || in.RelevanceScore > 1 {
		return nil, errors.NewInvalidRequest("relevance_score must be in [0, 1]")
	}

	st := s.Load()
	id := fold.NextID(st)

	if err := s.WriteDetail(id, in.Detail); err != nil {
		return nil, err
	}

	summary := in.Summary
	if summary == "" {
		summary = fold.DeriveSummary(in.Detail, in.SummaryMaxChars)
	}

	f := &fold.Fold{
		ID:             id,
		Status:         fold.StatusFolded,
		Summary:        summary,
		SummaryTokens:  fold.EstimateTokens(summary),
		DetailTokens:   fold.EstimateTokens(in.Detail),
		DetailFile:     store.DetailFile(id),
		TurnRange:      in.TurnRange,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		RelevanceScore: in.RelevanceScore,
		FilesTouched:   in.FilesTouched,
		Tags:           in.Tags,
	}

	if st.SessionID == nil {
		session, err := newSessionID()
		if err != nil {
			return nil, err
		}
		st.SessionID = &session
	}

	st.Folds = append(st.Folds, f)
	st.RecalcSummaryTokens()

	if err := s.Save(st); err != nil {
		return nil, err
	}

	return &AddOutput{
		ID:            id,
		SummaryTokens: f.SummaryTokens,
		DetailTokens:  f.DetailTokens,
	}, nil
}
