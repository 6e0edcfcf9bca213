package ops

import (
	"github.com/origamifold/origami/internal/errors"
	"github.com/origamifold/origami/internal/store"
)

// RelevanceInput carries a new relevance score for one fold.
type RelevanceInput struct {
	FoldID string
	Score  float64
}

// RelevanceOutput reports the score actually stored.
type RelevanceOutput struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// SetRelevance records an externally computed relevance score, clamped
// to [0, 1]. Scores only affect how listings read; nothing here acts on
// them.
func SetRelevance(s *store.Store, in RelevanceInput) (*RelevanceOutput, error) {
	id, err := canonicalID(in.FoldID)
	if err != nil {
		return nil, err
	}

	st := s.Load()
	f := st.Find(id)
	if f == nil {
		return nil, errors.NewNotFound(id)
	}

	score := in.Score
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	f.RelevanceScore = score
	if err := s.Save(st); err != nil {
		return nil, err
	}

	return &RelevanceOutput{ID: id, Score: score}, nil
}
