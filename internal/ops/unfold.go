package ops

import (
	"github.com/origamifold/origami/internal/errors"
	"github.com/origamifold/origami/internal/fold"
	"github.com/origamifold/origami/internal/store"
)

// UnfoldInput identifies the fold whose detail should be expanded.
type UnfoldInput struct {
	FoldID string
}

// UnfoldOutput carries the expanded detail. DetailTokens is re-estimated
// from the blob actually read, not the figure stored in the index.
type UnfoldOutput struct {
	ID           string
	DetailTokens int
	Detail       string
}

// Unfold reads the full detail blob for a fold and marks it unfolded.
// The status flip is persisted only after the blob has been read, so a
// missing detail file leaves the index untouched.
func Unfold(s *store.Store, in UnfoldInput) (*UnfoldOutput, error) {
	id, err := canonicalID(in.FoldID)
	if err != nil {
		return nil, err
	}

	st := s.Load()
	f := st.Find(id)
	if f == nil {
		return nil, errors.NewNotFound(id)
	}

	detail, err := s.ReadDetail(id)
	if err != nil {
		return nil, err
	}

	f.Status = fold.StatusUnfolded
	if err := s.Save(st); err != nil {
		return nil, err
	}

	return &UnfoldOutput{
		ID:           id,
		DetailTokens: fold.EstimateTokens(detail),
		Detail:       detail,
	}, nil
}
