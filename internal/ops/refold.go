package ops

import (
	"github.com/origamifold/origami/internal/errors"
	"github.com/origamifold/origami/internal/fold"
	"github.com/origamifold/origami/internal/store"
)

// FoldInput identifies the fold to collapse back to its summary.
type FoldInput struct {
	FoldID string
}

// FoldOutput reports the collapsed fold and its surviving summary.
type FoldOutput struct {
	ID      string
	Summary string
}

// Fold collapses a fold back to summary-only. The detail blob is never
// touched; only the status flag changes. Folding an already-folded
// section is a no-op that still reports success.
func Fold(s *store.Store, in FoldInput) (*FoldOutput, error) {
	id, err := canonicalID(in.FoldID)
	if err != nil {
		return nil, err
	}

	st := s.Load()
	f := st.Find(id)
	if f == nil {
		return nil, errors.NewNotFound(id)
	}

	if f.Status != fold.StatusFolded {
		f.Status = fold.StatusFolded
		if err := s.Save(st); err != nil {
			return nil, err
		}
	}

	return &FoldOutput{ID: id, Summary: f.Summary}, nil
}
