package ops

import (
	"github.com/origamifold/origami/internal/fold"
	"github.com/origamifold/origami/internal/store"
)

// ListItem is one fold as it appears in a listing.
type ListItem struct {
	ID             string
	DisplayID      string
	Status         fold.Status
	Summary        string
	DetailTokens   int
	RelevanceScore float64
	FilesTouched   []string
}

// ListOutput is the aggregate view over the whole index.
type ListOutput struct {
	Count             int
	TotalDetailTokens int
	Items             []ListItem
}

// List returns every fold in index order with aggregate detail-token
// totals. Read-only; the index is never written.
func List(s *store.Store) *ListOutput {
	st := s.Load()

	out := &ListOutput{
		Count:             len(st.Folds),
		TotalDetailTokens: st.TotalDetailTokens(),
		Items:             make([]ListItem, 0, len(st.Folds)),
	}
	for _, f := range st.Folds {
		out.Items = append(out.Items, ListItem{
			ID:             f.ID,
			DisplayID:      fold.DisplayID(f.ID),
			Status:         f.Status,
			Summary:        f.Summary,
			DetailTokens:   f.DetailTokens,
			RelevanceScore: f.RelevanceScore,
			FilesTouched:   f.FilesTouched,
		})
	}
	return out
}
