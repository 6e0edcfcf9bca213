package fold

// Status marks whether a fold's full detail is considered active context
// by the caller. The store never changes it on its own; only the
// unfold/fold operations do.
type Status string

const (
	StatusFolded   Status = "folded"
	StatusUnfolded Status = "unfolded"
)

// Fold is one stored conversation section: a summary that stays visible
// plus a detail blob kept on disk under folds/<id>.md.
type Fold struct {
	// ID is the canonical sequential identifier, "fold-001" style
	ID string `json:"id"`

	// Status is "folded" or "unfolded"
	Status Status `json:"status"`

	// Summary is the self-compressed description (may be empty until
	// first written)
	Summary string `json:"summary"`

	// SummaryTokens is derived from Summary by EstimateTokens, never
	// hand-set
	SummaryTokens int `json:"summary_tokens"`

	// DetailTokens is the estimated size of the detail blob, set when
	// the blob is created and treated as fixed afterwards
	DetailTokens int `json:"detail_tokens"`

	// DetailFile is the index-relative path of the detail blob
	DetailFile string `json:"detail_file"`

	// TurnRange is the [first, last] transcript turn the section covers
	TurnRange []int `json:"turn_range,omitempty"`

	// Timestamp is the UTC creation time in RFC 3339 form
	Timestamp string `json:"timestamp,omitempty"`

	// RelevanceScore in [0,1] is set by the external librarian and
	// stored verbatim
	RelevanceScore float64 `json:"relevance_score"`

	// FilesTouched lists file paths mentioned in the section
	FilesTouched []string `json:"files_touched,omitempty"`

	// Tags is a list of free-form labels
	Tags []string `json:"tags,omitempty"`
}

// State is the whole fold index as persisted in state.json.
type State struct {
	Version            int     `json:"version"`
	SessionID          *string `json:"session_id"`
	TotalSummaryTokens int     `json:"total_summary_tokens"`
	Folds              []*Fold `json:"folds"`
}

// NewState returns a fresh empty index.
func NewState() *State {
	return &State{
		Version: 1,
		Folds:   []*Fold{},
	}
}

// Find returns the fold with the given id, or nil. Exact match only;
// loose forms like "1" or "F003" are the caller's problem.
func (s *State) Find(id string) *Fold {
	for _, f := range s.Folds {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// RecalcSummaryTokens recomputes TotalSummaryTokens as the full sum over
// all folds. Always a recompute, never an increment, so the invariant
// holds even if individual records were edited externally.
func (s *State) RecalcSummaryTokens() {
	total := 0
	for _, f := range s.Folds {
		total += f.SummaryTokens
	}
	s.TotalSummaryTokens = total
}

// TotalDetailTokens sums the stored detail_tokens across all folds.
func (s *State) TotalDetailTokens() int {
	total := 0
	for _, f := range s.Folds {
		total += f.DetailTokens
	}
	return total
}
