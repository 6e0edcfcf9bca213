package fold

import (
	"strings"
	"testing"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty text floors at one", text: "", want: 1},
		{name: "single char floors at one", text: "x", want: 1},
		{name: "three chars", text: "abc", want: 1},
		{name: "14 chars rounds up", text: "full text here", want: 4}, // 14/3.75 = 3.73
		{name: "15 chars exact", text: "exactly15chars!", want: 4},    // 15/3.75 = 4.0
		{name: "100 chars", text: strings.Repeat("a", 100), want: 27}, // 100/3.75 = 26.67
		{name: "750 chars", text: strings.Repeat("b", 750), want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateTokens(tt.text); got != tt.want {
				t.Errorf("EstimateTokens(%d chars) = %d, want %d", len(tt.text), got, tt.want)
			}
		})
	}
}

// TestEstimateTokens_Runes verifies the estimate counts runes, not bytes,
// so multi-byte text doesn't inflate stored counts.
func TestEstimateTokens_Runes(t *testing.T) {
	ascii := strings.Repeat("e", 30)
	accented := strings.Repeat("é", 30)

	if got, want := EstimateTokens(accented), EstimateTokens(ascii); got != want {
		t.Errorf("accented estimate = %d, ascii estimate = %d; rune counts should match", got, want)
	}
}

func TestRecalcSummaryTokens(t *testing.T) {
	s := NewState()
	s.Folds = []*Fold{
		{ID: "fold-001", SummaryTokens: 5},
		{ID: "fold-002", SummaryTokens: 7},
	}

	s.RecalcSummaryTokens()
	if s.TotalSummaryTokens != 12 {
		t.Fatalf("TotalSummaryTokens = %d, want 12", s.TotalSummaryTokens)
	}

	// A recompute replaces stale totals rather than incrementing them.
	s.Folds[0].SummaryTokens = 9
	s.RecalcSummaryTokens()
	if s.TotalSummaryTokens != 16 {
		t.Fatalf("TotalSummaryTokens after edit = %d, want 16", s.TotalSummaryTokens)
	}
}

func TestTotalDetailTokens(t *testing.T) {
	s := NewState()
	if s.TotalDetailTokens() != 0 {
		t.Fatalf("empty state detail total = %d, want 0", s.TotalDetailTokens())
	}

	s.Folds = []*Fold{
		{ID: "fold-001", DetailTokens: 520},
		{ID: "fold-002", DetailTokens: 480},
	}
	if got := s.TotalDetailTokens(); got != 1000 {
		t.Fatalf("detail total = %d, want 1000", got)
	}
}
