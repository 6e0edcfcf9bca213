package fold

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// idPattern matches canonical fold ids. The human-facing command layer is
// responsible for normalizing loose forms ("1", "F003") before they reach
// this package; anything non-canonical is rejected, not guessed at.
var idPattern = regexp.MustCompile(`^fold-\d{3,}$`)

// ValidID reports whether id is in canonical fold-NNN form.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// FormatID renders a sequence number as a canonical id, zero-padded to
// three digits (fold-001, fold-012, fold-1000).
func FormatID(n int) string {
	return fmt.Sprintf("fold-%03d", n)
}

// DisplayID is the compact form used in listings: upper-cased with the
// "fold-" prefix rewritten to "F" (fold-001 -> F001).
func DisplayID(id string) string {
	return strings.Replace(strings.ToUpper(id), "FOLD-", "F", 1)
}

// NextID returns the next sequential id for the index: one past the
// highest existing numeric suffix, fold-001 for an empty index.
func NextID(s *State) string {
	maxNum := 0
	for _, f := range s.Folds {
		if i := strings.LastIndex(f.ID, "-"); i >= 0 {
			if n, err := strconv.Atoi(f.ID[i+1:]); err == nil && n > maxNum {
				maxNum = n
			}
		}
	}
	return FormatID(maxNum + 1)
}
