package tools

import (
	"fmt"
	"strings"

	"github.com/origamifold/origami/internal/ops"
)

// renderList formats the fold index the way it appears in the
// conversation: an aggregate header, then one block per fold.
//
//	[FOLD INDEX - 2 sections, 660 detail tokens stored]
//
//	[F001 | FOLDED | 520 tok | rel:0.30]
//	auth>JWT+refresh; fixed race cond.
//	Files: src/auth/middleware.ts
func renderList(out *ops.ListOutput) string {
	if out.Count == 0 {
		return "No folds stored yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[FOLD INDEX - %d sections, %d detail tokens stored]\n",
		out.Count, out.TotalDetailTokens)

	for _, item := range out.Items {
		fmt.Fprintf(&b, "\n[%s | %s | %d tok | rel:%.2f]\n",
			item.DisplayID, strings.ToUpper(string(item.Status)),
			item.DetailTokens, item.RelevanceScore)
		b.WriteString(item.Summary)
		b.WriteByte('\n')
		if len(item.FilesTouched) > 0 {
			fmt.Fprintf(&b, "Files: %s\n", strings.Join(item.FilesTouched, ", "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
