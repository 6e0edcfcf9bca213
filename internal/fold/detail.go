package fold

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// DefaultSummaryChars caps derived fallback summaries, matching the
// placeholder length the compaction writer historically used.
const DefaultSummaryChars = 200

var md = goldmark.New()

// DeriveSummary builds a placeholder summary from a detail blob for folds
// created without one. Detail blobs are markdown: prefer the first heading,
// then the first paragraph, then the flattened prefix of the raw text.
// The result is whitespace-collapsed and truncated to maxChars runes.
func DeriveSummary(detail string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultSummaryChars
	}

	src := []byte(detail)
	root := md.Parser().Parse(gmtext.NewReader(src))

	var heading, para string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			if heading == "" {
				heading = nodeText(n, src)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if para == "" {
				para = nodeText(n, src)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	summary := heading
	if summary == "" {
		summary = para
	}
	if summary == "" {
		summary = detail
	}
	return truncateRunes(collapseSpace(summary), maxChars)
}

// nodeText flattens the literal text content under a node.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// collapseSpace squashes all runs of whitespace (including newlines) into
// single spaces and trims the ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
