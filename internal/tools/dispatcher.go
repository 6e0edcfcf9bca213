// Package tools exposes the origami tool set behind a transport-agnostic
// dispatcher. Both protocol servers route tools/call traffic through
// Dispatcher.Call; rendering to the plain-text payloads lives here so the
// transports stay dumb pipes.
package tools

import (
	"fmt"
	"path/filepath"

	"github.com/origamifold/origami/internal/errors"
	"github.com/origamifold/origami/internal/ops"
	"github.com/origamifold/origami/internal/store"
)

// Tool names as advertised to clients.
const (
	NameGuide        = "origami_guide"
	NameUnfold       = "unfold_section"
	NameFold         = "fold_section"
	NameList         = "list_folds"
	NameWriteSummary = "write_summary"
)

// Dispatcher routes tool calls to the fold operations and renders their
// results as plain text. Domain misses (unknown fold, bad arguments,
// unknown tool) come back as text too; only storage failures surface as
// errors for the transport to report as faults.
type Dispatcher struct {
	store     *store.Store
	guidePath string
	guide     guideCache
}

// NewDispatcher creates a dispatcher over the given store. An empty
// guidePath defaults to guide.md inside the fold directory.
func NewDispatcher(s *store.Store, guidePath string) *Dispatcher {
	if guidePath == "" {
		guidePath = filepath.Join(s.Dir(), "guide.md")
	}
	return &Dispatcher{store: s, guidePath: guidePath}
}

// Call dispatches a named tool with loosely typed arguments, as they
// arrive from a tools/call request.
func (d *Dispatcher) Call(name string, args map[string]any) (string, error) {
	switch name {
	case NameGuide:
		return d.Guide(), nil
	case NameUnfold:
		id, err := stringArg(args, "fold_id")
		if err != nil {
			return missText(err)
		}
		return d.UnfoldSection(id)
	case NameFold:
		id, err := stringArg(args, "fold_id")
		if err != nil {
			return missText(err)
		}
		return d.FoldSection(id)
	case NameList:
		return d.ListFolds(), nil
	case NameWriteSummary:
		id, err := stringArg(args, "fold_id")
		if err != nil {
			return missText(err)
		}
		summary, err := stringArg(args, "summary")
		if err != nil {
			return missText(err)
		}
		return d.WriteSummary(id, summary)
	default:
		return fmt.Sprintf("unknown tool: %s", name), nil
	}
}

// UnfoldSection expands a fold and returns its full detail.
func (d *Dispatcher) UnfoldSection(foldID string) (string, error) {
	out, err := ops.Unfold(d.store, ops.UnfoldInput{FoldID: foldID})
	if err != nil {
		return missText(err)
	}
	return fmt.Sprintf("[%s UNFOLDED - %d tokens]\n\n%s", out.ID, out.DetailTokens, out.Detail), nil
}

// FoldSection collapses a fold back to its summary.
func (d *Dispatcher) FoldSection(foldID string) (string, error) {
	out, err := ops.Fold(d.store, ops.FoldInput{FoldID: foldID})
	if err != nil {
		return missText(err)
	}
	return fmt.Sprintf("[%s FOLDED]\nSummary: %s", out.ID, out.Summary), nil
}

// ListFolds renders the whole index.
func (d *Dispatcher) ListFolds() string {
	return renderList(ops.List(d.store))
}

// WriteSummary replaces a fold's summary and reports the new token totals.
func (d *Dispatcher) WriteSummary(foldID, summary string) (string, error) {
	out, err := ops.WriteSummary(d.store, ops.WriteSummaryInput{FoldID: foldID, Summary: summary})
	if err != nil {
		return missText(err)
	}
	return fmt.Sprintf("[%s summary updated - %d tokens]\nTotal summary tokens: %d",
		out.ID, out.SummaryTokens, out.TotalSummaryTokens), nil
}

// missText converts domain misses into plain-text results. Anything else
// is a real failure and propagates.
func missText(err error) (string, error) {
	if oErr, ok := errors.From(err); ok {
		if oErr.Code == errors.ErrNotFound || oErr.Code == errors.ErrInvalidRequest {
			return oErr.Message, nil
		}
	}
	return "", err
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", errors.NewInvalidRequest(fmt.Sprintf("missing required argument: %s", key))
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.NewInvalidRequest(fmt.Sprintf("argument %s must be a string", key))
	}
	return s, nil
}
