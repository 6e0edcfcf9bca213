package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/origamifold/origami/internal/ops"
	"github.com/origamifold/origami/internal/store"
	"github.com/origamifold/origami/internal/tools"
)

// testSetup creates a temporary store and handlers for testing.
func testSetup(t *testing.T) (*Handlers, *store.Store) {
	t.Helper()
	s := store.New(t.TempDir())
	return NewHandlers(tools.NewDispatcher(s, "")), s
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// resultText extracts the text payload from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("content blocks = %d, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func seedFold(t *testing.T, s *store.Store, summary, detail string) string {
	t.Helper()
	out, err := ops.AddFold(s, ops.AddInput{Summary: summary, Detail: detail})
	if err != nil {
		t.Fatalf("seed fold: %v", err)
	}
	return out.ID
}

func TestHandleUnfold(t *testing.T) {
	h, s := testSetup(t)
	seedFold(t, s, "auth work", "full text here")

	result, err := h.HandleUnfold(context.Background(), makeRequest(map[string]any{
		"fold_id": "fold-001",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	want := "[fold-001 UNFOLDED - 4 tokens]\n\nfull text here"
	if got := resultText(t, result); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

// Domain misses come back as ordinary text results, not IsError.
func TestHandleUnfold_UnknownFold(t *testing.T) {
	h, _ := testSetup(t)

	result, err := h.HandleUnfold(context.Background(), makeRequest(map[string]any{
		"fold_id": "fold-404",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result.IsError {
		t.Error("domain miss flagged as error result")
	}
	if got := resultText(t, result); got != "fold not found: fold-404" {
		t.Errorf("text = %q", got)
	}
}

func TestHandleFold(t *testing.T) {
	h, s := testSetup(t)
	id := seedFold(t, s, "auth work", "detail")

	if _, err := ops.Unfold(s, ops.UnfoldInput{FoldID: id}); err != nil {
		t.Fatal(err)
	}

	result, err := h.HandleFold(context.Background(), makeRequest(map[string]any{
		"fold_id": id,
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	want := "[fold-001 FOLDED]\nSummary: auth work"
	if got := resultText(t, result); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestHandleList(t *testing.T) {
	h, s := testSetup(t)

	result, err := h.HandleList(context.Background(), makeRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := resultText(t, result); got != "No folds stored yet." {
		t.Errorf("empty list = %q", got)
	}

	seedFold(t, s, "auth work", "detail")
	result, err = h.HandleList(context.Background(), makeRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := resultText(t, result); !strings.Contains(got, "[F001 | FOLDED |") {
		t.Errorf("list = %q", got)
	}
}

func TestHandleWriteSummary(t *testing.T) {
	h, s := testSetup(t)
	seedFold(t, s, "old", "detail")

	result, err := h.HandleWriteSummary(context.Background(), makeRequest(map[string]any{
		"fold_id": "fold-001",
		"summary": "auth>JWT+refresh; fixed race cond.",
	}))
	if err != nil {
		t.Fatal(err)
	}

	got := resultText(t, result)
	if !strings.Contains(got, "updated") || !strings.Contains(got, "9 tokens") {
		t.Errorf("confirmation = %q", got)
	}
	if s.Load().Find("fold-001").Summary != "auth>JWT+refresh; fixed race cond." {
		t.Error("summary not persisted")
	}
}

func TestHandleGuide(t *testing.T) {
	h, _ := testSetup(t)

	result, err := h.HandleGuide(context.Background(), makeRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := resultText(t, result); !strings.Contains(got, "unfold_section") {
		t.Errorf("guide = %q", got)
	}
}

func TestToolRegistry(t *testing.T) {
	names := AllToolNames()
	if len(names) != 5 {
		t.Fatalf("registered tools = %d, want 5", len(names))
	}

	for _, name := range []string{
		tools.NameGuide, tools.NameUnfold, tools.NameFold, tools.NameList, tools.NameWriteSummary,
	} {
		entry, ok := toolRegistry[name]
		if !ok {
			t.Errorf("registry missing %s", name)
			continue
		}
		if entry.def.Name != name {
			t.Errorf("def name = %q, want %q", entry.def.Name, name)
		}
	}
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{tools.NameList, "bogus_tool"})
	if len(unknown) != 1 || unknown[0] != "bogus_tool" {
		t.Errorf("unknown = %v", unknown)
	}
}

func TestNewServer(t *testing.T) {
	s := store.New(t.TempDir())
	d := tools.NewDispatcher(s, "")

	if srv := NewServer(d, nil, "0.1.0"); srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv := NewServer(d, []string{tools.NameWriteSummary}, "0.1.0"); srv == nil {
		t.Fatal("NewServer with disabled tool returned nil")
	}
}
