package tools

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/origamifold/origami/internal/ops"
	"github.com/origamifold/origami/internal/store"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *store.Store) {
	t.Helper()
	s := store.New(t.TempDir())
	return NewDispatcher(s, ""), s
}

func seedFold(t *testing.T, s *store.Store, summary, detail string) string {
	t.Helper()
	out, err := ops.AddFold(s, ops.AddInput{Summary: summary, Detail: detail})
	if err != nil {
		t.Fatalf("seed fold: %v", err)
	}
	return out.ID
}

func TestCall_Unfold(t *testing.T) {
	d, s := newTestDispatcher(t)
	seedFold(t, s, "auth work", "full text here")

	text, err := d.Call(NameUnfold, map[string]any{"fold_id": "fold-001"})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	want := "[fold-001 UNFOLDED - 4 tokens]\n\nfull text here"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestCall_Fold(t *testing.T) {
	d, s := newTestDispatcher(t)
	seedFold(t, s, "auth work", "detail")

	text, err := d.Call(NameFold, map[string]any{"fold_id": "fold-001"})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	want := "[fold-001 FOLDED]\nSummary: auth work"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

// Domain misses come back as plain text with a nil error; the transports
// must never see them as faults.
func TestCall_MissesAreText(t *testing.T) {
	d, s := newTestDispatcher(t)
	seedFold(t, s, "auth work", "detail")

	cases := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{"unknown fold", NameUnfold, map[string]any{"fold_id": "fold-999"}, "fold not found: fold-999"},
		{"missing arg", NameUnfold, map[string]any{}, "missing required argument: fold_id"},
		{"wrong arg type", NameFold, map[string]any{"fold_id": 7}, "argument fold_id must be a string"},
		{"loose id", NameFold, map[string]any{"fold_id": "F001"}, "fold_id must be canonical (fold-NNN), got: F001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, err := d.Call(tc.tool, tc.args)
			if err != nil {
				t.Fatalf("call: %v", err)
			}
			if text != tc.want {
				t.Errorf("text = %q, want %q", text, tc.want)
			}
		})
	}
}

func TestCall_UnknownTool(t *testing.T) {
	d, _ := newTestDispatcher(t)

	text, err := d.Call("bogus_tool", nil)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if text != "unknown tool: bogus_tool" {
		t.Errorf("text = %q", text)
	}
}

func TestListFolds_Empty(t *testing.T) {
	d, _ := newTestDispatcher(t)

	if got := d.ListFolds(); got != "No folds stored yet." {
		t.Errorf("empty list = %q", got)
	}
}

func TestListFolds(t *testing.T) {
	d, s := newTestDispatcher(t)

	if _, err := ops.AddFold(s, ops.AddInput{
		Summary:        "auth>JWT+refresh",
		Detail:         strings.Repeat("x", 1950), // 1950/3.75 = 520 tokens
		RelevanceScore: 0.3,
		FilesTouched:   []string{"src/auth/middleware.ts", "src/auth/cache.ts"},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := ops.AddFold(s, ops.AddInput{
		Summary: "db migration notes",
		Detail:  strings.Repeat("y", 525), // 525/3.75 = 140 tokens
	}); err != nil {
		t.Fatal(err)
	}

	got := d.ListFolds()
	want := strings.Join([]string{
		"[FOLD INDEX - 2 sections, 660 detail tokens stored]",
		"",
		"[F001 | FOLDED | 520 tok | rel:0.30]",
		"auth>JWT+refresh",
		"Files: src/auth/middleware.ts, src/auth/cache.ts",
		"",
		"[F002 | FOLDED | 140 tok | rel:0.00]",
		"db migration notes",
	}, "\n")
	if got != want {
		t.Errorf("list =\n%s\nwant\n%s", got, want)
	}
}

func TestListFolds_ShowsUnfoldedStatus(t *testing.T) {
	d, s := newTestDispatcher(t)
	id := seedFold(t, s, "auth work", "detail")

	if _, err := ops.Unfold(s, ops.UnfoldInput{FoldID: id}); err != nil {
		t.Fatal(err)
	}
	if got := d.ListFolds(); !strings.Contains(got, "| UNFOLDED |") {
		t.Errorf("list missing UNFOLDED status:\n%s", got)
	}
}

func TestCall_WriteSummary(t *testing.T) {
	d, s := newTestDispatcher(t)
	seedFold(t, s, "old summary", "detail")

	text, err := d.Call(NameWriteSummary, map[string]any{
		"fold_id": "fold-001",
		// 34 chars -> 9 tokens
		"summary": "auth>JWT+refresh; fixed race cond.",
	})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if !strings.Contains(text, "updated") {
		t.Errorf("confirmation missing 'updated': %q", text)
	}
	if !strings.Contains(text, "9 tokens") {
		t.Errorf("confirmation missing token count: %q", text)
	}
}

func TestGuide_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guide.md")
	if err := os.WriteFile(path, []byte("# Custom guide\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := NewDispatcher(store.New(dir), path)
	if got := d.Guide(); got != "# Custom guide\n" {
		t.Errorf("guide = %q", got)
	}

	// Cached for the process lifetime: deleting the file changes nothing.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if got := d.Guide(); got != "# Custom guide\n" {
		t.Errorf("guide after delete = %q", got)
	}
}

func TestGuide_Fallback(t *testing.T) {
	d, _ := newTestDispatcher(t)

	got := d.Guide()
	if !strings.Contains(got, "unfold_section") || !strings.Contains(got, "Fold aggressively") {
		t.Errorf("fallback guide = %q", got)
	}
}

func TestCatalog(t *testing.T) {
	defs := Catalog()
	if len(defs) != 5 {
		t.Fatalf("catalog has %d tools, want 5", len(defs))
	}

	byName := map[string]ToolDef{}
	for _, def := range defs {
		byName[def.Name] = def
	}
	for _, name := range []string{NameGuide, NameUnfold, NameFold, NameList, NameWriteSummary} {
		if _, ok := byName[name]; !ok {
			t.Errorf("catalog missing %s", name)
		}
	}

	ws := byName[NameWriteSummary]
	if len(ws.Args) != 2 || !ws.Args[0].Required || !ws.Args[1].Required {
		t.Errorf("write_summary args = %+v", ws.Args)
	}
}
