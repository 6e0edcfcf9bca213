package tools

// ArgDef describes one tool argument for schema generation.
type ArgDef struct {
	Name        string
	Description string
	Required    bool
}

// ToolDef describes one tool for tools/list responses. All arguments are
// strings on the wire.
type ToolDef struct {
	Name        string
	Description string
	Args        []ArgDef
}

// Catalog returns the fixed tool set in advertisement order.
func Catalog() []ToolDef {
	return []ToolDef{
		{
			Name:        NameGuide,
			Description: "How and when to use the fold tools. Read this once per session before unfolding anything.",
		},
		{
			Name:        NameUnfold,
			Description: "Expand a folded section back to its full detail. Detail tokens count against context until the section is folded again.",
			Args: []ArgDef{
				{Name: "fold_id", Description: "Canonical fold id, e.g. fold-001", Required: true},
			},
		},
		{
			Name:        NameFold,
			Description: "Collapse an unfolded section back to its summary. The detail stays on disk and can be unfolded again later.",
			Args: []ArgDef{
				{Name: "fold_id", Description: "Canonical fold id, e.g. fold-001", Required: true},
			},
		},
		{
			Name:        NameList,
			Description: "List every stored fold with its status, summary, size and relevance score.",
		},
		{
			Name:        NameWriteSummary,
			Description: "Overwrite a fold's summary with a tighter one written in your own words. Token counts are recomputed.",
			Args: []ArgDef{
				{Name: "fold_id", Description: "Canonical fold id, e.g. fold-001", Required: true},
				{Name: "summary", Description: "Replacement summary text", Required: true},
			},
		},
	}
}
