package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/origamifold/origami/internal/tools"
)

// Tool definitions, built from the shared catalog so both server
// variants advertise identical schemas.

var (
	guideToolDef        = buildToolDef(tools.NameGuide)
	unfoldToolDef       = buildToolDef(tools.NameUnfold)
	foldToolDef         = buildToolDef(tools.NameFold)
	listToolDef         = buildToolDef(tools.NameList)
	writeSummaryToolDef = buildToolDef(tools.NameWriteSummary)
)

func buildToolDef(name string) mcp.Tool {
	for _, def := range tools.Catalog() {
		if def.Name != name {
			continue
		}
		opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
		for _, arg := range def.Args {
			strOpts := []mcp.PropertyOption{mcp.Description(arg.Description)}
			if arg.Required {
				strOpts = append(strOpts, mcp.Required())
			}
			opts = append(opts, mcp.WithString(arg.Name, strOpts...))
		}
		return mcp.NewTool(name, opts...)
	}
	panic("unknown tool in catalog: " + name)
}
