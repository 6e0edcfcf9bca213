// Package mcp is the SDK-backed variant of the origami server. It speaks
// the same tool set as internal/protocol through the same dispatcher;
// which transport runs is a start-up flag, nothing downstream differs.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/origamifold/origami/internal/tools"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	tools.NameGuide: {
		def:     guideToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGuide },
	},
	tools.NameUnfold: {
		def:     unfoldToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleUnfold },
	},
	tools.NameFold: {
		def:     foldToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFold },
	},
	tools.NameList: {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	tools.NameWriteSummary: {
		def:     writeSummaryToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleWriteSummary },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with the origami tools registered.
// Tools listed in disabledTools are excluded from registration.
func NewServer(d *tools.Dispatcher, disabledTools []string, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"origami",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(d)

	disabled := make(map[string]bool)
	for _, name := range disabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(d *tools.Dispatcher, disabledTools []string, version string) error {
	return server.ServeStdio(NewServer(d, disabledTools, version))
}
