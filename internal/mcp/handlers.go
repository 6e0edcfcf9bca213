package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/origamifold/origami/internal/errors"
	"github.com/origamifold/origami/internal/tools"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	dispatcher *tools.Dispatcher
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(d *tools.Dispatcher) *Handlers {
	return &Handlers{dispatcher: d}
}

// Request types for each tool

// UnfoldRequest represents the arguments for unfold_section.
type UnfoldRequest struct {
	FoldID string `json:"fold_id"`
}

// FoldRequest represents the arguments for fold_section.
type FoldRequest struct {
	FoldID string `json:"fold_id"`
}

// WriteSummaryRequest represents the arguments for write_summary.
type WriteSummaryRequest struct {
	FoldID  string `json:"fold_id"`
	Summary string `json:"summary"`
}

// Handler implementations

// HandleGuide handles the origami_guide tool call.
func (h *Handlers) HandleGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(h.dispatcher.Guide()), nil
}

// HandleUnfold handles the unfold_section tool call.
func (h *Handlers) HandleUnfold(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[UnfoldRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	text, err := h.dispatcher.UnfoldSection(input.FoldID)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(text), nil
}

// HandleFold handles the fold_section tool call.
func (h *Handlers) HandleFold(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FoldRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	text, err := h.dispatcher.FoldSection(input.FoldID)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(text), nil
}

// HandleList handles the list_folds tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(h.dispatcher.ListFolds()), nil
}

// HandleWriteSummary handles the write_summary tool call.
func (h *Handlers) HandleWriteSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[WriteSummaryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	text, err := h.dispatcher.WriteSummary(input.FoldID, input.Summary)
	if err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(text), nil
}

// errorResult creates an MCP error result. Only storage failures reach
// here; domain misses already came back as ordinary text from the
// dispatcher. Internal error details stay generic to avoid leaking
// file paths.
func errorResult(err error) *mcp.CallToolResult {
	msg := "an internal error occurred"
	if oErr, ok := errors.From(err); ok && oErr.Code != errors.ErrInternal {
		msg = oErr.Message
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: msg}},
		IsError: true,
	}
}
