package protocol

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/origamifold/origami/internal/tools"
)

const protocolVersion = "2024-11-05"

// Server answers initialize, tools/list and tools/call over a framed
// stream. One request at a time, in arrival order; the fold store is
// single-writer so there is nothing to parallelize.
type Server struct {
	dispatcher *tools.Dispatcher
	name       string
	version    string
}

// NewServer creates a protocol server over the given dispatcher.
func NewServer(d *tools.Dispatcher, name, version string) *Server {
	return &Server{dispatcher: d, name: name, version: version}
}

// Serve reads framed requests from in until EOF, writing responses to
// out. Notifications are consumed without reply.
func (s *Server) Serve(in io.Reader, out io.Writer) error {
	var dec Decoder
	chunk := make([]byte, 4096)

	for {
		n, err := in.Read(chunk)
		if n > 0 {
			dec.Feed(chunk[:n])
			for {
				body, ok := dec.Next()
				if !ok {
					break
				}
				if resp := s.Handle(body); resp != nil {
					data, err := json.Marshal(resp)
					if err != nil {
						return err
					}
					if err := WriteMessage(out, data); err != nil {
						return err
					}
				}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Handle processes one message body and returns the response, or nil
// when the message is a notification.
func (s *Server) Handle(body []byte) *Response {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return fault(nil, codeParseError, "parse error: "+err.Error())
	}
	if req.Notification() {
		return nil
	}
	if req.Method == "" {
		return fault(req.ID, codeInvalidRequest, "missing method")
	}

	switch req.Method {
	case "initialize":
		return result(req.ID, s.initializeResult())
	case "tools/list":
		return result(req.ID, map[string]any{"tools": toolList()})
	case "tools/call":
		return s.callTool(&req)
	default:
		return fault(req.ID, codeMethodNotFound, "method not found: "+req.Method)
	}
}

func (s *Server) initializeResult() map[string]any {
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities":    map[string]any{"tools": map[string]any{}},
		"serverInfo":      map[string]any{"name": s.name, "version": s.version},
	}
}

// toolList renders the catalog as tool descriptors with JSON Schema
// input shapes.
func toolList() []map[string]any {
	defs := tools.Catalog()
	out := make([]map[string]any, 0, len(defs))
	for _, def := range defs {
		properties := map[string]any{}
		required := []string{}
		for _, arg := range def.Args {
			properties[arg.Name] = map[string]any{
				"type":        "string",
				"description": arg.Description,
			}
			if arg.Required {
				required = append(required, arg.Name)
			}
		}
		schema := map[string]any{
			"type":       "object",
			"properties": properties,
		}
		if len(required) > 0 {
			schema["required"] = required
		}
		out = append(out, map[string]any{
			"name":        def.Name,
			"description": def.Description,
			"inputSchema": schema,
		})
	}
	return out
}

func (s *Server) callTool(req *Request) *Response {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return fault(req.ID, codeInvalidRequest, "bad params: "+err.Error())
		}
	}

	text, err := s.dispatcher.Call(params.Name, params.Arguments)
	if err != nil {
		return fault(req.ID, codeInternalError, fmt.Sprintf("%s: %v", params.Name, err))
	}
	return result(req.ID, map[string]any{
		"content": []map[string]any{{"type": "text", "text": text}},
	})
}
