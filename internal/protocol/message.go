// Package protocol implements the framed JSON-RPC 2.0 transport the
// origami server speaks on stdio: each message is a Content-Length header
// block, a blank line, then exactly that many bytes of JSON body.
package protocol

import "encoding/json"

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInternalError  = -32603
)

// Request is an incoming JSON-RPC request or notification. ID is kept raw
// so number and string ids echo back byte-for-byte; a nil ID marks a
// notification.
type Request struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

// Notification reports whether the request carries no id and therefore
// must never be answered.
func (r *Request) Notification() bool {
	return r.ID == nil
}

// Response is an outgoing JSON-RPC response. ID marshals as null when
// the request id could not be recovered (parse faults).
type Response struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id"`
	Result  any              `json:"result,omitempty"`
	Error   *ResponseError   `json:"error,omitempty"`
}

// ResponseError is the error member of a failed response.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func result(id *json.RawMessage, v any) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Result: v}
}

func fault(id *json.RawMessage, code int, msg string) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Error: &ResponseError{Code: code, Message: msg}}
}
