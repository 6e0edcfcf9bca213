package protocol

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decoder extracts framed message bodies from a byte stream. Callers
// Feed it whatever chunks arrive off the wire; Next yields complete
// bodies as soon as enough bytes have accumulated. Chunk boundaries are
// meaningless: a frame may arrive byte by byte or many frames at once.
type Decoder struct {
	buf []byte
}

// Feed appends raw bytes from the stream.
func (d *Decoder) Feed(p []byte) {
	d.buf = append(d.buf, p...)
}

// Next returns the next complete message body, or ok=false when the
// buffered bytes do not yet hold one. A header block without a usable
// Content-Length is discarded through its terminator and scanning
// resumes; bytes are never consumed until a full frame is present.
func (d *Decoder) Next() ([]byte, bool) {
	for {
		idx, termLen := findTerminator(d.buf)
		if idx < 0 {
			return nil, false
		}

		length, err := contentLength(d.buf[:idx])
		if err != nil {
			// Malformed header block: skip it and keep scanning.
			d.buf = d.buf[idx+termLen:]
			continue
		}

		start := idx + termLen
		if len(d.buf) < start+length {
			return nil, false
		}

		body := make([]byte, length)
		copy(body, d.buf[start:start+length])
		d.buf = d.buf[start+length:]
		return body, true
	}
}

// findTerminator locates the earliest blank line ending a header block,
// accepting both \r\n\r\n and bare \n\n.
func findTerminator(buf []byte) (idx, termLen int) {
	crlf := bytes.Index(buf, []byte("\r\n\r\n"))
	lf := bytes.Index(buf, []byte("\n\n"))
	switch {
	case crlf < 0 && lf < 0:
		return -1, 0
	case lf < 0 || (crlf >= 0 && crlf < lf):
		return crlf, 4
	default:
		return lf, 2
	}
}

// contentLength parses the Content-Length value out of a header block.
func contentLength(header []byte) (int, error) {
	for _, line := range strings.Split(string(header), "\n") {
		line = strings.TrimRight(line, "\r")
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("bad Content-Length %q", strings.TrimSpace(value))
		}
		return n, nil
	}
	return 0, fmt.Errorf("no Content-Length header")
}

// WriteMessage frames and writes one message body.
func WriteMessage(w io.Writer, body []byte) error {
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}
