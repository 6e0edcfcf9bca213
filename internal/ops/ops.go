// Package ops implements the fold operations behind the Origami tools.
// Operations are strongly typed; rendering to the plain-text tool payloads
// happens at the dispatcher boundary, not here.
package ops

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/origamifold/origami/internal/errors"
	"github.com/origamifold/origami/internal/fold"
)

// canonicalID trims and validates a caller-supplied fold id. Loose forms
// ("1", "F003") are a command-layer concern; here they fail outright.
func canonicalID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if !fold.ValidID(id) {
		return "", errors.NewInvalidRequest("fold_id must be canonical (fold-NNN), got: " + id)
	}
	return id, nil
}

// newSessionID generates a ULID for stamping a fresh store.
func newSessionID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	return id.String(), nil
}
