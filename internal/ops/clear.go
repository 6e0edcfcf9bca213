package ops

import "github.com/origamifold/origami/internal/store"

// Clear wipes all fold state, index and detail blobs alike. Destructive
// and unguarded here; the CLI is the only caller and demands --force.
func Clear(s *store.Store) error {
	return s.Clear()
}
