// Package store reads and writes fold state and detail files on disk.
//
// Fold storage lives at .claude/context-folding/ relative to the working
// directory:
//
//	state.json - fold index with summaries, scores, metadata
//	folds/     - full detail markdown files (fold-001.md, etc.)
//
// The index is small and rewritten wholesale on every mutation; detail
// blobs can be arbitrarily large and are read only on demand. A single
// active server process per state directory is assumed — there is no
// locking against concurrent external writers.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/origamifold/origami/internal/errors"
	"github.com/origamifold/origami/internal/fold"
)

const (
	stateFile = "state.json"
	foldsDir  = "folds"
	detailExt = ".md"
)

// DefaultDir returns the fold directory relative to the working directory.
func DefaultDir() string {
	return filepath.Join(".claude", "context-folding")
}

// Store owns the persisted fold index and per-fold detail blobs.
type Store struct {
	baseDir   string
	statePath string
	foldsPath string
}

// New creates a Store rooted at baseDir. An empty baseDir uses DefaultDir.
// Nothing is created on disk until the first write.
func New(baseDir string) *Store {
	if baseDir == "" {
		baseDir = DefaultDir()
	}
	return &Store{
		baseDir:   baseDir,
		statePath: filepath.Join(baseDir, stateFile),
		foldsPath: filepath.Join(baseDir, foldsDir),
	}
}

// Dir returns the store's base directory.
func (s *Store) Dir() string {
	return s.baseDir
}

// Load reads the fold index from disk. A missing or unparseable index
// yields a fresh empty state rather than an error: the store must be
// usable on first run and after external corruption, at the cost of
// silently dropping unreadable state.
func (s *Store) Load() *fold.State {
	data, err := os.ReadFile(s.statePath)
	if err != nil {
		return fold.NewState()
	}

	st := &fold.State{}
	if err := json.Unmarshal(data, st); err != nil {
		return fold.NewState()
	}
	if st.Version == 0 {
		st.Version = 1
	}
	if st.Folds == nil {
		st.Folds = []*fold.Fold{}
	}
	return st
}

// Save persists the fold index. It writes to a temp file and renames it
// into place so a crash mid-write cannot leave a truncated index behind
// (a strengthening of the reference direct overwrite).
func (s *Store) Save(st *fold.State) error {
	if err := s.ensureDirs(); err != nil {
		return errors.NewInternal(err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return errors.NewInternal(err)
	}

	tmp := s.statePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.NewInternal(err)
	}
	if err := os.Rename(tmp, s.statePath); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// ReadDetail reads the full detail blob for a fold id.
// Returns NOT_FOUND if no blob exists for that id.
func (s *Store) ReadDetail(id string) (string, error) {
	data, err := os.ReadFile(s.detailPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewDetailNotFound(id)
		}
		return "", errors.NewInternal(err)
	}
	return string(data), nil
}

// WriteDetail writes the full detail blob for a fold id to folds/<id>.md.
func (s *Store) WriteDetail(id, content string) error {
	if err := s.ensureDirs(); err != nil {
		return errors.NewInternal(err)
	}
	if err := os.WriteFile(s.detailPath(id), []byte(content), 0o644); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// DetailFile returns the index-relative path recorded in a fold's
// detail_file field.
func DetailFile(id string) string {
	return foldsDir + "/" + id + detailExt
}

// Clear deletes all fold state and detail files. Destructive; only the
// CLI reset path calls this.
func (s *Store) Clear() error {
	if err := os.RemoveAll(s.baseDir); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

func (s *Store) detailPath(id string) string {
	return filepath.Join(s.foldsPath, id+detailExt)
}

func (s *Store) ensureDirs() error {
	return os.MkdirAll(s.foldsPath, 0o755)
}
