// Package store persists verified campground entries in a JSON-backed
// database file. The file is read fully, mutated in memory, and rewritten
// wholesale on every save; there is no locking, so the store assumes a
// single operator.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/rvingwithbikes/campground-cli/internal/model"
)

// Store reads and writes the campground database file.
type Store struct {
	path string
}

// New returns a store backed by the JSON file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the database, or returns a fresh one when the file does not
// exist yet.
func (s *Store) Load() (*model.Database, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.NewDatabase(), nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "store: read %s", s.path)
	}

	var db model.Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, eris.Wrapf(err, "store: parse %s", s.path)
	}
	return &db, nil
}

// Save rewrites the whole database file, pretty-printed with 2-space indent.
func (s *Store) Save(db *model.Database) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return eris.Wrap(err, "store: encode database")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "store: create %s", dir)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return eris.Wrapf(err, "store: write %s", s.path)
	}
	return nil
}

// SaveEntry merges one entry into the database and rewrites the file.
// Returns the updated database and whether an existing entry was replaced.
func (s *Store) SaveEntry(entry model.Entry) (*model.Database, bool, error) {
	db, err := s.Load()
	if err != nil {
		return nil, false, err
	}

	replaced := db.Upsert(entry)
	if err := s.Save(db); err != nil {
		return nil, false, err
	}

	zap.L().Info("entry saved",
		zap.String("path", s.path),
		zap.String("city", entry.City),
		zap.String("campground", entry.CampgroundName()),
		zap.Bool("replaced", replaced),
		zap.Int("total", len(db.Entries)),
	)
	return db, replaced, nil
}
