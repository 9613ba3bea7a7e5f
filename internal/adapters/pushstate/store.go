// Package pushstate persists witnesses of completed pushes.
package pushstate

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.PushStore using a file-per-record strategy under
// the project's metadata directory.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given project directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Get retrieves the record for the given tree hash. A missing record is
// (nil, nil), not an error.
func (s *Store) Get(treeHash string) (*domain.PushRecord, error) {
	filename := s.filename(treeHash)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var record domain.PushRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &record, nil
}

// Put stores a record, replacing any previous record for its tree hash.
func (s *Store) Put(record *domain.PushRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(record.TreeHash)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) filename(treeHash string) string {
	hash := sha256.Sum256([]byte(treeHash))
	hexHash := hex.EncodeToString(hash[:])
	return filepath.Join(s.root, domain.DefaultStorePath(), hexHash+".json")
}
