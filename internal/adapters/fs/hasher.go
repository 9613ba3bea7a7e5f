// Package fs provides filesystem hashing for the push cache.
package fs

import (
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/freighter/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TreeHasher = (*Hasher)(nil)

// Hasher computes XXHash digests over directory trees.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashTree computes a single hash covering every file's relative path, mode
// and content under root. Entries are visited in sorted order so the hash
// is deterministic across platforms. The freighter metadata directory is
// excluded, as its contents change as a consequence of pushing.
func (h *Hasher) HashTree(root string) (string, error) {
	hasher := xxhash.New()

	paths, err := collectPaths(root)
	if err != nil {
		return "", err
	}
	sort.Strings(paths)

	for _, rel := range paths {
		path := filepath.Join(root, rel)
		info, err := os.Lstat(path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
		}

		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(info.Mode().String())
		_, _ = hasher.Write([]byte{0})

		if info.Mode().IsRegular() {
			if err := hashFileContent(hasher, path); err != nil {
				return "", err
			}
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func collectPaths(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, entry iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() && entry.Name() == domain.FreighterDirName {
			return filepath.SkipDir
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk tree"), "root", root)
	}
	return paths, nil
}

func hashFileContent(hasher *xxhash.Digest, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking the tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(hasher, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return nil
}
