package ports

//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks

// TreeHasher computes a deterministic hash over a directory tree.
// The hash covers relative paths, file modes and file contents, so any
// change to the tree changes the hash.
type TreeHasher interface {
	HashTree(root string) (string, error)
}
