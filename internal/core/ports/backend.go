package ports

import "context"

//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

// BuildBackend produces build artifacts into a staging directory.
//
// Build runs the backend's toolchain against the project at projectPath and
// places every produced artifact under outputPath. Implementations validate
// their inputs before spawning any process and never write outside
// outputPath. An empty outputPath after a successful build is legal and is
// the caller's concern.
type BuildBackend interface {
	Build(ctx context.Context, projectPath, outputPath string) error
}
