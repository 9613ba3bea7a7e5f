package domain

import "time"

// PipelineResult is the outcome of a successful push.
type PipelineResult struct {
	// Digest is the content digest the registry assigned. Opaque.
	Digest string

	// Name is the project name the digest was bound to.
	Name string

	// Reused reports that the push was skipped because the project tree
	// was unchanged since the last recorded push.
	Reused bool
}

// PushRecord is the persisted witness of a completed push, keyed by the
// local tree hash so unchanged trees can skip the remote round trip.
type PushRecord struct {
	Project  string    `json:"project"`
	TreeHash string    `json:"tree_hash"`
	Digest   string    `json:"digest"`
	PushedAt time.Time `json:"pushed_at"`
}

// ExecutionSuccess is the success arm of a worker execution outcome.
type ExecutionSuccess struct {
	// Body is the raw response payload produced by the executed artifact.
	Body []byte
}

// ExecutionProblem is the failure arm of a worker execution outcome,
// shaped like an RFC 7807 problem document.
type ExecutionProblem struct {
	Type       string
	Detail     string
	Instance   string
	Extensions map[string]string
}

// ExecutionOutcome is the result of a remote execution. Exactly one of
// Success or Problem is non-nil.
type ExecutionOutcome struct {
	Success *ExecutionSuccess
	Problem *ExecutionProblem
}
