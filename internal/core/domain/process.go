package domain

import "time"

// StdioMode selects how a spawned process's output streams are handled.
type StdioMode int

const (
	// StdioInherit passes the parent's stdout and stderr straight through.
	StdioInherit StdioMode = iota

	// StdioCapture buffers stdout and stderr into the ProcessResult.
	StdioCapture
)

// ProcessSpec describes a single external command invocation.
type ProcessSpec struct {
	// Command is the executable to run, resolved via PATH if not absolute.
	Command string

	// Args are the command arguments, without the command itself.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env holds additional environment variables in key=value form,
	// appended to the inherited environment.
	Env []string

	// Timeout bounds the process lifetime. Must be positive; the runner
	// rejects a zero or negative value before spawning anything.
	Timeout time.Duration

	// Stdio selects inherit or capture for the output streams.
	Stdio StdioMode
}

// ProcessResult holds the captured output of a completed process.
// Both fields are empty under StdioInherit.
type ProcessResult struct {
	Stdout []byte
	Stderr []byte
}
