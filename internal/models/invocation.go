package models

import "time"

// Invocation records a single toolbox call
type Invocation struct {
	// ID is unique per call and also names the call's workspace
	ID string

	// Tool is the toolbox subcommand
	Tool string

	// Argv is the full command line, executable first
	Argv []string

	// ExitCode is the process exit status, or -1 when the process never ran
	ExitCode int

	// Duration covers the whole call including serialization
	Duration time.Duration

	// Stderr holds the tail of the tool's error output
	Stderr string

	// Error is the error returned to the caller, empty on success
	Error string

	// StartedAt is when the call began
	StartedAt time.Time
}

// Succeeded reports whether the call completed without error
func (i Invocation) Succeeded() bool {
	return i.Error == "" && i.ExitCode == 0
}
