package model

import (
	"path/filepath"
	"time"
)

// AcceptedFile is a validated candidate that has been moved into the
// destination directory. Ownership transfers to the user on creation.
type AcceptedFile struct {
	FinalPath    string // absolute path inside the destination directory
	SizeBytes    int64
	ModifiedTime time.Time
}

// Name returns the bare filename for display.
func (f AcceptedFile) Name() string {
	return filepath.Base(f.FinalPath)
}

// DiagnosticKind classifies per-candidate pipeline diagnostics.
type DiagnosticKind string

const (
	// DiagnosticAccepted records a successful validate-and-place.
	DiagnosticAccepted DiagnosticKind = "Accepted"

	// DiagnosticDiscarded records a candidate removed after failing validation.
	DiagnosticDiscarded DiagnosticKind = "Discarded"

	// DiagnosticPlacementFailed records a validated candidate the resolver
	// could not move into the destination.
	DiagnosticPlacementFailed DiagnosticKind = "PlacementFailed"
)

// Diagnostic is one per-candidate record emitted by the pipeline.
type Diagnostic struct {
	Kind          DiagnosticKind
	CandidateName string // bare filename of the scratch candidate
	Reason        string // empty for accepted candidates
}

// Result aggregates everything one pipeline run produced. An empty Accepted
// list is a valid outcome, not an error.
type Result struct {
	RunID       string // correlates diagnostics with one invocation
	Accepted    []AcceptedFile
	Diagnostics []Diagnostic
}

// DiscardCount returns the number of candidates dropped during validation.
func (r Result) DiscardCount() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Kind == DiagnosticDiscarded {
			n++
		}
	}
	return n
}
