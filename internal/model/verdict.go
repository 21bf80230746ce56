package model

// Outcome classifies the result of probing one scratch candidate.
type Outcome string

const (
	// OutcomeAccepted means the candidate decodes cleanly as the target format.
	OutcomeAccepted Outcome = "Accepted"

	// OutcomeRejected means a probe ran and the candidate failed it.
	OutcomeRejected Outcome = "Rejected"

	// OutcomeToolUnavailable means no inspection tool was found on PATH,
	// so nothing could vouch for the candidate.
	OutcomeToolUnavailable Outcome = "ToolUnavailable"

	// OutcomeToolFailed means an inspection tool was present but crashed,
	// timed out, or exited abnormally while probing.
	OutcomeToolFailed Outcome = "ToolFailed"
)

// String returns the string representation of Outcome.
func (o Outcome) String() string {
	return string(o)
}

// Accepted reports whether the outcome allows placement.
func (o Outcome) Accepted() bool {
	return o == OutcomeAccepted
}

// ScratchCandidate is a file produced by the fetch capability inside the
// pipeline-owned scratch directory. It never outlives one invocation.
type ScratchCandidate struct {
	Path      string // absolute path inside the scratch directory
	TitleStem string // filename without extension, pre-sanitization
}

// Verdict is the validator's judgement of one candidate.
type Verdict struct {
	Candidate ScratchCandidate
	Outcome   Outcome
	Reason    string // empty for accepted candidates
}
