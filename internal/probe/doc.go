package probe

// Package probe validates candidate output files by invoking ffprobe and
// ffmpeg as read-only subprocesses. Tool errors become verdicts, never
// propagated failures, so the pipeline can keep evaluating candidates.
