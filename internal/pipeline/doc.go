package pipeline

// Package pipeline implements the download-validate-place pipeline: it runs
// the fetch capability into an invocation-owned scratch directory, validates
// each produced candidate, and moves accepted files into the user's
// destination directory under sanitized, collision-free names. The scratch
// directory is removed on every exit path.
