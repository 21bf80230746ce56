package model

// Package model defines domain data structures used across the app: source
// requests, scratch candidates, validation verdicts, accepted files, and
// per-candidate diagnostics. Structures are designed for direct binding in
// the UI and explicit state transitions.
