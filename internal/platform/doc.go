package platform

// Package platform contains OS/platform integration and filesystem glue:
// filename sanitization, directory helpers, external tool discovery, and
// OS open/reveal for accepted files.
