package fetch

import "fmt"

// Error wraps a failure of the external fetch/transcode capability: bad URL,
// network failure, restricted content. It aborts the whole request.
type Error struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}
