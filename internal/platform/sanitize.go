package platform

import (
	"strings"
	"unicode"
)

// Filename constraints
const (
	// MaxFileNameLength is the default cap on sanitized names, in characters.
	MaxFileNameLength = 150

	// ForbiddenFileNameChars are characters rejected by at least one of the
	// common filesystems (NTFS, FAT, HFS+, ext4 tooling).
	ForbiddenFileNameChars = `\/*?:"<>|`

	// FallbackFileStem names files whose titles sanitize to nothing.
	FallbackFileStem = "audio"
)

// SanitizeFileName produces a filesystem-safe, length-bounded name from an
// arbitrary title string. Forbidden characters are stripped, runs of
// whitespace collapse to a single space, surrounding whitespace is trimmed,
// and the result is hard-truncated to maxLength characters (not bytes).
// The function is pure and idempotent; empty or all-invalid input yields an
// empty string, which callers must substitute (see FallbackFileStem).
func SanitizeFileName(raw string, maxLength int) string {
	var b strings.Builder
	b.Grow(len(raw))

	lastWasSpace := false
	for _, r := range raw {
		if strings.ContainsRune(ForbiddenFileNameChars, r) {
			continue
		}
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastWasSpace = false
	}

	name := strings.TrimSpace(b.String())

	if maxLength > 0 {
		runes := []rune(name)
		if len(runes) > maxLength {
			// Hard cut, no ellipsis. Re-trim in case the cut landed after a space.
			name = strings.TrimSpace(string(runes[:maxLength]))
		}
	}

	return name
}
