package model

import (
	"errors"
	"strings"
)

// Target output format. The pipeline produces exactly one format.
const (
	TargetFormat    = "mp3"
	TargetExtension = ".mp3"
)

// DefaultBitrateKbps is the bitrate used when the caller does not pick one.
const DefaultBitrateKbps = 192

// AllowedBitrates lists the selectable MP3 bitrates in kbps.
var AllowedBitrates = []int{128, 192, 256, 320}

// Request validation errors.
var (
	// ErrEmptyURL indicates the request carried no source URL.
	ErrEmptyURL = errors.New("source URL is empty")
	// ErrInvalidBitrate indicates a bitrate outside the allowed set.
	ErrInvalidBitrate = errors.New("bitrate is not one of the allowed values")
	// ErrEmptyDestination indicates no destination directory was chosen.
	ErrEmptyDestination = errors.New("destination directory is empty")
)

// SourceRequest describes one download-validate-place invocation.
type SourceRequest struct {
	URL            string
	BitrateKbps    int    // one of AllowedBitrates
	DestinationDir string // created if missing, must be writable
	NoPlaylist     bool   // suppress playlist expansion for playlist URLs
}

// Validate checks the request fields that can be rejected before any
// external call is made. Destination writability is checked separately by
// the pipeline because it touches the filesystem.
func (r SourceRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrEmptyURL
	}
	if !IsAllowedBitrate(r.BitrateKbps) {
		return ErrInvalidBitrate
	}
	if strings.TrimSpace(r.DestinationDir) == "" {
		return ErrEmptyDestination
	}
	return nil
}

// IsAllowedBitrate reports whether kbps is a selectable bitrate.
func IsAllowedBitrate(kbps int) bool {
	for _, b := range AllowedBitrates {
		if b == kbps {
			return true
		}
	}
	return false
}
