package platform

// External tool names
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// Availability describes whether an external tool can be invoked.
type Availability string

const (
	// ToolAvailable means the tool was found on PATH.
	ToolAvailable Availability = "Available"

	// ToolUnavailable means a PATH lookup ran and found nothing.
	ToolUnavailable Availability = "Unavailable"
)

// String returns the string representation of Availability.
func (a Availability) String() string {
	return string(a)
}

// LookupTool reports whether the named executable can be found with
// lookPath, typically exec.LookPath.
func LookupTool(lookPath func(string) (string, error), name string) Availability {
	if _, err := lookPath(name); err != nil {
		return ToolUnavailable
	}
	return ToolAvailable
}
