package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "Downloading: %.1f%%"
)

// Layout sizing (result rows / lists)
const (
	RowMinWidth  float32 = 400
	RowMinHeight float32 = 44
)

// Results list sizing
const (
	ResultsListMinHeight float32 = 220
)
