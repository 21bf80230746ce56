package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It collects a URL, destination, and bitrate, runs the
// download-validate-place pipeline, and renders accepted files with reveal
// and open actions. All UI strings are localized via Localization.
