package config

import (
	"fyne.io/fyne/v2"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/platform"
)

// Destination choice presented by the UI
type DestinationOption string

const (
	DestinationDownloads DestinationOption = "System Downloads"
	DestinationDesktop   DestinationOption = "Desktop"
	DestinationCustom    DestinationOption = "Custom path"
)

// Settings keys for Fyne preferences
const (
	KeyDestinationDir  = "destination_directory"
	KeyCustomDestDir   = "custom_destination_directory"
	KeyBitrateKbps     = "bitrate_kbps"
	KeyExpandPlaylists = "expand_playlists"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultExpandPlaylists = true
	DefaultLanguage        = "system"
	FallbackDestinationDir = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDestinationDirectory returns the configured destination directory,
// defaulting to the user's Downloads folder. The default is read once and
// persisted so later runs see an explicit value.
func (s *Settings) GetDestinationDirectory() string {
	dir := s.app.Preferences().String(KeyDestinationDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDestinationDir
		}
		s.SetDestinationDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDestinationDirectory sets the destination directory
func (s *Settings) SetDestinationDirectory(dir string) {
	s.app.Preferences().SetString(KeyDestinationDir, dir)
}

// GetCustomDestinationDirectory returns the last free-text custom path
func (s *Settings) GetCustomDestinationDirectory() string {
	return s.app.Preferences().String(KeyCustomDestDir)
}

// SetCustomDestinationDirectory remembers a free-text custom path
func (s *Settings) SetCustomDestinationDirectory(dir string) {
	s.app.Preferences().SetString(KeyCustomDestDir, dir)
}

// GetBitrateKbps returns the configured MP3 bitrate, clamped to the
// allowed set.
func (s *Settings) GetBitrateKbps() int {
	value := s.app.Preferences().Int(KeyBitrateKbps)
	if !model.IsAllowedBitrate(value) {
		s.SetBitrateKbps(model.DefaultBitrateKbps)
		return model.DefaultBitrateKbps
	}
	return value
}

// SetBitrateKbps sets the MP3 bitrate; values outside the allowed set fall
// back to the default.
func (s *Settings) SetBitrateKbps(kbps int) {
	if !model.IsAllowedBitrate(kbps) {
		kbps = model.DefaultBitrateKbps
	}
	s.app.Preferences().SetInt(KeyBitrateKbps, kbps)
}

// GetExpandPlaylists returns whether playlist URLs expand to every entry
func (s *Settings) GetExpandPlaylists() bool {
	return s.app.Preferences().BoolWithFallback(KeyExpandPlaylists, DefaultExpandPlaylists)
}

// SetExpandPlaylists sets whether playlist URLs expand to every entry
func (s *Settings) SetExpandPlaylists(expand bool) {
	s.app.Preferences().SetBool(KeyExpandPlaylists, expand)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDestinationOptions returns the selectable destination choices
func (s *Settings) GetDestinationOptions() []DestinationOption {
	return []DestinationOption{DestinationDownloads, DestinationDesktop, DestinationCustom}
}
