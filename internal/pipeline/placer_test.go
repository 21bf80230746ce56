package pipeline

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
)

func writeScratchFile(t *testing.T, dir, name, content string) model.ScratchCandidate {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scratch file: %v", err)
	}

	ext := filepath.Ext(name)
	return model.ScratchCandidate{
		Path:      path,
		TitleStem: name[:len(name)-len(ext)],
	}
}

func TestPlaceMovesFileIntoDestination(t *testing.T) {
	scratch := t.TempDir()
	dest := t.TempDir()
	placer := NewPlacer()

	candidate := writeScratchFile(t, scratch, "My Song.mp3", "audio-bytes")

	accepted, err := placer.Place(candidate, dest)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if accepted.FinalPath != filepath.Join(dest, "My Song.mp3") {
		t.Errorf("Unexpected final path: %s", accepted.FinalPath)
	}

	if accepted.SizeBytes != int64(len("audio-bytes")) {
		t.Errorf("Expected size %d, got %d", len("audio-bytes"), accepted.SizeBytes)
	}

	// Source must be gone after the move.
	if _, err := os.Stat(candidate.Path); !os.IsNotExist(err) {
		t.Error("Scratch copy should not exist after placement")
	}

	content, err := os.ReadFile(accepted.FinalPath)
	if err != nil {
		t.Fatalf("Failed to read placed file: %v", err)
	}
	if string(content) != "audio-bytes" {
		t.Errorf("Placed file content mismatch: %q", content)
	}
}

func TestPlaceCollisionCounter(t *testing.T) {
	scratch := t.TempDir()
	dest := t.TempDir()
	placer := NewPlacer()

	// Destination already holds "Song.mp3".
	if err := os.WriteFile(filepath.Join(dest, "Song.mp3"), []byte("existing"), 0644); err != nil {
		t.Fatalf("Failed to seed destination: %v", err)
	}

	first := writeScratchFile(t, scratch, "Song.mp3", "one")
	accepted, err := placer.Place(first, dest)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if filepath.Base(accepted.FinalPath) != "Song (1).mp3" {
		t.Errorf("Expected 'Song (1).mp3', got '%s'", filepath.Base(accepted.FinalPath))
	}

	second := writeScratchFile(t, scratch, "Song.mp3", "two")
	accepted, err = placer.Place(second, dest)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if filepath.Base(accepted.FinalPath) != "Song (2).mp3" {
		t.Errorf("Expected 'Song (2).mp3', got '%s'", filepath.Base(accepted.FinalPath))
	}
}

func TestPlaceSanitizesTitleStem(t *testing.T) {
	scratch := t.TempDir()
	dest := t.TempDir()
	placer := NewPlacer()

	candidate := writeScratchFile(t, scratch, "raw.mp3", "bytes")
	candidate.TitleStem = `What? A "Title"  with   spaces`

	accepted, err := placer.Place(candidate, dest)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if filepath.Base(accepted.FinalPath) != "What A Title with spaces.mp3" {
		t.Errorf("Unexpected sanitized name: %s", filepath.Base(accepted.FinalPath))
	}
}

func TestPlaceEmptyStemFallback(t *testing.T) {
	scratch := t.TempDir()
	dest := t.TempDir()
	placer := NewPlacer()

	candidate := writeScratchFile(t, scratch, "bad.mp3", "bytes")
	candidate.TitleStem = `???///\\\`

	accepted, err := placer.Place(candidate, dest)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if filepath.Base(accepted.FinalPath) != "audio.mp3" {
		t.Errorf("Expected fallback name 'audio.mp3', got '%s'", filepath.Base(accepted.FinalPath))
	}

	// A second degenerate title picks up the collision counter.
	candidate = writeScratchFile(t, scratch, "bad2.mp3", "bytes")
	candidate.TitleStem = ""

	accepted, err = placer.Place(candidate, dest)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if filepath.Base(accepted.FinalPath) != "audio (1).mp3" {
		t.Errorf("Expected 'audio (1).mp3', got '%s'", filepath.Base(accepted.FinalPath))
	}
}

func TestPlaceRestrictsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission bits are not meaningful on Windows")
	}

	scratch := t.TempDir()
	dest := t.TempDir()
	placer := NewPlacer()

	candidate := writeScratchFile(t, scratch, "perm.mp3", "bytes")

	accepted, err := placer.Place(candidate, dest)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	info, err := os.Stat(accepted.FinalPath)
	if err != nil {
		t.Fatalf("Failed to stat placed file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected permissions 0600, got %o", info.Mode().Perm())
	}
}

func TestPlaceMissingDestinationFails(t *testing.T) {
	scratch := t.TempDir()
	placer := NewPlacer()

	candidate := writeScratchFile(t, scratch, "song.mp3", "bytes")

	_, err := placer.Place(candidate, filepath.Join(t.TempDir(), "gone", "deeper"))
	if err == nil {
		t.Error("Expected error when destination directory does not exist")
	}
}
