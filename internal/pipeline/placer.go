package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/platform"
)

// CollisionSuffixFormat renders the counter appended to colliding names:
// "Song (1).mp3", "Song (2).mp3", ...
const CollisionSuffixFormat = "%s (%d)%s"

// Placer moves validated candidates into a destination directory under
// sanitized, collision-free names.
type Placer struct {
	// mu serializes the collision-check-then-rename sequence so concurrent
	// invocations sharing a destination cannot claim the same free name.
	mu sync.Mutex
}

// NewPlacer creates a new placement resolver.
func NewPlacer() *Placer {
	return &Placer{}
}

// Place computes a final path for the candidate inside destDir and moves it
// there. The sanitized title stem gets a " (N)" counter while the name is
// taken, the move never exposes a partially-written file under its final
// name, and permissions are restricted to the owner afterwards. A chmod
// failure is a warning, not an error.
func (p *Placer) Place(candidate model.ScratchCandidate, destDir string) (model.AcceptedFile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stem := platform.SanitizeFileName(candidate.TitleStem, platform.MaxFileNameLength)
	if stem == "" {
		stem = platform.FallbackFileStem
	}

	destPath := filepath.Join(destDir, stem+model.TargetExtension)
	for counter := 1; pathExists(destPath); counter++ {
		destPath = filepath.Join(destDir, fmt.Sprintf(CollisionSuffixFormat, stem, counter, model.TargetExtension))
	}

	if err := moveFile(candidate.Path, destPath); err != nil {
		return model.AcceptedFile{}, fmt.Errorf("failed to move %s into place: %w", filepath.Base(candidate.Path), err)
	}

	if err := os.Chmod(destPath, platform.AcceptedFilePermissions); err != nil {
		log.Printf("Failed to restrict permissions on %s: %v", destPath, err)
	}

	info, err := os.Stat(destPath)
	if err != nil {
		// The move succeeded; report the file even if stat raced something.
		return model.AcceptedFile{FinalPath: destPath}, nil
	}

	return model.AcceptedFile{
		FinalPath:    destPath,
		SizeBytes:    info.Size(),
		ModifiedTime: info.ModTime(),
	}, nil
}

// pathExists reports whether anything occupies the path.
func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// moveFile renames src to dst, falling back to copy-then-delete when the
// two live on different filesystems. The fallback stages the copy under a
// temporary name inside the destination directory and renames it into
// place, so dst never appears partially written.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}

	return copyThenRemove(src, dst)
}

// copyThenRemove implements the cross-device move fallback.
func copyThenRemove(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	staging, err := os.CreateTemp(filepath.Dir(dst), ".placing-*")
	if err != nil {
		return err
	}
	stagingPath := staging.Name()

	if _, err := io.Copy(staging, in); err != nil {
		staging.Close()
		os.Remove(stagingPath)
		return err
	}
	if err := staging.Close(); err != nil {
		os.Remove(stagingPath)
		return err
	}

	if err := os.Rename(stagingPath, dst); err != nil {
		os.Remove(stagingPath)
		return err
	}

	if err := os.Remove(src); err != nil {
		log.Printf("Failed to remove scratch copy %s after cross-device move: %v", src, err)
	}
	return nil
}
