package fetch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
)

// yt-dlp invocation constants
const (
	// BestAudioFormat selects the best available audio-only stream, falling
	// back to the best combined stream.
	BestAudioFormat = "bestaudio/best"

	// OutputTemplate names downloaded files after the video title.
	OutputTemplate = "%(title)s.%(ext)s"

	ProgressInterval = 500 * time.Millisecond

	MaxRetries = 1
	RetryDelay = 2 * time.Second
)

// Service runs yt-dlp downloads into a scratch directory.
type Service struct {
	onProgress func(Progress)
}

// NewService creates a new fetch service.
func NewService() *Service {
	return &Service{}
}

// EnsureInstalled downloads a managed yt-dlp binary when none is present on
// the system. Safe to call on every startup.
func EnsureInstalled(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("failed to provision yt-dlp: %w", err)
	}
	return nil
}

// SetProgressCallback registers the callback invoked on progress updates.
func (s *Service) SetProgressCallback(callback func(Progress)) {
	s.onProgress = callback
}

// Fetch downloads the URL's audio and transcodes it to MP3 at the requested
// bitrate, writing every produced file into scratchDir. Errors are wrapped
// in *Error so callers can tell fetch aborts from everything else.
func (s *Service) Fetch(ctx context.Context, req model.SourceRequest, scratchDir string) error {
	dl := ytdlp.New().
		Format(BestAudioFormat).
		ExtractAudio().
		AudioFormat(model.TargetFormat).
		AudioQuality(audioQuality(req.BitrateKbps)).
		ForceOverwrites().
		Output(filepath.Join(scratchDir, OutputTemplate))

	if req.NoPlaylist {
		dl = dl.NoPlaylist()
	} else {
		dl = dl.YesPlaylist()
	}

	dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		s.notifyProgress(&update)
	})

	if err := s.runWithRetry(ctx, dl, req.URL); err != nil {
		return &Error{URL: req.URL, Err: err}
	}
	return nil
}

// runWithRetry attempts the download with a single backoff retry, matching
// yt-dlp's own transient-failure behavior for flaky networks.
func (s *Service) runWithRetry(ctx context.Context, dl *ytdlp.Command, url string) error {
	var lastErr error

	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(RetryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}

			log.Printf("Retrying download for %s, attempt %d", url, attempt+1)
		}

		_, err := dl.Run(ctx, url)
		if err == nil {
			return nil
		}

		lastErr = err
		log.Printf("Download attempt %d failed for %s: %v", attempt+1, url, err)

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return lastErr
}

// notifyProgress converts a yt-dlp progress update into the package's
// Progress shape and forwards it.
func (s *Service) notifyProgress(update *ytdlp.ProgressUpdate) {
	if s.onProgress == nil {
		return
	}

	p := Progress{
		Phase:           phaseFor(update.Status),
		Percent:         percentFor(update.DownloadedBytes, update.TotalBytes),
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}

	if update.Info != nil && update.Info.Title != nil {
		p.Title = *update.Info.Title
	}

	s.onProgress(p)
}

// phaseFor maps a yt-dlp progress status onto the coarser fetch phase.
// Once yt-dlp reports the download finished, everything that remains is
// post-processing into the target format.
func phaseFor(status ytdlp.ProgressStatus) Phase {
	switch status {
	case ytdlp.ProgressStatusPostProcessing, ytdlp.ProgressStatusFinished:
		return PhaseConverting
	default:
		return PhaseDownloading
	}
}

// percentFor computes a download percentage, returning -1 when the total
// size is not yet known.
func percentFor(downloaded, total int) float64 {
	if total <= 0 {
		return -1
	}

	percent := float64(downloaded) / float64(total) * 100
	if percent > 100 {
		percent = 100
	}
	return percent
}

// audioQuality renders the bitrate as a yt-dlp --audio-quality value.
func audioQuality(kbps int) string {
	return fmt.Sprintf("%dK", kbps)
}
