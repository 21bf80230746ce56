package fetch

import (
	"context"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
)

// Phase labels the stage of the fetch a progress update belongs to.
type Phase string

const (
	// PhaseDownloading means bytes are still coming off the network.
	PhaseDownloading Phase = "downloading"

	// PhaseConverting means the download finished and yt-dlp is
	// transcoding the result to the target format.
	PhaseConverting Phase = "converting"
)

// Progress describes one download progress update.
type Progress struct {
	Phase           Phase
	Percent         float64 // 0.0 to 100.0, negative if unknown
	DownloadedBytes int64
	TotalBytes      int64
	Title           string // video title once known, may be empty
}

// Fetcher defines the interface for the fetch/transcode capability.
type Fetcher interface {
	// SetProgressCallback registers a callback invoked on progress updates.
	SetProgressCallback(func(Progress))

	// Fetch downloads and transcodes everything the request's URL yields
	// into scratchDir. A playlist URL may legitimately produce many files.
	Fetch(ctx context.Context, req model.SourceRequest, scratchDir string) error
}
