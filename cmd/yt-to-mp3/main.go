package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/fetch"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/pipeline"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/platform"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/probe"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	defaultOutput, err := platform.GetHomeDownloadsDir()
	if err != nil {
		defaultOutput = "."
	}

	fs := flag.NewFlagSet("yt-to-mp3", flag.ContinueOnError)

	var output string
	fs.StringVar(&output, "o", defaultOutput, "output directory")
	fs.StringVar(&output, "output", defaultOutput, "output directory")

	var quality int
	fs.IntVar(&quality, "q", model.DefaultBitrateKbps, "MP3 bitrate in kbps (128, 192, 256 or 320)")
	fs.IntVar(&quality, "quality", model.DefaultBitrateKbps, "MP3 bitrate in kbps (128, 192, 256 or 320)")

	var noPlaylist bool
	fs.BoolVar(&noPlaylist, "no-playlist", false, "do not download playlists; only the provided URL")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: yt-to-mp3 [flags] <url>\n\nDownload YouTube video/audio as MP3 using yt-dlp.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	url := fs.Arg(0)
	if url == "" {
		fs.Usage()
		return ExitUsage
	}

	if !model.IsAllowedBitrate(quality) {
		fmt.Fprintf(os.Stderr, "Error: bitrate %d is not one of 128, 192, 256, 320\n", quality)
		return ExitUsage
	}

	ctx := context.Background()

	if err := fetch.EnsureInstalled(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	probeSvc := probe.NewService()
	if ffprobe, ffmpeg := probeSvc.Availability(); ffprobe != platform.ToolAvailable || ffmpeg != platform.ToolAvailable {
		fmt.Println("Warning: ffmpeg/ffprobe not found on PATH. Audio validation may be limited.")
	}

	fetchSvc := fetch.NewService()
	printer := &progressPrinter{out: os.Stdout}
	fetchSvc.SetProgressCallback(printer.update)

	fmt.Printf("Downloading: %s\nOutput directory: %s\n", url, output)

	pipelineSvc := pipeline.NewService(fetchSvc, probeSvc)
	result, err := pipelineSvc.Run(ctx, model.SourceRequest{
		URL:            url,
		BitrateKbps:    quality,
		DestinationDir: output,
		NoPlaylist:     noPlaylist,
	})
	fmt.Println()

	for _, d := range result.Diagnostics {
		switch d.Kind {
		case model.DiagnosticDiscarded:
			fmt.Printf("Warning: discarding unrecognized or invalid file: %s (%s)\n", d.CandidateName, d.Reason)
		case model.DiagnosticPlacementFailed:
			fmt.Printf("Warning: failed to move validated file into place: %s (%s)\n", d.CandidateName, d.Reason)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Download failed: %v\n", err)
		return ExitError
	}

	if len(result.Accepted) == 0 {
		fmt.Println("No validated MP3 files available after download. Try a different URL.")
		return ExitOK
	}

	for _, f := range result.Accepted {
		fmt.Printf("Saved: %s (%s)\n", f.FinalPath, humanize.Bytes(uint64(f.SizeBytes)))
	}
	fmt.Println("Done.")

	return ExitOK
}

// progressPrinter renders a carriage-return progress line during download
// and announces the transition into post-processing once per file.
type progressPrinter struct {
	out        io.Writer
	converting bool
}

func (p *progressPrinter) update(progress fetch.Progress) {
	if progress.Phase == fetch.PhaseConverting {
		if !p.converting {
			p.converting = true
			fmt.Fprintln(p.out, "\nDownload complete, converting to mp3...")
		}
		return
	}

	// A fresh download started; the next finish deserves its own line.
	p.converting = false

	if progress.Percent < 0 {
		return
	}

	fmt.Fprintf(p.out, "Downloading: %5.1f%% (%s/%s)\r",
		progress.Percent,
		humanize.Bytes(uint64(progress.DownloadedBytes)),
		humanize.Bytes(uint64(progress.TotalBytes)))
}
