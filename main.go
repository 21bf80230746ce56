package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/config"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/fetch"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/pipeline"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/platform"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/probe"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.chhayashreedesai.songdown"
	AppName = "SongDown"

	WindowWidth  = 720
	WindowHeight = 560
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSongDownTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Provision a managed yt-dlp binary when none is on PATH.
	if err := fetch.EnsureInstalled(context.Background()); err != nil {
		fmt.Printf("yt-dlp provisioning failed: %v\n", err)
	}

	// Initialize services
	settings := config.NewSettings(myApp)
	destDir := settings.GetDestinationDirectory()
	if err := platform.CreateDirectoryIfNotExists(destDir); err != nil {
		fmt.Printf("failed to ensure destination dir: %v\n", err)
	}

	fetchSvc := fetch.NewService()
	probeSvc := probe.NewService()
	pipelineSvc := pipeline.NewService(fetchSvc, probeSvc)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, pipelineSvc, fetchSvc, probeSvc)

	// Show and run
	myWindow.ShowAndRun()
}
