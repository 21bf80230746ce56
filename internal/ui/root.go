package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/config"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/fetch"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/pipeline"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/platform"
	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/probe"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	pipelineSvc pipeline.Runner
	fetchSvc    fetch.Fetcher
	probeSvc    *probe.Service

	urlEntry        *widget.Entry
	destSelect      *widget.Select
	customPathEntry *widget.Entry
	bitrateSelect   *widget.Select
	downloadBtn     *widget.Button

	statusLabel     *widget.Label
	statusSpinner   *widget.ProgressBarInfinite
	statusContainer *fyne.Container

	warningsBox *fyne.Container
	resultsBox  *fyne.Container

	// One run at a time; the button is disabled while running.
	runMutex sync.Mutex
	running  bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, pipelineSvc pipeline.Runner, fetchSvc fetch.Fetcher, probeSvc *probe.Service) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		pipelineSvc:  pipelineSvc,
		fetchSvc:     fetchSvc,
		probeSvc:     probeSvc,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.fetchSvc.SetProgressCallback(ui.onFetchProgress)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	title := widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel(ui.localization.GetText(KeyAppSubtitle))

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))

	ui.customPathEntry = widget.NewEntry()
	ui.customPathEntry.SetPlaceHolder(ui.localization.GetText(KeyCustomPath))
	ui.customPathEntry.SetText(ui.settings.GetCustomDestinationDirectory())
	ui.customPathEntry.Hide()

	destOptions := make([]string, 0, 3)
	for _, opt := range ui.settings.GetDestinationOptions() {
		destOptions = append(destOptions, string(opt))
	}
	ui.destSelect = widget.NewSelect(destOptions, func(selected string) {
		if selected == string(config.DestinationCustom) {
			ui.customPathEntry.Show()
		} else {
			ui.customPathEntry.Hide()
		}
	})
	ui.destSelect.SetSelected(string(config.DestinationDownloads))

	bitrateOptions := make([]string, 0, len(model.AllowedBitrates))
	for _, kbps := range model.AllowedBitrates {
		bitrateOptions = append(bitrateOptions, strconv.Itoa(kbps))
	}
	ui.bitrateSelect = widget.NewSelect(bitrateOptions, nil)
	ui.bitrateSelect.SetSelected(strconv.Itoa(ui.settings.GetBitrateKbps()))

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClicked)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusSpinner = widget.NewProgressBarInfinite()
	ui.statusSpinner.Stop()
	ui.statusContainer = container.NewVBox(ui.statusLabel, ui.statusSpinner)
	ui.statusContainer.Hide()

	ui.warningsBox = container.NewVBox()
	ui.resultsBox = container.NewVBox()

	form := container.NewVBox(
		title,
		subtitle,
		widget.NewSeparator(),
		ui.urlEntry,
		widget.NewLabel(ui.localization.GetText(KeyDestination)),
		ui.destSelect,
		ui.customPathEntry,
		widget.NewLabel(ui.localization.GetText(KeyBitrate)),
		ui.bitrateSelect,
		ui.downloadBtn,
		ui.statusContainer,
		ui.warningsBox,
	)

	results := container.NewVScroll(ui.resultsBox)
	results.SetMinSize(fyne.NewSize(RowMinWidth, ResultsListMinHeight))

	ui.window.SetContent(container.NewBorder(form, nil, nil, nil, results))
}

// onDownloadClicked validates the form and starts one pipeline run.
func (ui *RootUI) onDownloadClicked() {
	url := ui.urlEntry.Text
	if url == "" {
		ui.showError(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	destDir, err := ui.selectedDestination()
	if err != nil {
		ui.showError(err.Error())
		return
	}

	bitrate, err := strconv.Atoi(ui.bitrateSelect.Selected)
	if err != nil || !model.IsAllowedBitrate(bitrate) {
		bitrate = model.DefaultBitrateKbps
	}

	// Persist the choices for next launch.
	ui.settings.SetDestinationDirectory(destDir)
	ui.settings.SetBitrateKbps(bitrate)

	ui.runMutex.Lock()
	if ui.running {
		ui.runMutex.Unlock()
		return
	}
	ui.running = true
	ui.runMutex.Unlock()

	ui.clearResults()
	ui.warnIfToolsMissing()
	ui.downloadBtn.Disable()
	ui.showBusy(ui.localization.GetText(KeyDownloading))

	req := model.SourceRequest{
		URL:            url,
		BitrateKbps:    bitrate,
		DestinationDir: destDir,
		NoPlaylist:     !ui.settings.GetExpandPlaylists(),
	}

	go func() {
		result, err := ui.pipelineSvc.Run(context.Background(), req)

		fyne.Do(func() {
			ui.runMutex.Lock()
			ui.running = false
			ui.runMutex.Unlock()

			ui.downloadBtn.Enable()
			ui.renderResult(result, err, destDir)
		})
	}()
}

// selectedDestination resolves the destination choice to a directory path.
func (ui *RootUI) selectedDestination() (string, error) {
	switch config.DestinationOption(ui.destSelect.Selected) {
	case config.DestinationDesktop:
		return platform.GetHomeDesktopDir()
	case config.DestinationCustom:
		custom := ui.customPathEntry.Text
		if custom == "" {
			return "", fmt.Errorf("%s", ui.localization.GetText(KeyPleaseSelectDir))
		}
		ui.settings.SetCustomDestinationDirectory(custom)
		return custom, nil
	default:
		return platform.GetHomeDownloadsDir()
	}
}

// onFetchProgress updates the status line from the download goroutine.
func (ui *RootUI) onFetchProgress(p fetch.Progress) {
	fyne.Do(func() {
		if p.Phase == fetch.PhaseConverting {
			ui.statusLabel.SetText(ui.localization.GetText(KeyConverting))
			return
		}

		if p.Percent < 0 {
			return
		}

		text := fmt.Sprintf(ProgressLabelFormat, p.Percent)
		if p.Title != "" {
			text = p.Title + MiddleDotSeparator + text
		}
		ui.statusLabel.SetText(text)
	})
}

// renderResult replaces the status banner with the run outcome.
func (ui *RootUI) renderResult(result model.Result, err error, destDir string) {
	ui.statusSpinner.Stop()

	if err != nil {
		ui.showError(fmt.Sprintf(ui.localization.GetText(KeyDownloadFailed), err))
		return
	}

	for _, d := range result.Diagnostics {
		if d.Kind == model.DiagnosticAccepted {
			continue
		}
		warning := widget.NewLabel(fmt.Sprintf(ui.localization.GetText(KeyDiscardedWarning), d.CandidateName))
		warning.Importance = widget.WarningImportance
		ui.warningsBox.Add(warning)
	}

	if len(result.Accepted) == 0 {
		ui.statusLabel.SetText(ui.localization.GetText(KeyNothingProduced))
		ui.statusContainer.Show()
		return
	}

	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyCompleted), len(result.Accepted), destDir))
	ui.statusContainer.Show()

	for _, file := range result.Accepted {
		row := NewResultRow(file, ui.localization)
		row.SetCallbacks(ui.onRevealFile, ui.onOpenFile)
		ui.resultsBox.Add(row)
	}
	ui.resultsBox.Refresh()
}

// onRevealFile shows the file in the system file manager.
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf(ui.localization.GetText(KeyErrorOpeningFile), filePath, err)
	}
}

// onOpenFile opens the file with the default player.
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf(ui.localization.GetText(KeyErrorOpeningFile), filePath, err)
	}
}

// warnIfToolsMissing surfaces limited-validation warnings before a run.
func (ui *RootUI) warnIfToolsMissing() {
	ffprobe, ffmpeg := ui.probeSvc.Availability()
	if ffprobe == platform.ToolAvailable && ffmpeg == platform.ToolAvailable {
		return
	}

	warning := widget.NewLabel(ui.localization.GetText(KeyToolsMissing))
	warning.Importance = widget.WarningImportance
	ui.warningsBox.Add(warning)
}

// showBusy displays the spinner with a status message.
func (ui *RootUI) showBusy(message string) {
	ui.statusLabel.Importance = widget.MediumImportance
	ui.statusLabel.SetText(message)
	ui.statusSpinner.Start()
	ui.statusSpinner.Show()
	ui.statusContainer.Show()
}

// showError replaces the spinner with an error banner without ending the session.
func (ui *RootUI) showError(message string) {
	ui.statusSpinner.Stop()
	ui.statusSpinner.Hide()
	ui.statusLabel.Importance = widget.DangerImportance
	ui.statusLabel.SetText(message)
	ui.statusContainer.Show()
}

// clearResults empties warnings and result rows before a new run.
func (ui *RootUI) clearResults() {
	ui.warningsBox.RemoveAll()
	ui.resultsBox.RemoveAll()
	ui.statusLabel.Importance = widget.MediumImportance
	ui.statusSpinner.Show()
}
