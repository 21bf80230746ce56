package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ChhayashreeDesai/Youtube-to-Mp3-Downloader/internal/model"
)

// ResultRow renders one accepted file with its size and export actions.
type ResultRow struct {
	widget.BaseWidget

	file         model.AcceptedFile
	localization *Localization

	nameLabel *widget.Label
	sizeLabel *widget.Label
	revealBtn *widget.Button
	openBtn   *widget.Button

	onReveal func(filePath string)
	onOpen   func(filePath string)
}

// NewResultRow creates a row for one accepted file
func NewResultRow(file model.AcceptedFile, localization *Localization) *ResultRow {
	rr := &ResultRow{
		file:         file,
		localization: localization,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	return rr
}

// SetCallbacks sets the export action callbacks
func (rr *ResultRow) SetCallbacks(onReveal, onOpen func(filePath string)) {
	rr.onReveal = onReveal
	rr.onOpen = onOpen
}

// createUI builds the row widgets
func (rr *ResultRow) createUI() {
	rr.nameLabel = widget.NewLabel(rr.file.Name())
	rr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	rr.sizeLabel = widget.NewLabel(humanize.Bytes(uint64(rr.file.SizeBytes)))

	rr.revealBtn = widget.NewButton(rr.localization.GetText(KeyReveal), func() {
		if rr.onReveal != nil {
			rr.onReveal(rr.file.FinalPath)
		}
	})

	rr.openBtn = widget.NewButton(rr.localization.GetText(KeyOpen), func() {
		if rr.onOpen != nil {
			rr.onOpen(rr.file.FinalPath)
		}
	})
}

// CreateRenderer implements fyne.Widget
func (rr *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewHBox(rr.sizeLabel, rr.revealBtn, rr.openBtn)
	row := container.NewBorder(nil, nil, nil, actions, rr.nameLabel)
	return widget.NewSimpleRenderer(row)
}

// MinSize keeps rows readable inside the results list
func (rr *ResultRow) MinSize() fyne.Size {
	min := rr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
