package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar is the file row: a read-only path field and the Browse button.
type Toolbar struct {
	container    *fyne.Container
	PathEntry    *widget.Entry
	BrowseButton *widget.Button

	browseHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	background := canvas.NewRectangle(color.RGBA{R: 250, G: 249, B: 245, A: 255})
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeWidth = 1.0
	border.StrokeColor = color.RGBA{R: 231, G: 231, B: 231, A: 255}

	t.PathEntry = widget.NewEntry()
	t.PathEntry.SetPlaceHolder("No file selected")
	t.PathEntry.Disable()

	t.BrowseButton = widget.NewButton("Browse", t.onBrowse)
	t.BrowseButton.Importance = widget.HighImportance

	toolbarContent := container.NewBorder(
		nil, nil,
		widget.NewLabel("File:"),
		t.BrowseButton,
		t.PathEntry,
	)

	t.container = container.NewStack(
		border,
		container.NewPadded(
			container.NewStack(background, container.NewPadded(toolbarContent)),
		),
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetBrowseHandler(handler func()) {
	t.browseHandler = handler
}

func (t *Toolbar) SetPath(path string) {
	t.PathEntry.SetText(path)
}

func (t *Toolbar) Path() string {
	return t.PathEntry.Text
}

func (t *Toolbar) onBrowse() {
	if t.browseHandler != nil {
		t.browseHandler()
	}
}
