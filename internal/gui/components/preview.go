package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	PreviewWidth  = 640
	PreviewHeight = 160
)

// PreviewPanel shows the leading rows of the loaded table as fixed-width text.
type PreviewPanel struct {
	container *fyne.Container
	grid      *widget.TextGrid
}

func NewPreviewPanel() *PreviewPanel {
	grid := widget.NewTextGrid()

	scroll := container.NewScroll(grid)
	scroll.SetMinSize(fyne.NewSize(PreviewWidth, PreviewHeight))

	card := widget.NewCard("Data Preview", "", scroll)

	return &PreviewPanel{
		container: container.NewBorder(nil, nil, nil, nil, card),
		grid:      grid,
	}
}

func (p *PreviewPanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *PreviewPanel) SetText(text string) {
	p.grid.SetText(text)
}

func (p *PreviewPanel) Text() string {
	return p.grid.Text()
}
