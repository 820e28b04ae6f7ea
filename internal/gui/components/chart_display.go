package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	ChartDisplayWidth  = 576
	ChartDisplayHeight = 384
)

// ChartDisplay holds at most one chart. Setting a chart evicts the previous
// one before the new image is inserted.
type ChartDisplay struct {
	container *fyne.Container
	slot      *fyne.Container
}

func NewChartDisplay() *ChartDisplay {
	slot := container.NewStack()

	mainContainer := container.NewBorder(nil, nil, nil, nil,
		widget.NewCard("Plot", "", slot),
	)

	return &ChartDisplay{
		container: mainContainer,
		slot:      slot,
	}
}

func (cd *ChartDisplay) GetContainer() *fyne.Container {
	return cd.container
}

func (cd *ChartDisplay) SetChart(img image.Image) {
	cd.slot.RemoveAll()
	if img == nil {
		cd.slot.Refresh()
		return
	}

	chartImage := canvas.NewImageFromImage(img)
	chartImage.FillMode = canvas.ImageFillContain
	chartImage.SetMinSize(fyne.NewSize(ChartDisplayWidth, ChartDisplayHeight))

	cd.slot.Add(chartImage)
	cd.slot.Refresh()
}

func (cd *ChartDisplay) Clear() {
	cd.slot.RemoveAll()
	cd.slot.Refresh()
}

// Image returns the displayed chart image, or nil when the slot is empty.
func (cd *ChartDisplay) Image() image.Image {
	if len(cd.slot.Objects) == 0 {
		return nil
	}
	if img, ok := cd.slot.Objects[0].(*canvas.Image); ok {
		return img.Image
	}
	return nil
}

// Count reports how many objects occupy the slot; it is never more than one.
func (cd *ChartDisplay) Count() int {
	return len(cd.slot.Objects)
}
