package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PlotOptions holds the column and plot type dropdowns and the Plot button.
// The column dropdowns are rebuilt wholesale from the column list on every
// load; each callback receives the chosen option as its argument.
type PlotOptions struct {
	container  *fyne.Container
	xSelect    *widget.Select
	ySelect    *widget.Select
	kindSelect *widget.Select
	PlotButton *widget.Button

	xChangeHandler    func(string)
	yChangeHandler    func(string)
	kindChangeHandler func(string)
	plotHandler       func()
}

func NewPlotOptions(kinds []string, defaultKind string) *PlotOptions {
	p := &PlotOptions{}
	p.setupOptions(kinds, defaultKind)
	return p
}

func (p *PlotOptions) setupOptions(kinds []string, defaultKind string) {
	p.xSelect = widget.NewSelect(nil, p.onXSelected)
	p.xSelect.PlaceHolder = "(select column)"
	p.ySelect = widget.NewSelect(nil, p.onYSelected)
	p.ySelect.PlaceHolder = "(select column)"

	p.kindSelect = widget.NewSelect(kinds, p.onKindSelected)
	p.kindSelect.SetSelected(defaultKind)

	p.PlotButton = widget.NewButton("Plot", p.onPlot)
	p.PlotButton.Importance = widget.HighImportance

	row := container.NewHBox(
		widget.NewLabel("X Column:"),
		p.xSelect,
		widget.NewLabel("Y Column:"),
		p.ySelect,
		widget.NewLabel("Plot Type:"),
		p.kindSelect,
		p.PlotButton,
	)

	p.container = container.NewBorder(nil, nil, nil, nil,
		widget.NewCard("Plot Options", "", row),
	)
}

func (p *PlotOptions) GetContainer() *fyne.Container {
	return p.container
}

// SetColumns replaces both column dropdowns' options and clears their
// selections.
func (p *PlotOptions) SetColumns(columns []string) {
	for _, s := range []*widget.Select{p.xSelect, p.ySelect} {
		s.Options = append([]string(nil), columns...)
		s.ClearSelected()
		s.Refresh()
	}
}

func (p *PlotOptions) XOptions() []string {
	return append([]string(nil), p.xSelect.Options...)
}

func (p *PlotOptions) YOptions() []string {
	return append([]string(nil), p.ySelect.Options...)
}

func (p *PlotOptions) SelectX(name string) {
	p.xSelect.SetSelected(name)
}

func (p *PlotOptions) SelectY(name string) {
	p.ySelect.SetSelected(name)
}

func (p *PlotOptions) SelectKind(label string) {
	p.kindSelect.SetSelected(label)
}

func (p *PlotOptions) SelectedX() string {
	return p.xSelect.Selected
}

func (p *PlotOptions) SelectedY() string {
	return p.ySelect.Selected
}

func (p *PlotOptions) SelectedKind() string {
	return p.kindSelect.Selected
}

func (p *PlotOptions) SetXChangeHandler(handler func(string)) {
	p.xChangeHandler = handler
}

func (p *PlotOptions) SetYChangeHandler(handler func(string)) {
	p.yChangeHandler = handler
}

func (p *PlotOptions) SetKindChangeHandler(handler func(string)) {
	p.kindChangeHandler = handler
}

func (p *PlotOptions) SetPlotHandler(handler func()) {
	p.plotHandler = handler
}

func (p *PlotOptions) onXSelected(name string) {
	if p.xChangeHandler != nil {
		p.xChangeHandler(name)
	}
}

func (p *PlotOptions) onYSelected(name string) {
	if p.yChangeHandler != nil {
		p.yChangeHandler(name)
	}
}

func (p *PlotOptions) onKindSelected(label string) {
	if p.kindChangeHandler != nil {
		p.kindChangeHandler(label)
	}
}

func (p *PlotOptions) onPlot() {
	if p.plotHandler != nil {
		p.plotHandler()
	}
}
