package gui

import (
	"image"

	"dataplot/internal/gui/components"
	"dataplot/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// TitleError is the dialog title for generic failures.
const TitleError = "Error"

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	toolbar      *components.Toolbar
	preview      *components.PreviewPanel
	options      *components.PlotOptions
	chartDisplay *components.ChartDisplay
	statusBar    *components.StatusBar
}

// NewManager builds the window content. kinds are the plot type labels;
// defaultKind is preselected.
func NewManager(window fyne.Window, kinds []string, defaultKind string, log logger.Logger) (*Manager, error) {
	if log == nil {
		log = logger.NoOp{}
	}

	manager := &Manager{
		window:       window,
		logger:       log,
		toolbar:      components.NewToolbar(),
		preview:      components.NewPreviewPanel(),
		options:      components.NewPlotOptions(kinds, defaultKind),
		chartDisplay: components.NewChartDisplay(),
		statusBar:    components.NewStatusBar(),
	}

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"kinds": kinds,
	})

	return manager, nil
}

func (m *Manager) GetMainContainer() *fyne.Container {
	top := container.NewVBox(
		m.toolbar.GetContainer(),
		m.preview.GetContainer(),
		m.options.GetContainer(),
	)

	return container.NewBorder(
		top,
		m.statusBar.GetContainer(),
		nil, nil,
		m.chartDisplay.GetContainer(),
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SetBrowseHandler(handler func()) {
	m.toolbar.SetBrowseHandler(handler)
}

func (m *Manager) SetXChangeHandler(handler func(string)) {
	m.options.SetXChangeHandler(func(name string) {
		m.logger.Debug("GUIManager", "x column selected", map[string]interface{}{
			"column": name,
		})
		handler(name)
	})
}

func (m *Manager) SetYChangeHandler(handler func(string)) {
	m.options.SetYChangeHandler(func(name string) {
		m.logger.Debug("GUIManager", "y column selected", map[string]interface{}{
			"column": name,
		})
		handler(name)
	})
}

func (m *Manager) SetKindChangeHandler(handler func(string)) {
	m.options.SetKindChangeHandler(func(label string) {
		m.logger.Debug("GUIManager", "plot type selected", map[string]interface{}{
			"kind": label,
		})
		handler(label)
	})
}

func (m *Manager) SetPlotHandler(handler func()) {
	m.options.SetPlotHandler(func() {
		m.logger.Debug("GUIManager", "plot requested", nil)
		handler()
	})
}

// ShowFileOpen opens the file picker filtered to extensions.
func (m *Manager) ShowFileOpen(extensions []string, callback func(fyne.URIReadCloser, error)) {
	d := dialog.NewFileOpen(callback, m.window)
	d.SetFilter(storage.NewExtensionFileFilter(extensions))
	d.Show()
}

// ShowTable refreshes every view derived from a newly loaded table and
// empties the chart slot.
func (m *Manager) ShowTable(path, preview string, columns []string, rows int) {
	m.toolbar.SetPath(path)
	m.preview.SetText(preview)
	m.options.SetColumns(columns)
	m.chartDisplay.Clear()
	m.statusBar.SetSummary(rows, len(columns))

	m.logger.Debug("GUIManager", "table view refreshed", map[string]interface{}{
		"path":    path,
		"columns": len(columns),
	})
}

func (m *Manager) ShowChart(img image.Image) {
	m.chartDisplay.SetChart(img)
}

func (m *Manager) ClearChart() {
	m.chartDisplay.Clear()
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
}

// ShowError shows a modal message. TitleError gets the standard error
// dialog; other titles get an information dialog carrying that title.
func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	if title == "" || title == TitleError {
		dialog.ShowError(err, m.window)
		return
	}
	dialog.ShowInformation(title, err.Error(), m.window)
}

func (m *Manager) Toolbar() *components.Toolbar {
	return m.toolbar
}

func (m *Manager) Preview() *components.PreviewPanel {
	return m.preview
}

func (m *Manager) Options() *components.PlotOptions {
	return m.options
}

func (m *Manager) ChartDisplay() *components.ChartDisplay {
	return m.chartDisplay
}

func (m *Manager) StatusBar() *components.StatusBar {
	return m.statusBar
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
