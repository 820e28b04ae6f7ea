package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"dataplot/internal/chart"
	"dataplot/internal/gui"
	"dataplot/internal/logger"
	"dataplot/internal/session"
	"dataplot/internal/table"

	"fyne.io/fyne/v2"
)

const TitleInvalidFile = "Invalid File"

// PickerExtensions is the file dialog filter. ".txt" is offered but has no
// reader; choosing one reports an unsupported format.
var PickerExtensions = []string{".csv", ".xlsx", ".txt"}

// Handlers turns user actions into shell operations and refreshes the view.
// Every error stops here and is shown as a dialog.
type Handlers struct {
	shell      *session.Shell
	guiManager *gui.Manager
	logger     logger.Logger
}

func NewHandlers(shell *session.Shell, gm *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		shell:      shell,
		guiManager: gm,
		logger:     log,
	}
}

func (h *Handlers) HandleBrowse() {
	h.guiManager.ShowFileOpen(PickerExtensions, func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.guiManager.ShowError(gui.TitleError, err)
			return
		}
		if reader == nil {
			return
		}
		h.LoadURI(reader)
	})
}

// LoadFile loads path into the shell and, on success, repopulates the
// preview and both column dropdowns and empties the chart area.
func (h *Handlers) LoadFile(path string) {
	h.showLoad(path, h.shell.Load(path))
}

// LoadURI loads the stream handed out by the file dialog and closes it.
func (h *Handlers) LoadURI(reader fyne.URIReadCloser) {
	defer reader.Close()

	name := uriName(reader.URI())
	h.showLoad(name, h.shell.LoadReader(name, reader))
}

func (h *Handlers) showLoad(name string, err error) {
	if err != nil {
		title, userErr := describeLoadError(err)
		h.guiManager.ShowError(title, userErr)
		return
	}

	h.guiManager.ShowTable(name, h.shell.Preview(), h.shell.Columns(), h.shell.Table().Len())
	h.guiManager.UpdateStatus(fmt.Sprintf("Loaded %s", filepath.Base(name)))
}

// uriName is the local path for file URIs and the last path element for
// anything else, so the extension still selects the format.
func uriName(u fyne.URI) string {
	if u.Scheme() == "file" && u.Path() != "" {
		return u.Path()
	}
	return u.Name()
}

func (h *Handlers) HandleXChange(name string) {
	h.shell.SetX(name)
}

func (h *Handlers) HandleYChange(name string) {
	h.shell.SetY(name)
}

func (h *Handlers) HandleKindChange(label string) {
	kind, err := chart.ParseKind(label)
	if err == nil {
		err = h.shell.SetKind(kind)
	}
	if err != nil {
		h.guiManager.ShowError(gui.TitleError, err)
	}
}

func (h *Handlers) HandlePlot() {
	c, err := h.shell.Plot()
	if err != nil {
		h.guiManager.ShowError(gui.TitleError, describePlotError(err))
		return
	}

	h.guiManager.ShowChart(c.Image)
	h.guiManager.UpdateStatus(fmt.Sprintf("Plotted %s vs %s (%s)", c.YLabel, c.XLabel, c.Kind.Label()))
}

func describeLoadError(err error) (string, error) {
	var unsupported *table.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return TitleInvalidFile, errors.New("Unsupported file format.")
	}
	return gui.TitleError, fmt.Errorf("Failed to load file: %w", err)
}

func describePlotError(err error) error {
	var (
		missing *chart.MissingSelectionError
		unknown *chart.UnknownColumnError
	)
	switch {
	case errors.Is(err, chart.ErrNoData):
		return errors.New("No data loaded.")
	case errors.As(err, &missing):
		return errors.New("Please select both X and Y columns.")
	case errors.As(err, &unknown):
		return fmt.Errorf("Column %q is not in the loaded file. Please select the columns again.", unknown.Name)
	default:
		return fmt.Errorf("Failed to plot data: %w", err)
	}
}
